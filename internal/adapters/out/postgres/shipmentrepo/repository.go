package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"shiporders/internal/core/domain/model/shipment"
	"shiporders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
// Every read filters out soft-deleted rows; deletion is an UPDATE of the
// deleted flag, never a DELETE.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Add saves a new shipment and assigns the generated identity onto it.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("trackingCode", aggregate.TrackingCode(), err)
		}
		return err
	}

	if dto.ID <= 0 {
		return errs.NewIdentityNotAssignedError("shipment")
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves an existing, non-deleted shipment. The deleted flag stays out
// of the column list; order_id is listed explicitly so a NULL back-reference
// is persisted (gorm skips zero values otherwise).
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipmentId is invalid",
			fmt.Errorf("%d is not a positive identity", aggregate.ID()))
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ? AND deleted = ?", dto.ID, false).
		Select("tracking_code", "cost", "dispatched_at", "estimated_arrival_at",
			"carrier", "type", "status", "order_id").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("trackingCode", aggregate.TrackingCode(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentId", aggregate.ID())
	}

	return nil
}

// GetByID retrieves a non-deleted shipment by its identity.
func (r *GormShipmentRepository) GetByID(ctx context.Context, id int64) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ? AND deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingCode retrieves a non-deleted shipment by its tracking code.
func (r *GormShipmentRepository) GetByTrackingCode(ctx context.Context, trackingCode string) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_code = ? AND deleted = ?", trackingCode, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingCode", trackingCode)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all non-deleted shipments sorted by identity.
func (r *GormShipmentRepository) GetAll(ctx context.Context) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "deleted = ?", false).Error; err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

// SoftDelete flips the deletion flag of the shipment with the given identity.
// Referencing orders are not consulted; rows left pointing at the deleted
// shipment keep their dangling reference.
func (r *GormShipmentRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ? AND deleted = ?", id, false).
		Update("deleted", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentId", id)
	}

	return nil
}
