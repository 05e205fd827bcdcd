// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order record, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders.
// Number uniqueness only applies among non-deleted rows, so the backing
// constraint is a partial unique index on number WHERE deleted = false,
// created at startup next to AutoMigrate (AutoMigrate tags cannot express
// partial indexes).
type OrderDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Number       string    `gorm:"not null;index"`
	PlacedAt     time.Time `gorm:"type:date;not null"`
	CustomerName string    `gorm:"not null"`
	Total        float64   `gorm:"type:numeric(12,2);not null"`
	Status       int       `gorm:"not null"`
	Deleted      bool      `gorm:"not null;default:false"`
	ShipmentID   *int64    `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID(),
		Number:       aggregate.Number(),
		PlacedAt:     aggregate.PlacedAt(),
		CustomerName: aggregate.CustomerName(),
		Total:        aggregate.Total().Amount(),
		Status:       int(aggregate.Status()),
		Deleted:      aggregate.IsDeleted(),
		ShipmentID:   aggregate.ShipmentID(),
	}
}

// toDomain converts a database DTO to an order record using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, dto.Number, dto.PlacedAt, dto.CustomerName,
		total, order.Status(dto.Status), dto.Deleted, dto.ShipmentID)
}
