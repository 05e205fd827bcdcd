// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence.
package shipmentrepo

import (
	"time"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipments.
// Tracking code uniqueness only applies among non-deleted rows; like the
// order number it is backed by a partial unique index created at startup.
// OrderID is the informational back-reference, not a foreign key with
// ownership semantics.
type ShipmentDTO struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	TrackingCode       string    `gorm:"not null;index"`
	Cost               float64   `gorm:"type:numeric(12,2);not null"`
	DispatchedAt       time.Time `gorm:"type:date;not null"`
	EstimatedArrivalAt time.Time `gorm:"type:date;not null"`
	Carrier            int       `gorm:"not null"`
	Type               int       `gorm:"not null"`
	Status             int       `gorm:"not null"`
	Deleted            bool      `gorm:"not null;default:false"`
	OrderID            *int64    `gorm:"index"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:                 aggregate.ID(),
		TrackingCode:       aggregate.TrackingCode(),
		Cost:               aggregate.Cost().Amount(),
		DispatchedAt:       aggregate.DispatchedAt(),
		EstimatedArrivalAt: aggregate.EstimatedArrivalAt(),
		Carrier:            int(aggregate.Carrier()),
		Type:               int(aggregate.Type()),
		Status:             int(aggregate.Status()),
		Deleted:            aggregate.IsDeleted(),
		OrderID:            aggregate.OrderID(),
	}
}

// toDomain converts a database DTO to a shipment record using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	cost, err := kernel.NewMoney(dto.Cost)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(dto.ID, dto.TrackingCode, cost,
		dto.DispatchedAt, dto.EstimatedArrivalAt,
		shipment.Carrier(dto.Carrier), shipment.Type(dto.Type), shipment.Status(dto.Status),
		dto.Deleted, dto.OrderID)
}
