package commands

import (
	"errors"
	"fmt"
	"time"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/shipment"
	"shiporders/internal/pkg/errs"
	"shiporders/internal/pkg/guard"
)

var (
	ErrShipmentDetailsAreNotConstructed = errors.New(
		"ShipmentDetails must be created via NewShipmentDetails constructor",
	)
)

// ShipmentDetails carries the shipment payload embedded in an order creation
// request. An ID of 0 means the shipment does not exist yet and must be
// inserted before the order; a positive ID refers to an existing shipment
// that will be updated and attached.
type ShipmentDetails struct { //nolint:recvcheck //using for validation
	id                 int64
	trackingCode       string
	cost               kernel.Money
	dispatchedAt       time.Time
	estimatedArrivalAt time.Time
	carrier            shipment.Carrier
	shipmentType       shipment.Type
	status             shipment.Status

	guard guard.ConstructorGuard
}

// NewShipmentDetails creates a validated shipment payload.
// Field rules mirror the shipment record itself: non-blank tracking code,
// constructed cost, both dates present with arrival not before dispatch,
// valid enums. The ID must not be negative.
func NewShipmentDetails(
	id int64,
	trackingCode string,
	cost kernel.Money,
	dispatchedAt time.Time,
	estimatedArrivalAt time.Time,
	carrier shipment.Carrier,
	shipmentType shipment.Type,
	status shipment.Status,
) (ShipmentDetails, error) {
	details := ShipmentDetails{
		guard: guard.NewConstructorGuard(),
	}

	if id < 0 {
		return ShipmentDetails{}, errs.NewValueIsInvalidErrorWithCause("shipmentId is invalid",
			fmt.Errorf("%d is negative", id))
	}

	// Field validation is delegated to the record constructor so the rules
	// live in exactly one place.
	if _, err := shipment.NewShipment(trackingCode, cost, dispatchedAt, estimatedArrivalAt,
		carrier, shipmentType, status, nil); err != nil {
		return ShipmentDetails{}, err
	}

	details.id = id
	details.trackingCode = trackingCode
	details.cost = cost
	details.dispatchedAt = dispatchedAt
	details.estimatedArrivalAt = estimatedArrivalAt
	details.carrier = carrier
	details.shipmentType = shipmentType
	details.status = status
	return details, nil
}

// Validate ensures the details were created through the constructor.
func (d ShipmentDetails) Validate() error {
	return d.guard.Validate(ErrShipmentDetailsAreNotConstructed)
}

// ID returns the referenced shipment identity (0 for a new shipment).
func (d ShipmentDetails) ID() int64 {
	return d.id
}

// IsNew reports whether the payload describes a not-yet-persisted shipment.
func (d ShipmentDetails) IsNew() bool {
	return d.id == 0
}

// TrackingCode returns the carrier tracking code.
func (d ShipmentDetails) TrackingCode() string {
	return d.trackingCode
}

// Cost returns the shipping cost.
func (d ShipmentDetails) Cost() kernel.Money {
	return d.cost
}

// DispatchedAt returns the dispatch date.
func (d ShipmentDetails) DispatchedAt() time.Time {
	return d.dispatchedAt
}

// EstimatedArrivalAt returns the estimated arrival date.
func (d ShipmentDetails) EstimatedArrivalAt() time.Time {
	return d.estimatedArrivalAt
}

// Carrier returns the carrier transporting the parcel.
func (d ShipmentDetails) Carrier() shipment.Carrier {
	return d.carrier
}

// Type returns the shipment service level.
func (d ShipmentDetails) Type() shipment.Type {
	return d.shipmentType
}

// Status returns the transit state.
func (d ShipmentDetails) Status() shipment.Status {
	return d.status
}
