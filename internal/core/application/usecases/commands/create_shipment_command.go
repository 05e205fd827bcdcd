package commands

import (
	"errors"
	"time"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/shipment"
	"shiporders/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a request to register a standalone
// shipment, not tied to any order. The shipment can later be attached to one
// or more orders by referencing its identity.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	trackingCode       string
	cost               kernel.Money
	dispatchedAt       time.Time
	estimatedArrivalAt time.Time
	carrier            shipment.Carrier
	shipmentType       shipment.Type
	status             shipment.Status

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Field rules match the shipment record: non-blank tracking code, constructed
// cost, both dates present with arrival not before dispatch, valid enums.
func NewCreateShipmentCommand(
	trackingCode string,
	cost kernel.Money,
	dispatchedAt time.Time,
	estimatedArrivalAt time.Time,
	carrier shipment.Carrier,
	shipmentType shipment.Type,
	status shipment.Status,
) (CreateShipmentCommand, error) {
	// Validation is delegated to the record constructor so the rules live in
	// exactly one place.
	if _, err := shipment.NewShipment(trackingCode, cost, dispatchedAt, estimatedArrivalAt,
		carrier, shipmentType, status, nil); err != nil {
		return CreateShipmentCommand{}, err
	}

	return CreateShipmentCommand{
		trackingCode:       trackingCode,
		cost:               cost,
		dispatchedAt:       dispatchedAt,
		estimatedArrivalAt: estimatedArrivalAt,
		carrier:            carrier,
		shipmentType:       shipmentType,
		status:             status,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// TrackingCode returns the carrier tracking code.
func (c CreateShipmentCommand) TrackingCode() string {
	return c.trackingCode
}

// Cost returns the shipping cost.
func (c CreateShipmentCommand) Cost() kernel.Money {
	return c.cost
}

// DispatchedAt returns the dispatch date.
func (c CreateShipmentCommand) DispatchedAt() time.Time {
	return c.dispatchedAt
}

// EstimatedArrivalAt returns the estimated arrival date.
func (c CreateShipmentCommand) EstimatedArrivalAt() time.Time {
	return c.estimatedArrivalAt
}

// Carrier returns the carrier transporting the parcel.
func (c CreateShipmentCommand) Carrier() shipment.Carrier {
	return c.carrier
}

// Type returns the shipment service level.
func (c CreateShipmentCommand) Type() shipment.Type {
	return c.shipmentType
}

// Status returns the transit state.
func (c CreateShipmentCommand) Status() shipment.Status {
	return c.status
}
