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
	ErrUpdateShipmentCommandIsNotConstructed = errors.New(
		"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
	)
)

// UpdateShipmentCommand represents a request to overwrite the mutable fields
// of an existing shipment. Because several orders may reference the same
// shipment, the change is visible to all of them at once.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID         int64
	trackingCode       string
	cost               kernel.Money
	dispatchedAt       time.Time
	estimatedArrivalAt time.Time
	carrier            shipment.Carrier
	shipmentType       shipment.Type
	status             shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to update an existing shipment.
// The identity must be positive; the remaining field rules match
// NewCreateShipmentCommand.
func NewUpdateShipmentCommand(
	shipmentID int64,
	trackingCode string,
	cost kernel.Money,
	dispatchedAt time.Time,
	estimatedArrivalAt time.Time,
	carrier shipment.Carrier,
	shipmentType shipment.Type,
	status shipment.Status,
) (UpdateShipmentCommand, error) {
	if shipmentID <= 0 {
		return UpdateShipmentCommand{}, errs.NewValueIsInvalidErrorWithCause("shipmentId is invalid",
			fmt.Errorf("%d is not a positive identity", shipmentID))
	}

	if _, err := shipment.NewShipment(trackingCode, cost, dispatchedAt, estimatedArrivalAt,
		carrier, shipmentType, status, nil); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return UpdateShipmentCommand{
		shipmentID:         shipmentID,
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
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identity of the shipment to update.
func (c UpdateShipmentCommand) ShipmentID() int64 {
	return c.shipmentID
}

// TrackingCode returns the carrier tracking code.
func (c UpdateShipmentCommand) TrackingCode() string {
	return c.trackingCode
}

// Cost returns the shipping cost.
func (c UpdateShipmentCommand) Cost() kernel.Money {
	return c.cost
}

// DispatchedAt returns the dispatch date.
func (c UpdateShipmentCommand) DispatchedAt() time.Time {
	return c.dispatchedAt
}

// EstimatedArrivalAt returns the estimated arrival date.
func (c UpdateShipmentCommand) EstimatedArrivalAt() time.Time {
	return c.estimatedArrivalAt
}

// Carrier returns the carrier transporting the parcel.
func (c UpdateShipmentCommand) Carrier() shipment.Carrier {
	return c.carrier
}

// Type returns the shipment service level.
func (c UpdateShipmentCommand) Type() shipment.Type {
	return c.shipmentType
}

// Status returns the transit state.
func (c UpdateShipmentCommand) Status() shipment.Status {
	return c.status
}
