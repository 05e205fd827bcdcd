package commands

import (
	"errors"
	"fmt"

	"shiporders/internal/pkg/errs"
	"shiporders/internal/pkg/guard"
)

var (
	ErrDetachShipmentCommandIsNotConstructed = errors.New(
		"DetachShipmentCommand must be created via NewDetachShipmentCommand constructor",
	)
)

// DetachShipmentCommand represents the safe shipment removal path: clear the
// order's shipment reference first, then soft-delete the shipment. Both steps
// run in one transaction, so the order can never be observed pointing at a
// deleted shipment.
type DetachShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewDetachShipmentCommand creates a command to detach the given shipment
// from the given order and delete it. Both identities must be positive.
func NewDetachShipmentCommand(orderID int64, shipmentID int64) (DetachShipmentCommand, error) {
	if orderID <= 0 {
		return DetachShipmentCommand{}, errs.NewValueIsInvalidErrorWithCause("orderId is invalid",
			fmt.Errorf("%d is not a positive identity", orderID))
	}
	if shipmentID <= 0 {
		return DetachShipmentCommand{}, errs.NewValueIsInvalidErrorWithCause("shipmentId is invalid",
			fmt.Errorf("%d is not a positive identity", shipmentID))
	}

	return DetachShipmentCommand{
		orderID:    orderID,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DetachShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDetachShipmentCommandIsNotConstructed)
}

// OrderID returns the identity of the order holding the reference.
func (c DetachShipmentCommand) OrderID() int64 {
	return c.orderID
}

// ShipmentID returns the identity of the shipment to detach and delete.
func (c DetachShipmentCommand) ShipmentID() int64 {
	return c.shipmentID
}
