package commands

import (
	"errors"
	"fmt"

	"shiporders/internal/pkg/errs"
	"shiporders/internal/pkg/guard"
)

var (
	ErrDeleteShipmentCommandIsNotConstructed = errors.New(
		"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
	)
)

// DeleteShipmentCommand represents a request to soft-delete a shipment
// directly, WITHOUT checking whether any order still references it. Orders
// left pointing at the deleted shipment keep a dangling reference. This is
// the unsafe primitive; the safe path is DetachShipmentCommand, which clears
// the order's reference before deleting.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a command to soft-delete the shipment with
// the given identity.
func NewDeleteShipmentCommand(shipmentID int64) (DeleteShipmentCommand, error) {
	if shipmentID <= 0 {
		return DeleteShipmentCommand{}, errs.NewValueIsInvalidErrorWithCause("shipmentId is invalid",
			fmt.Errorf("%d is not a positive identity", shipmentID))
	}

	return DeleteShipmentCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identity of the shipment to soft-delete.
func (c DeleteShipmentCommand) ShipmentID() int64 {
	return c.shipmentID
}
