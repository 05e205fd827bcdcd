package commands

import (
	"errors"
	"fmt"

	"shiporders/internal/pkg/errs"
	"shiporders/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand represents a request to soft-delete an order.
// Deleting an order never touches the shipment it references: the shipment
// may be shared with other orders, so it stays active and the stored
// reference is left in place on the deleted row.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to soft-delete the order with the
// given identity.
func NewDeleteOrderCommand(orderID int64) (DeleteOrderCommand, error) {
	if orderID <= 0 {
		return DeleteOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("orderId is invalid",
			fmt.Errorf("%d is not a positive identity", orderID))
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identity of the order to soft-delete.
func (c DeleteOrderCommand) OrderID() int64 {
	return c.orderID
}
