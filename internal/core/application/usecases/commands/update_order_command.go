package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/order"
	"shiporders/internal/pkg/errs"
	"shiporders/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a request to overwrite the mutable fields of
// an existing order. The shipment reference and the soft-delete flag are not
// part of the payload; they survive the update unchanged.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	number       string
	placedAt     time.Time
	customerName string
	total        kernel.Money
	status       order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
// The identity must be positive; the remaining field rules match
// NewCreateOrderCommand.
func NewUpdateOrderCommand(
	orderID int64,
	number string,
	placedAt time.Time,
	customerName string,
	total kernel.Money,
	status order.Status,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setNumber(number),
		orderCommand.setPlacedAt(placedAt),
		orderCommand.setCustomerName(customerName),
		orderCommand.setTotal(total),
		orderCommand.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identity of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Number returns the human-facing order number.
func (c UpdateOrderCommand) Number() string {
	return c.number
}

// PlacedAt returns the date the order was placed.
func (c UpdateOrderCommand) PlacedAt() time.Time {
	return c.placedAt
}

// CustomerName returns the name of the ordering customer.
func (c UpdateOrderCommand) CustomerName() string {
	return c.customerName
}

// Total returns the order total.
func (c UpdateOrderCommand) Total() kernel.Money {
	return c.total
}

// Status returns the requested order status.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId is invalid",
			fmt.Errorf("%d is not a positive identity", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("number")
	}

	c.number = number
	return nil
}

func (c *UpdateOrderCommand) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}

	c.placedAt = placedAt
	return nil
}

func (c *UpdateOrderCommand) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *UpdateOrderCommand) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}

	c.total = total
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
