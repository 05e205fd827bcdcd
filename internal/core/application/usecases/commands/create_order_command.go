package commands

import (
	"errors"
	"strings"
	"time"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/order"
	"shiporders/internal/pkg/errs"
	"shiporders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new order, optionally
// together with a shipment. When the shipment payload carries an ID of 0 the
// shipment is inserted first so the generated identity can be embedded in the
// order row; a positive ID attaches (and updates) an existing shipment.
//
// Example:
//
//	total, _ := kernel.NewMoney(125.00)
//	cmd, err := NewCreateOrderCommand("5", placedAt, "Pedro", total, order.New, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	number       string
	placedAt     time.Time
	customerName string
	total        kernel.Money
	status       order.Status
	shipment     *ShipmentDetails

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the number and customer name are non-blank, the placement
// date is present, the total was constructed and the status is valid.
// The shipment payload is optional; pass nil to create the order alone.
func NewCreateOrderCommand(
	number string,
	placedAt time.Time,
	customerName string,
	total kernel.Money,
	status order.Status,
	shipmentDetails *ShipmentDetails,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setNumber(number),
		orderCommand.setPlacedAt(placedAt),
		orderCommand.setCustomerName(customerName),
		orderCommand.setTotal(total),
		orderCommand.setStatus(status),
		orderCommand.setShipment(shipmentDetails),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Number returns the human-facing order number.
func (c CreateOrderCommand) Number() string {
	return c.number
}

// PlacedAt returns the date the order was placed.
func (c CreateOrderCommand) PlacedAt() time.Time {
	return c.placedAt
}

// CustomerName returns the name of the ordering customer.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Total returns the order total.
func (c CreateOrderCommand) Total() kernel.Money {
	return c.total
}

// Status returns the requested initial order status.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// Shipment returns the optional shipment payload (nil when absent).
func (c CreateOrderCommand) Shipment() *ShipmentDetails {
	return c.shipment
}

func (c *CreateOrderCommand) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("number")
	}

	c.number = number
	return nil
}

func (c *CreateOrderCommand) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}

	c.placedAt = placedAt
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}

	c.total = total
	return nil
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *CreateOrderCommand) setShipment(details *ShipmentDetails) error {
	if details == nil {
		return nil
	}
	if err := details.Validate(); err != nil {
		return err
	}

	c.shipment = details
	return nil
}
