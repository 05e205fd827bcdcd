package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer order. It is the aggregate root coordinating
// the optional association with a Shipment.
//
// Order follows these invariants:
//   - Number is non-blank and unique among non-deleted orders (uniqueness is
//     enforced by the coordination layer, not by the aggregate itself)
//   - Customer name is non-blank
//   - Total is a valid non-negative amount
//   - The soft-delete flag is only ever flipped through MarkDeleted
//   - The shipment reference is only changed through AttachShipment/DetachShipment,
//     never by a generic field update
//
// An identity of 0 means the order has not been persisted yet; the generated
// identity is assigned exactly once via AssignID after the store accepts the insert.
type Order struct {
	// id is the surrogate identity generated by the store (0 until persisted)
	id int64

	// number is the human-facing order number (unique among non-deleted orders)
	number string

	// placedAt is the date the order was placed
	placedAt time.Time

	// customerName identifies the customer the order belongs to
	customerName string

	// total is the non-negative order total
	total kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// deleted is the soft-delete flag; deleted orders are invisible to reads
	deleted bool

	// shipmentID references the associated shipment (nil if none).
	// Several orders may reference the same shipment.
	shipmentID *int64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new, not-yet-persisted Order with validation.
// The identity stays 0 until the store assigns one via AssignID, and no
// shipment is attached.
//
// Returns a validation error if the number or customer name is blank, the
// placement date is missing, the total was not constructed, or the status
// is invalid.
func NewOrder(
	number string,
	placedAt time.Time,
	customerName string,
	total kernel.Money,
	status Status,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setNumber(number),
		order.setPlacedAt(placedAt),
		order.setCustomerName(customerName),
		order.setTotal(total),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its generated
// identity, soft-delete flag and shipment reference. The same field validations
// as NewOrder apply; additionally the identity must be positive.
func RestoreOrder(
	id int64,
	number string,
	placedAt time.Time,
	customerName string,
	total kernel.Money,
	status Status,
	deleted bool,
	shipmentID *int64,
) (*Order, error) {
	order, err := NewOrder(number, placedAt, customerName, total, status)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id is invalid",
			fmt.Errorf("%d is not a positive identity", id))
	}
	if shipmentID != nil && *shipmentID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("shipmentId is invalid",
			fmt.Errorf("%d is not a positive identity", *shipmentID))
	}

	order.id = id
	order.deleted = deleted
	order.shipmentID = shipmentID
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identities.
// Orders are considered equal if they have the same persisted identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id > 0 && o.id == other.id
}

// ID returns the order's surrogate identity (0 if not yet persisted).
func (o *Order) ID() int64 {
	return o.id
}

// Number returns the human-facing order number.
func (o *Order) Number() string {
	return o.number
}

// PlacedAt returns the date the order was placed.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// CustomerName returns the customer the order belongs to.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Total returns the order total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsDeleted reports whether the order has been soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.deleted
}

// ShipmentID returns the identity of the associated shipment.
// Returns nil if no shipment is attached.
func (o *Order) ShipmentID() *int64 {
	return o.shipmentID
}

// AssignID records the identity generated by the store after an insert.
// It may be called exactly once, on an order whose identity is still 0.
//
// Returns an IdentityNotAssignedError when the supplied identity is not
// positive: the store accepted the write but yielded no usable identity,
// which is a fatal consistency fault that must surface immediately.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewIdentityNotAssignedError("order")
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid",
			fmt.Errorf("order already has identity %d", o.id))
	}

	o.id = id
	return nil
}

// AttachShipment sets the shipment reference to the given identity.
// The identity must be positive, i.e. the shipment must already be persisted -
// this ordering is why the coordination layer inserts a new shipment before
// the order that references it.
func (o *Order) AttachShipment(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipmentId is invalid",
			fmt.Errorf("%d is not a positive identity", shipmentID))
	}

	o.shipmentID = &shipmentID
	return nil
}

// DetachShipment clears the shipment reference. The shipment itself is left
// untouched; deleting it afterwards is the caller's decision.
func (o *Order) DetachShipment() {
	o.shipmentID = nil
}

// MarkDeleted flips the soft-delete flag. The shipment reference is deliberately
// NOT cleared: other orders may share the referenced shipment, so deleting this
// order's record must not delete or orphan it.
func (o *Order) MarkDeleted() {
	o.deleted = true
}

// setNumber validates and sets the order number.
// This is a private method used only during construction.
func (o *Order) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

// setPlacedAt validates and sets the placement date.
// This is a private method used only during construction.
func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	o.placedAt = placedAt
	return nil
}

// setCustomerName validates and sets the customer name.
// This is a private method used only during construction.
func (o *Order) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

// setTotal validates and sets the order total.
// This is a private method used only during construction.
func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

// setStatus validates and sets the order status.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
