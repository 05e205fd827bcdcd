package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New(
		"Shipment must be created via NewShipment or RestoreShipment constructor")
)

// Shipment represents a parcel dispatched for one or more orders.
//
// Shipment follows these invariants:
//   - Tracking code is non-blank and unique among non-deleted shipments
//     (uniqueness is enforced by the coordination layer)
//   - Cost is a valid non-negative amount
//   - Dispatch date is present; estimated arrival date never precedes it
//   - The soft-delete flag is only ever flipped through MarkDeleted
//
// The order back-reference is informational only: it records which order the
// shipment was created for, but several orders may reference the same shipment,
// so it is not an ownership relation. Mutating a shipment therefore affects
// every order that references it - a documented, intentional behavior.
type Shipment struct {
	// id is the surrogate identity generated by the store (0 until persisted)
	id int64

	// trackingCode is the carrier tracking code (unique among non-deleted shipments)
	trackingCode string

	// cost is the non-negative shipping cost
	cost kernel.Money

	// dispatchedAt is the date the parcel was handed to the carrier
	dispatchedAt time.Time

	// estimatedArrivalAt is the expected delivery date (never before dispatchedAt)
	estimatedArrivalAt time.Time

	// carrier is the company transporting the parcel
	carrier Carrier

	// shipmentType is the service level
	shipmentType Type

	// status represents the current transit state
	status Status

	// deleted is the soft-delete flag; deleted shipments are invisible to reads
	deleted bool

	// orderID is the informational back-reference to the order the shipment
	// was created for (nil when created standalone)
	orderID *int64

	// isConstructed ensures the shipment was created via a constructor
	isConstructed bool
}

// NewShipment creates a new, not-yet-persisted Shipment with validation.
// The identity stays 0 until the store assigns one via AssignID.
//
// Returns a validation error if the tracking code is blank, the cost was not
// constructed, either date is missing, the estimated arrival precedes the
// dispatch date, or any enum is invalid.
func NewShipment(
	trackingCode string,
	cost kernel.Money,
	dispatchedAt time.Time,
	estimatedArrivalAt time.Time,
	carrier Carrier,
	shipmentType Type,
	status Status,
	orderID *int64,
) (*Shipment, error) {
	shipment := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		shipment.setTrackingCode(trackingCode),
		shipment.setCost(cost),
		shipment.setDates(dispatchedAt, estimatedArrivalAt),
		shipment.setCarrier(carrier),
		shipment.setType(shipmentType),
		shipment.setStatus(status),
		shipment.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// RestoreShipment reconstructs a Shipment from persistence, including its
// generated identity and soft-delete flag. The same field validations as
// NewShipment apply; additionally the identity must be positive.
func RestoreShipment(
	id int64,
	trackingCode string,
	cost kernel.Money,
	dispatchedAt time.Time,
	estimatedArrivalAt time.Time,
	carrier Carrier,
	shipmentType Type,
	status Status,
	deleted bool,
	orderID *int64,
) (*Shipment, error) {
	shipment, err := NewShipment(trackingCode, cost, dispatchedAt, estimatedArrivalAt,
		carrier, shipmentType, status, orderID)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id is invalid",
			fmt.Errorf("%d is not a positive identity", id))
	}

	shipment.id = id
	shipment.deleted = deleted
	return shipment, nil
}

// Validate ensures the Shipment instance was properly constructed through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their identities.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id > 0 && s.id == other.id
}

// ID returns the shipment's surrogate identity (0 if not yet persisted).
func (s *Shipment) ID() int64 {
	return s.id
}

// TrackingCode returns the carrier tracking code.
func (s *Shipment) TrackingCode() string {
	return s.trackingCode
}

// Cost returns the shipping cost.
func (s *Shipment) Cost() kernel.Money {
	return s.cost
}

// DispatchedAt returns the dispatch date.
func (s *Shipment) DispatchedAt() time.Time {
	return s.dispatchedAt
}

// EstimatedArrivalAt returns the estimated arrival date.
func (s *Shipment) EstimatedArrivalAt() time.Time {
	return s.estimatedArrivalAt
}

// Carrier returns the carrier transporting the parcel.
func (s *Shipment) Carrier() Carrier {
	return s.carrier
}

// Type returns the shipment service level.
func (s *Shipment) Type() Type {
	return s.shipmentType
}

// Status returns the current transit state.
func (s *Shipment) Status() Status {
	return s.status
}

// IsDeleted reports whether the shipment has been soft-deleted.
func (s *Shipment) IsDeleted() bool {
	return s.deleted
}

// OrderID returns the informational back-reference to the originating order.
// Returns nil for shipments created standalone.
func (s *Shipment) OrderID() *int64 {
	return s.orderID
}

// AssignID records the identity generated by the store after an insert.
// It may be called exactly once, on a shipment whose identity is still 0.
//
// Returns an IdentityNotAssignedError when the supplied identity is not
// positive: the store accepted the write but yielded no usable identity,
// which is a fatal consistency fault that must surface immediately.
func (s *Shipment) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewIdentityNotAssignedError("shipment")
	}
	if s.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid",
			fmt.Errorf("shipment already has identity %d", s.id))
	}

	s.id = id
	return nil
}

// RecordOrderRef sets the informational back-reference to the order the
// shipment was created for. The order must already be persisted. The
// reference carries no ownership semantics; it is never consulted when
// deleting either record.
func (s *Shipment) RecordOrderRef(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId is invalid",
			fmt.Errorf("%d is not a positive identity", orderID))
	}

	s.orderID = &orderID
	return nil
}

// MarkDeleted flips the soft-delete flag. It performs no check on referencing
// orders - this is the unsafe low-level primitive. Callers needing safety must
// go through the coordinated detach-then-delete path on the order side.
func (s *Shipment) MarkDeleted() {
	s.deleted = true
}

// setTrackingCode validates and sets the tracking code.
// This is a private method used only during construction.
func (s *Shipment) setTrackingCode(trackingCode string) error {
	if strings.TrimSpace(trackingCode) == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	s.trackingCode = trackingCode
	return nil
}

// setCost validates and sets the shipping cost.
// This is a private method used only during construction.
func (s *Shipment) setCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	s.cost = cost
	return nil
}

// setDates validates and sets the dispatch and estimated arrival dates.
// The estimated arrival must not precede the dispatch date.
// This is a private method used only during construction.
func (s *Shipment) setDates(dispatchedAt time.Time, estimatedArrivalAt time.Time) error {
	if dispatchedAt.IsZero() {
		return errs.NewValueIsRequiredError("dispatchedAt")
	}
	if estimatedArrivalAt.IsZero() {
		return errs.NewValueIsRequiredError("estimatedArrivalAt")
	}
	if estimatedArrivalAt.Before(dispatchedAt) {
		return errs.NewValueIsInvalidErrorWithCause("estimatedArrivalAt is invalid",
			fmt.Errorf("estimated arrival %s precedes dispatch %s",
				estimatedArrivalAt.Format(time.DateOnly), dispatchedAt.Format(time.DateOnly)))
	}

	s.dispatchedAt = dispatchedAt
	s.estimatedArrivalAt = estimatedArrivalAt
	return nil
}

// setCarrier validates and sets the carrier.
// This is a private method used only during construction.
func (s *Shipment) setCarrier(carrier Carrier) error {
	if err := carrier.Validate(); err != nil {
		return err
	}
	s.carrier = carrier
	return nil
}

// setType validates and sets the shipment type.
// This is a private method used only during construction.
func (s *Shipment) setType(shipmentType Type) error {
	if err := shipmentType.Validate(); err != nil {
		return err
	}
	s.shipmentType = shipmentType
	return nil
}

// setOrderID validates and sets the informational order back-reference.
// This is a private method used only during construction.
func (s *Shipment) setOrderID(orderID *int64) error {
	if orderID != nil && *orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId is invalid",
			fmt.Errorf("%d is not a positive identity", *orderID))
	}
	s.orderID = orderID
	return nil
}

// setStatus validates and sets the transit status.
// This is a private method used only during construction.
func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
