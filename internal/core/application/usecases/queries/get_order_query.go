// Package queries contains read operations that never modify system state.
// Implements the Query side of the CQRS architecture: handlers read straight
// from the database with raw SQL, bypassing the domain model for performance.
// Soft-deleted rows are filtered out of every result.
package queries

import (
	"errors"
	"fmt"
	"time"

	"shiporders/internal/pkg/errs"
	"shiporders/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single non-deleted order by identity, together
// with the shipment it references (when one is attached and not deleted).
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with the given identity.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId is invalid",
			fmt.Errorf("%d is not a positive identity", orderID))
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identity of the order to retrieve.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// OrderResponse is the read model for a single order.
// Shipment is nil when the order has no attached shipment or the attached
// shipment was deleted out from under it.
type OrderResponse struct {
	ID           int64
	Number       string
	PlacedAt     time.Time
	CustomerName string
	Total        float64
	Status       string
	Shipment     *ShipmentResponse
}
