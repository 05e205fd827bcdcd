package queries

import (
	"errors"

	"shiporders/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves all non-deleted orders with their shipments,
// optionally narrowed to customers whose name contains the given fragment
// (case-insensitive).
type GetOrdersQuery struct {
	customerName string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the order list. An empty
// customerName fragment matches every order.
func NewGetOrdersQuery(customerName string) GetOrdersQuery {
	return GetOrdersQuery{
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CustomerName returns the customer name fragment to filter by (may be empty).
func (q GetOrdersQuery) CustomerName() string {
	return q.customerName
}
