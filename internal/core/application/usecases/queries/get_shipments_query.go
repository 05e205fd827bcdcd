package queries

import (
	"errors"

	"shiporders/internal/pkg/guard"
)

var (
	ErrGetShipmentsQueryIsNotConstructed = errors.New(
		"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
	)
)

// GetShipmentsQuery retrieves all non-deleted shipments.
type GetShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a query to retrieve the shipment list.
// This is a parameterless query that fetches every active shipment.
func NewGetShipmentsQuery() GetShipmentsQuery {
	return GetShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}
