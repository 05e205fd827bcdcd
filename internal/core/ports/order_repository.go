// Package ports defines repository and unit-of-work interfaces for the order
// management domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shiporders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All read methods see only non-deleted records; soft-deleted orders behave
// as if they did not exist.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns the generated identity
	// onto it. Returns an IdentityNotAssignedError if the store accepts the
	// write but yields no identity.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing, non-deleted order aggregate.
	// The soft-delete flag is never written by Update.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByID retrieves a non-deleted order by its identity.
	// Returns an ObjectNotFoundError when the order is absent or soft-deleted.
	GetByID(ctx context.Context, id int64) (*order.Order, error)

	// GetByNumber retrieves a non-deleted order by its human-facing number.
	// Used by the uniqueness check before inserts and updates.
	// Returns an ObjectNotFoundError when no active order carries the number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetAll retrieves all non-deleted orders.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// SoftDelete flips the deletion flag of the order with the given identity.
	// No other column is touched; in particular the shipment reference stays.
	// Returns an ObjectNotFoundError when the order is absent or already deleted.
	SoftDelete(ctx context.Context, id int64) error
}
