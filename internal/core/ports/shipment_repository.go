package ports

import (
	"context"

	"shiporders/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// All read methods see only non-deleted records.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate and assigns the generated identity
	// onto it. Returns an IdentityNotAssignedError if the store accepts the
	// write but yields no identity.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing, non-deleted shipment aggregate.
	// The soft-delete flag is never written by Update. Because several orders
	// may reference the same shipment, the change is visible to all of them.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// GetByID retrieves a non-deleted shipment by its identity.
	// Returns an ObjectNotFoundError when the shipment is absent or soft-deleted.
	GetByID(ctx context.Context, id int64) (*shipment.Shipment, error)

	// GetByTrackingCode retrieves a non-deleted shipment by its tracking code.
	// Used by the uniqueness check before inserts.
	GetByTrackingCode(ctx context.Context, trackingCode string) (*shipment.Shipment, error)

	// GetAll retrieves all non-deleted shipments.
	GetAll(ctx context.Context) ([]*shipment.Shipment, error)

	// SoftDelete flips the deletion flag of the shipment with the given identity.
	// It does NOT check whether any order still references the shipment; this is
	// the unsafe low-level primitive behind the coordinated detach-then-delete path.
	// Returns an ObjectNotFoundError when the shipment is absent or already deleted.
	SoftDelete(ctx context.Context, id int64) error
}
