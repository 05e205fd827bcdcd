package commands

import (
	"context"
	"fmt"

	"shiporders/internal/pkg/errs"
)

// DetachShipmentCommandHandler handles the coordinated detach-then-delete
// sequence. The order's shipment reference is cleared and persisted before
// the shipment itself is soft-deleted, all inside a single transaction.
// Other orders sharing the shipment are NOT touched; after this command they
// hold a dangling reference, same as with the direct deletion path.
type DetachShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewDetachShipmentCommandHandler creates a handler for the detach-then-delete operation.
// Requires a UoWFactory because the order and shipment repositories must
// share one transaction.
func NewDetachShipmentCommandHandler(uowFactory UoWFactory) DetachShipmentCommandHandler {
	return DetachShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the detach command.
// Returns an ObjectNotFoundError when the order is absent or soft-deleted,
// and a validation error when the order does not reference the given
// shipment. The shipment deletion itself reports an ObjectNotFoundError when
// the shipment row is absent or already deleted.
func (h DetachShipmentCommandHandler) Handle(ctx context.Context, cmd DetachShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()

	existing, err := orderRepo.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	referenced := existing.ShipmentID()
	if referenced == nil || *referenced != cmd.ShipmentID() {
		return errs.NewValueIsInvalidErrorWithCause("shipmentId is invalid",
			fmt.Errorf("order %d does not reference shipment %d", cmd.OrderID(), cmd.ShipmentID()))
	}

	existing.DetachShipment()
	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = shipmentRepo.SoftDelete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
