package commands

import (
	"context"
	"errors"

	"shiporders/internal/core/domain/model/order"
	"shiporders/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles the business logic for order updates.
// The target order must exist and not be soft-deleted; the new number must
// not collide with any other non-deleted order. The shipment reference is
// carried over from the stored row untouched.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// Returns an ObjectNotFoundError when the order is absent or soft-deleted,
// and a DuplicateKeyError when the number belongs to a different active order.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	existing, err := orderRepo.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Reusing the order's own number is fine; only a collision with a
	// different active order is rejected.
	if byNumber, err := orderRepo.GetByNumber(ctx, cmd.Number()); err == nil {
		if byNumber.ID() != cmd.OrderID() {
			return errs.NewDuplicateKeyError("number", cmd.Number())
		}
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	updated, err := order.RestoreOrder(cmd.OrderID(), cmd.Number(), cmd.PlacedAt(),
		cmd.CustomerName(), cmd.Total(), cmd.Status(),
		existing.IsDeleted(), existing.ShipmentID())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, updated); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
