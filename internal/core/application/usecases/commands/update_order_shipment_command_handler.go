package commands

import (
	"context"
	"errors"
	"fmt"

	"shiporders/internal/core/domain/model/shipment"
	"shiporders/internal/pkg/errs"
)

// UpdateOrderShipmentCommandHandler handles shipment updates addressed
// through the owning order. The order must exist and reference a shipment;
// the referenced shipment is then overwritten the same way a direct shipment
// update would. Other orders sharing the shipment observe the change too.
type UpdateOrderShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderShipmentCommandHandler creates a handler for order-addressed shipment updates.
func NewUpdateOrderShipmentCommandHandler(uowFactory UoWFactory) UpdateOrderShipmentCommandHandler {
	return UpdateOrderShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order-addressed shipment update.
// Returns an ObjectNotFoundError when the order is absent or soft-deleted,
// a ValueIsInvalidError when the order references no shipment, and a
// DuplicateKeyError when the tracking code belongs to a different active
// shipment.
func (h UpdateOrderShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateOrderShipmentCommand) error {
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

	existingOrder, err := uow.OrderRepository().GetByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	referenced := existingOrder.ShipmentID()
	if referenced == nil {
		return errs.NewValueIsInvalidErrorWithCause("orderId is invalid",
			fmt.Errorf("order %d references no shipment", cmd.OrderID()))
	}

	shipmentRepo := uow.ShipmentRepository()

	existing, err := shipmentRepo.GetByID(ctx, *referenced)
	if err != nil {
		return err
	}

	if byCode, err := shipmentRepo.GetByTrackingCode(ctx, cmd.TrackingCode()); err == nil {
		if byCode.ID() != existing.ID() {
			return errs.NewDuplicateKeyError("trackingCode", cmd.TrackingCode())
		}
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	updated, err := shipment.RestoreShipment(existing.ID(), cmd.TrackingCode(),
		cmd.Cost(), cmd.DispatchedAt(), cmd.EstimatedArrivalAt(),
		cmd.Carrier(), cmd.Type(), cmd.Status(),
		existing.IsDeleted(), existing.OrderID())
	if err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, updated); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
