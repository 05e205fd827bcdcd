package commands

import (
	"context"
	"errors"

	"shiporders/internal/core/domain/model/shipment"
	"shiporders/internal/pkg/errs"
)

// UpdateShipmentCommandHandler handles the business logic for shipment updates.
// The target shipment must exist and not be soft-deleted; the new tracking
// code must not collide with any other non-deleted shipment. The order
// back-reference survives the update. Since a shipment may be shared by
// several orders, the update fans out to every order that references it.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentCommandHandler creates a handler for shipment update operations.
func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment update command.
// Returns an ObjectNotFoundError when the shipment is absent or soft-deleted,
// and a DuplicateKeyError when the tracking code belongs to a different
// active shipment.
func (h UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()

	existing, err := shipmentRepo.GetByID(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if byCode, err := shipmentRepo.GetByTrackingCode(ctx, cmd.TrackingCode()); err == nil {
		if byCode.ID() != cmd.ShipmentID() {
			return errs.NewDuplicateKeyError("trackingCode", cmd.TrackingCode())
		}
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	updated, err := shipment.RestoreShipment(cmd.ShipmentID(), cmd.TrackingCode(),
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
