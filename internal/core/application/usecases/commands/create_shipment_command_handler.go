package commands

import (
	"context"
	"errors"

	"shiporders/internal/core/domain/model/shipment"
	"shiporders/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles the business logic for standalone
// shipment creation. Enforces tracking code uniqueness among non-deleted
// shipments before inserting.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command and returns the generated
// shipment identity.
// Returns a DuplicateKeyError when another non-deleted shipment already
// carries the tracking code.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	if _, err := shipmentRepo.GetByTrackingCode(ctx, cmd.TrackingCode()); err == nil {
		return 0, errs.NewDuplicateKeyError("trackingCode", cmd.TrackingCode())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return 0, err
	}

	newShipment, err := shipment.NewShipment(cmd.TrackingCode(), cmd.Cost(),
		cmd.DispatchedAt(), cmd.EstimatedArrivalAt(),
		cmd.Carrier(), cmd.Type(), cmd.Status(), nil)
	if err != nil {
		return 0, err
	}

	if err = shipmentRepo.Add(ctx, newShipment); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newShipment.ID(), nil
}
