package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shiporders/internal/core/domain/model/order"
	"shiporders/internal/core/domain/model/shipment"
	"shiporders/internal/core/ports"
	"shiporders/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Enforces number uniqueness among non-deleted orders and coordinates the
// insert-shipment-before-order sequence when a new shipment travels with the
// request. The whole sequence runs inside one transaction, so a failed order
// insert can never leave an orphaned shipment row behind.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because the shipment and order repositories must share
// one transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the generated
// order identity.
//
// Returns a DuplicateKeyError when another non-deleted order already carries
// the number, an ObjectNotFoundError when the shipment payload references an
// absent shipment, and a validation error when a new shipment would be
// dispatched before the order was placed.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
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

	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()

	if _, err := orderRepo.GetByNumber(ctx, cmd.Number()); err == nil {
		return 0, errs.NewDuplicateKeyError("number", cmd.Number())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return 0, err
	}

	newOrder, err := order.NewOrder(cmd.Number(), cmd.PlacedAt(), cmd.CustomerName(),
		cmd.Total(), cmd.Status())
	if err != nil {
		return 0, err
	}

	var createdShipment *shipment.Shipment
	if details := cmd.Shipment(); details != nil {
		shipmentID := details.ID()
		if details.IsNew() {
			createdShipment, err = h.insertShipment(ctx, shipmentRepo, newOrder, *details)
			if err != nil {
				return 0, err
			}
			shipmentID = createdShipment.ID()
		} else {
			if err = h.updateExistingShipment(ctx, shipmentRepo, *details); err != nil {
				return 0, err
			}
		}

		if err = newOrder.AttachShipment(shipmentID); err != nil {
			return 0, err
		}
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return 0, err
	}

	// The back-reference can only be recorded once the order row exists.
	if createdShipment != nil {
		if err = createdShipment.RecordOrderRef(newOrder.ID()); err != nil {
			return 0, err
		}
		if err = shipmentRepo.Update(ctx, createdShipment); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newOrder.ID(), nil
}

// insertShipment persists the new shipment travelling with the order so its
// generated identity can be embedded in the order row.
func (h CreateOrderCommandHandler) insertShipment(
	ctx context.Context,
	shipmentRepo ports.ShipmentRepository,
	newOrder *order.Order,
	details ShipmentDetails,
) (*shipment.Shipment, error) {
	if details.DispatchedAt().Before(newOrder.PlacedAt()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("dispatchedAt is invalid",
			fmt.Errorf("dispatch %s precedes order placement %s",
				details.DispatchedAt().Format(time.DateOnly),
				newOrder.PlacedAt().Format(time.DateOnly)))
	}

	if _, err := shipmentRepo.GetByTrackingCode(ctx, details.TrackingCode()); err == nil {
		return nil, errs.NewDuplicateKeyError("trackingCode", details.TrackingCode())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	newShipment, err := shipment.NewShipment(details.TrackingCode(), details.Cost(),
		details.DispatchedAt(), details.EstimatedArrivalAt(),
		details.Carrier(), details.Type(), details.Status(), nil)
	if err != nil {
		return nil, err
	}

	if err = shipmentRepo.Add(ctx, newShipment); err != nil {
		return nil, err
	}

	return newShipment, nil
}

// updateExistingShipment overwrites the referenced shipment with the payload.
// The existing order back-reference survives the update.
func (h CreateOrderCommandHandler) updateExistingShipment(
	ctx context.Context,
	shipmentRepo ports.ShipmentRepository,
	details ShipmentDetails,
) error {
	existing, err := shipmentRepo.GetByID(ctx, details.ID())
	if err != nil {
		return err
	}

	updated, err := shipment.RestoreShipment(details.ID(), details.TrackingCode(),
		details.Cost(), details.DispatchedAt(), details.EstimatedArrivalAt(),
		details.Carrier(), details.Type(), details.Status(),
		existing.IsDeleted(), existing.OrderID())
	if err != nil {
		return err
	}

	return shipmentRepo.Update(ctx, updated)
}
