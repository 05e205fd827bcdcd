package commands_test

import (
	"testing"

	"shiporders/internal/core/application/usecases/commands"
	"shiporders/internal/core/domain/model/shipment"
	"shiporders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUpdateOrderShipmentCommand(t *testing.T, orderID int64) commands.UpdateOrderShipmentCommand {
	t.Helper()
	cmd, err := commands.NewUpdateOrderShipmentCommand(orderID, "TRK-0002", mustMoney(t, 14.50),
		dispatchedAt(), arrivalAt(),
		shipment.CarrierUPS, shipment.TypeExpress, shipment.StatusInTransit)
	require.NoError(t, err)
	return cmd
}

func TestUpdateOrderShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newUpdateOrderShipmentCommand(t, 42)
	shipmentID := int64(7)

	orderRepo := new(MockOrderRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByID", ctx, int64(42)).
			Return(storedOrder(t, 42, "5", &shipmentID), nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByID", ctx, int64(7)).
			Return(storedShipment(t, 7, "TRK-0001"), nil).Once(),
		shipmentRepo.On("GetByTrackingCode", ctx, "TRK-0002").
			Return(nil, errs.NewObjectNotFoundError("trackingCode", "TRK-0002")).Once(),
		shipmentRepo.On("Update", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Run(func(args mock.Arguments) {
				s := args.Get(1).(*shipment.Shipment)
				assert.Equal(t, int64(7), s.ID())
				assert.Equal(t, "TRK-0002", s.TrackingCode())
				assert.Equal(t, shipment.CarrierUPS, s.Carrier())
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderShipmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderShipmentCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := newUpdateOrderShipmentCommand(t, 999)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByID", ctx, int64(999)).
			Return(nil, errs.NewObjectNotFoundError("orderId", int64(999))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestUpdateOrderShipmentCommandHandler_Handle_OrderWithoutShipment(t *testing.T) {
	ctx := t.Context()
	cmd := newUpdateOrderShipmentCommand(t, 42)

	orderRepo := new(MockOrderRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByID", ctx, int64(42)).
			Return(storedOrder(t, 42, "5", nil), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateOrderShipmentCommandHandler_Handle_TrackingCodeTaken(t *testing.T) {
	ctx := t.Context()
	cmd := newUpdateOrderShipmentCommand(t, 42)
	shipmentID := int64(7)

	orderRepo := new(MockOrderRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByID", ctx, int64(42)).
			Return(storedOrder(t, 42, "5", &shipmentID), nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByID", ctx, int64(7)).
			Return(storedShipment(t, 7, "TRK-0001"), nil).Once(),
		shipmentRepo.On("GetByTrackingCode", ctx, "TRK-0002").
			Return(storedShipment(t, 8, "TRK-0002"), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateKey)
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestNewUpdateOrderShipmentCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderShipmentCommand(0, "TRK-0002", mustMoney(t, 14.50),
		dispatchedAt(), arrivalAt(),
		shipment.CarrierUPS, shipment.TypeExpress, shipment.StatusInTransit)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
