package commands_test

import (
	"testing"
	"time"

	"shiporders/internal/core/application/usecases/commands"
	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/order"
	"shiporders/internal/core/domain/model/shipment"
	"shiporders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("5", placedAt(), "Pedro",
		mustMoney(t, 125.00), order.New, nil)
	require.NoError(t, err)
	assert.Equal(t, "5", cmd.Number())
	assert.Equal(t, placedAt(), cmd.PlacedAt())
	assert.Equal(t, "Pedro", cmd.CustomerName())
	assert.InDelta(t, 125.00, cmd.Total().Amount(), 0)
	assert.Equal(t, order.New, cmd.Status())
	assert.Nil(t, cmd.Shipment())
}

func TestNewCreateOrderCommand_WithShipmentDetails(t *testing.T) {
	details := newShipmentDetails(t, 0)
	cmd, err := commands.NewCreateOrderCommand("5", placedAt(), "Pedro",
		mustMoney(t, 125.00), order.New, &details)
	require.NoError(t, err)
	require.NotNil(t, cmd.Shipment())
	assert.True(t, cmd.Shipment().IsNew())
	assert.Equal(t, "TRK-0001", cmd.Shipment().TrackingCode())
}

func TestNewCreateOrderCommand_BlankNumber(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("  ", placedAt(), "Pedro",
		mustMoney(t, 125.00), order.New, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_MissingPlacedAt(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("5", time.Time{}, "Pedro",
		mustMoney(t, 125.00), order.New, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_BlankCustomerName(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("5", placedAt(), "",
		mustMoney(t, 125.00), order.New, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_UnconstructedTotal(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("5", placedAt(), "Pedro",
		kernel.Money{}, order.New, nil)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("5", placedAt(), "Pedro",
		mustMoney(t, 125.00), order.Unknown, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewShipmentDetails_NegativeID(t *testing.T) {
	_, err := commands.NewShipmentDetails(-1, "TRK-0001", mustMoney(t, 9.90),
		dispatchedAt(), arrivalAt(),
		shipment.CarrierDHL, shipment.TypeStandard, shipment.StatusPending)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
