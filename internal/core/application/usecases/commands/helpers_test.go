package commands_test

import (
	"testing"
	"time"

	"shiporders/internal/core/application/usecases/commands"
	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/order"
	"shiporders/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func placedAt() time.Time {
	return time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
}

func dispatchedAt() time.Time {
	return time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
}

func arrivalAt() time.Time {
	return time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
}

func newShipmentDetails(t *testing.T, id int64) commands.ShipmentDetails {
	t.Helper()
	details, err := commands.NewShipmentDetails(id, "TRK-0001", mustMoney(t, 9.90),
		dispatchedAt(), arrivalAt(),
		shipment.CarrierDHL, shipment.TypeStandard, shipment.StatusPending)
	require.NoError(t, err)
	return details
}

func storedOrder(t *testing.T, id int64, number string, shipmentID *int64) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, number, placedAt(), "Pedro", mustMoney(t, 125.00),
		order.New, false, shipmentID)
	require.NoError(t, err)
	return o
}

func storedShipment(t *testing.T, id int64, trackingCode string) *shipment.Shipment {
	t.Helper()
	s, err := shipment.RestoreShipment(id, trackingCode, mustMoney(t, 9.90),
		dispatchedAt(), arrivalAt(),
		shipment.CarrierDHL, shipment.TypeStandard, shipment.StatusPending, false, nil)
	require.NoError(t, err)
	return s
}
