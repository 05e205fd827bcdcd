package commands

import (
	"errors"
	"fmt"
	"time"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/shipment"
	"shiporders/internal/pkg/errs"
	"shiporders/internal/pkg/guard"
)

var (
	ErrUpdateOrderShipmentCommandIsNotConstructed = errors.New(
		"UpdateOrderShipmentCommand must be created via NewUpdateOrderShipmentCommand constructor",
	)
)

// UpdateOrderShipmentCommand represents a request to overwrite the shipment
// an order currently references, addressed through the owning order rather
// than the shipment identity. The order's reference decides which shipment
// row is written.
type UpdateOrderShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID            int64
	trackingCode       string
	cost               kernel.Money
	dispatchedAt       time.Time
	estimatedArrivalAt time.Time
	carrier            shipment.Carrier
	shipmentType       shipment.Type
	status             shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderShipmentCommand creates a command to update the shipment of
// an existing order. The order identity must be positive; the remaining
// field rules match NewCreateShipmentCommand.
func NewUpdateOrderShipmentCommand(
	orderID int64,
	trackingCode string,
	cost kernel.Money,
	dispatchedAt time.Time,
	estimatedArrivalAt time.Time,
	carrier shipment.Carrier,
	shipmentType shipment.Type,
	status shipment.Status,
) (UpdateOrderShipmentCommand, error) {
	if orderID <= 0 {
		return UpdateOrderShipmentCommand{}, errs.NewValueIsInvalidErrorWithCause("orderId is invalid",
			fmt.Errorf("%d is not a positive identity", orderID))
	}

	if _, err := shipment.NewShipment(trackingCode, cost, dispatchedAt, estimatedArrivalAt,
		carrier, shipmentType, status, nil); err != nil {
		return UpdateOrderShipmentCommand{}, err
	}

	return UpdateOrderShipmentCommand{
		orderID:            orderID,
		trackingCode:       trackingCode,
		cost:               cost,
		dispatchedAt:       dispatchedAt,
		estimatedArrivalAt: estimatedArrivalAt,
		carrier:            carrier,
		shipmentType:       shipmentType,
		status:             status,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderShipmentCommandIsNotConstructed)
}

// OrderID returns the identity of the order whose shipment is updated.
func (c UpdateOrderShipmentCommand) OrderID() int64 {
	return c.orderID
}

// TrackingCode returns the carrier tracking code.
func (c UpdateOrderShipmentCommand) TrackingCode() string {
	return c.trackingCode
}

// Cost returns the shipping cost.
func (c UpdateOrderShipmentCommand) Cost() kernel.Money {
	return c.cost
}

// DispatchedAt returns the dispatch date.
func (c UpdateOrderShipmentCommand) DispatchedAt() time.Time {
	return c.dispatchedAt
}

// EstimatedArrivalAt returns the estimated arrival date.
func (c UpdateOrderShipmentCommand) EstimatedArrivalAt() time.Time {
	return c.estimatedArrivalAt
}

// Carrier returns the carrier transporting the parcel.
func (c UpdateOrderShipmentCommand) Carrier() shipment.Carrier {
	return c.carrier
}

// Type returns the shipment service level.
func (c UpdateOrderShipmentCommand) Type() shipment.Type {
	return c.shipmentType
}

// Status returns the transit state.
func (c UpdateOrderShipmentCommand) Status() shipment.Status {
	return c.status
}
