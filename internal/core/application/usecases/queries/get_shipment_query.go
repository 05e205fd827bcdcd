package queries

import (
	"errors"
	"fmt"
	"time"

	"shiporders/internal/pkg/errs"
	"shiporders/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
)

// GetShipmentQuery retrieves a single non-deleted shipment by identity.
type GetShipmentQuery struct {
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for the shipment with the given identity.
func NewGetShipmentQuery(shipmentID int64) (GetShipmentQuery, error) {
	if shipmentID <= 0 {
		return GetShipmentQuery{}, errs.NewValueIsInvalidErrorWithCause("shipmentId is invalid",
			fmt.Errorf("%d is not a positive identity", shipmentID))
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identity of the shipment to retrieve.
func (q GetShipmentQuery) ShipmentID() int64 {
	return q.shipmentID
}

// ShipmentResponse is the read model for a shipment.
// OrderID is the informational back-reference to the order the shipment was
// created for; nil for standalone shipments.
type ShipmentResponse struct {
	ID                 int64
	TrackingCode       string
	Cost               float64
	DispatchedAt       time.Time
	EstimatedArrivalAt time.Time
	Carrier            string
	Type               string
	Status             string
	OrderID            *int64
}
