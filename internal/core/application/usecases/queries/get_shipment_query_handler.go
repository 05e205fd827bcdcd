package queries

import (
	"context"
	"database/sql"

	"shiporders/internal/core/domain/model/shipment"
	"shiporders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves a single shipment read model from the database.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single shipment queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query to retrieve one shipment.
// Returns an ObjectNotFoundError when the shipment is absent or soft-deleted.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			cost,
			dispatched_at,
			estimated_arrival_at,
			carrier,
			type,
			status,
			order_id
		FROM shipments
		WHERE id = ? AND deleted = false
	`, query.ShipmentID()).Rows()
	if err != nil {
		return ShipmentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentResponse{}, err
		}
		return ShipmentResponse{}, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID())
	}

	shipmentResp, err := scanShipmentRow(rows)
	if err != nil {
		return ShipmentResponse{}, err
	}

	return shipmentResp, nil
}

// scanShipmentRow reads one shipment row into the read model.
func scanShipmentRow(rows *sql.Rows) (ShipmentResponse, error) {
	var shipmentResp ShipmentResponse
	var carrier, shipmentType, status int
	var orderID sql.NullInt64

	err := rows.Scan(
		&shipmentResp.ID,
		&shipmentResp.TrackingCode,
		&shipmentResp.Cost,
		&shipmentResp.DispatchedAt,
		&shipmentResp.EstimatedArrivalAt,
		&carrier,
		&shipmentType,
		&status,
		&orderID,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	shipmentResp.Carrier = shipment.Carrier(carrier).String()
	shipmentResp.Type = shipment.Type(shipmentType).String()
	shipmentResp.Status = shipment.Status(status).String()
	if orderID.Valid {
		id := orderID.Int64
		shipmentResp.OrderID = &id
	}

	return shipmentResp, nil
}
