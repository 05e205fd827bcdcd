package queries

import (
	"context"
	"database/sql"

	"shiporders/internal/core/domain/model/order"
	"shiporders/internal/core/domain/model/shipment"
	"shiporders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// The shipment is joined in one round trip; a deleted shipment is treated as
// absent, so a dangling reference simply yields an order with no shipment.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its shipment.
// Returns an ObjectNotFoundError when the order is absent or soft-deleted.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.placed_at,
			o.customer_name,
			o.total,
			o.status,
			s.id,
			s.tracking_code,
			s.cost,
			s.dispatched_at,
			s.estimated_arrival_at,
			s.carrier,
			s.type,
			s.status,
			s.order_id
		FROM orders o
		LEFT JOIN shipments s ON s.id = o.shipment_id AND s.deleted = false
		WHERE o.id = ? AND o.deleted = false
	`, query.OrderID()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	orderResp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	return orderResp, nil
}

// scanOrderRow reads one joined order row. The shipment columns are nullable
// because of the LEFT JOIN; they are either all present or all absent.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var orderResp OrderResponse
	var orderStatus int
	var shipmentID, shipmentCarrier, shipmentType, shipmentStatus, shipmentOrderID sql.NullInt64
	var trackingCode sql.NullString
	var cost sql.NullFloat64
	var dispatchedAt, estimatedArrivalAt sql.NullTime

	err := rows.Scan(
		&orderResp.ID,
		&orderResp.Number,
		&orderResp.PlacedAt,
		&orderResp.CustomerName,
		&orderResp.Total,
		&orderStatus,
		&shipmentID,
		&trackingCode,
		&cost,
		&dispatchedAt,
		&estimatedArrivalAt,
		&shipmentCarrier,
		&shipmentType,
		&shipmentStatus,
		&shipmentOrderID,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderResp.Status = order.Status(orderStatus).String()

	if shipmentID.Valid {
		shipmentResp := ShipmentResponse{
			ID:                 shipmentID.Int64,
			TrackingCode:       trackingCode.String,
			Cost:               cost.Float64,
			DispatchedAt:       dispatchedAt.Time,
			EstimatedArrivalAt: estimatedArrivalAt.Time,
			Carrier:            shipment.Carrier(shipmentCarrier.Int64).String(),
			Type:               shipment.Type(shipmentType.Int64).String(),
			Status:             shipment.Status(shipmentStatus.Int64).String(),
		}
		if shipmentOrderID.Valid {
			orderID := shipmentOrderID.Int64
			shipmentResp.OrderID = &orderID
		}
		orderResp.Shipment = &shipmentResp
	}

	return orderResp, nil
}
