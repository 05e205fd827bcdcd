package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the order list read model from the database.
// Shipments are joined in the same round trip; soft-deleted orders and
// shipments never appear in the result.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all matching orders.
// Results are sorted by order ID for consistent output.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
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
		WHERE o.deleted = false
	`
	args := make([]any, 0, 1)
	if query.CustomerName() != "" {
		sqlQuery += ` AND o.customer_name ILIKE ?`
		args = append(args, "%"+query.CustomerName()+"%")
	}
	sqlQuery += ` ORDER BY o.id`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
