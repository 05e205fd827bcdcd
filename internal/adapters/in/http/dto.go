package http

import (
	"time"

	"shiporders/internal/core/application/usecases/queries"
	"shiporders/internal/pkg/errs"
)

// OrderRequest is the payload for creating or updating an order.
// Dates travel as "2006-01-02" strings. An empty status defaults to "New" on
// creation. The shipment payload is only honored on creation: an id of 0
// creates the shipment together with the order, a positive id attaches an
// existing one.
type OrderRequest struct {
	Number       string           `json:"number"`
	PlacedAt     string           `json:"placedAt"`
	CustomerName string           `json:"customerName"`
	Total        float64          `json:"total"`
	Status       string           `json:"status"`
	Shipment     *ShipmentRequest `json:"shipment,omitempty"`
}

// ShipmentRequest is the payload for creating or updating a shipment.
type ShipmentRequest struct {
	ID                 int64   `json:"id,omitempty"`
	TrackingCode       string  `json:"trackingCode"`
	Cost               float64 `json:"cost"`
	DispatchedAt       string  `json:"dispatchedAt"`
	EstimatedArrivalAt string  `json:"estimatedArrivalAt"`
	Carrier            string  `json:"carrier"`
	Type               string  `json:"type"`
	Status             string  `json:"status"`
}

// OrderResponse is the JSON representation of an order read model.
type OrderResponse struct {
	ID           int64             `json:"id"`
	Number       string            `json:"number"`
	PlacedAt     string            `json:"placedAt"`
	CustomerName string            `json:"customerName"`
	Total        float64           `json:"total"`
	Status       string            `json:"status"`
	Shipment     *ShipmentResponse `json:"shipment,omitempty"`
}

// ShipmentResponse is the JSON representation of a shipment read model.
type ShipmentResponse struct {
	ID                 int64   `json:"id"`
	TrackingCode       string  `json:"trackingCode"`
	Cost               float64 `json:"cost"`
	DispatchedAt       string  `json:"dispatchedAt"`
	EstimatedArrivalAt string  `json:"estimatedArrivalAt"`
	Carrier            string  `json:"carrier"`
	Type               string  `json:"type"`
	Status             string  `json:"status"`
	OrderID            *int64  `json:"orderId,omitempty"`
}

// CreatedResponse carries the generated identity back to the caller.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// parseDate parses a "2006-01-02" payload field.
func parseDate(paramName string, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errs.NewValueIsRequiredError(paramName)
	}

	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(paramName+" is invalid", err)
	}

	return parsed, nil
}

func toOrderResponse(result queries.OrderResponse) OrderResponse {
	response := OrderResponse{
		ID:           result.ID,
		Number:       result.Number,
		PlacedAt:     result.PlacedAt.Format(time.DateOnly),
		CustomerName: result.CustomerName,
		Total:        result.Total,
		Status:       result.Status,
	}
	if result.Shipment != nil {
		shipmentResponse := toShipmentResponse(*result.Shipment)
		response.Shipment = &shipmentResponse
	}
	return response
}

func toShipmentResponse(result queries.ShipmentResponse) ShipmentResponse {
	return ShipmentResponse{
		ID:                 result.ID,
		TrackingCode:       result.TrackingCode,
		Cost:               result.Cost,
		DispatchedAt:       result.DispatchedAt.Format(time.DateOnly),
		EstimatedArrivalAt: result.EstimatedArrivalAt.Format(time.DateOnly),
		Carrier:            result.Carrier,
		Type:               result.Type,
		Status:             result.Status,
		OrderID:            result.OrderID,
	}
}
