// Package http exposes the order and shipment operations over a JSON REST
// API built on Echo. Handlers translate payloads into commands and queries
// and map the error taxonomy onto HTTP status codes: validation failures are
// 400, missing objects 404, number/tracking collisions 409, everything else
// 500.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"shiporders/internal/core/application/usecases/commands"
	"shiporders/internal/core/application/usecases/queries"
	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/order"
	"shiporders/internal/core/domain/model/shipment"
	"shiporders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderHandler         commands.UpdateOrderCommandHandler
	deleteOrderHandler         commands.DeleteOrderCommandHandler
	createShipmentHandler      commands.CreateShipmentCommandHandler
	updateShipmentHandler      commands.UpdateShipmentCommandHandler
	deleteShipmentHandler      commands.DeleteShipmentCommandHandler
	detachShipmentHandler      commands.DetachShipmentCommandHandler
	updateOrderShipmentHandler commands.UpdateOrderShipmentCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	getOrdersHandler    queries.GetOrdersQueryHandler
	getShipmentHandler  queries.GetShipmentQueryHandler
	getShipmentsHandler queries.GetShipmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	detachShipmentHandler commands.DetachShipmentCommandHandler,
	updateOrderShipmentHandler commands.UpdateOrderShipmentCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getShipmentsHandler queries.GetShipmentsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		createShipmentHandler:      createShipmentHandler,
		updateShipmentHandler:      updateShipmentHandler,
		deleteShipmentHandler:      deleteShipmentHandler,
		detachShipmentHandler:      detachShipmentHandler,
		updateOrderShipmentHandler: updateOrderShipmentHandler,
		getOrderHandler:            getOrderHandler,
		getOrdersHandler:           getOrdersHandler,
		getShipmentHandler:         getShipmentHandler,
		getShipmentsHandler:        getShipmentsHandler,
	}
}

// RegisterRoutes wires all handlers into the Echo instance under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PUT("/orders/:id/shipment", s.UpdateOrderShipment)
	api.DELETE("/orders/:orderId/shipment/:shipmentId", s.DetachShipment)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.GetShipments)
	api.GET("/shipments/:id", s.GetShipment)
	api.PUT("/shipments/:id", s.UpdateShipment)
	api.DELETE("/shipments/:id", s.DeleteShipment)
}

// CreateOrder handles POST /api/v1/orders.
// When the payload carries a shipment, order and shipment are created (or
// attached) in one transaction; the response returns the generated order id.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request OrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	placedAt, err := parseDate("placedAt", request.PlacedAt)
	if err != nil {
		return errorResponse(ctx, err)
	}

	total, err := kernel.NewMoney(request.Total)
	if err != nil {
		return errorResponse(ctx, err)
	}

	status, err := orderStatusFromRequest(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var details *commands.ShipmentDetails
	if request.Shipment != nil {
		shipmentDetails, detailsErr := shipmentDetailsFromRequest(*request.Shipment)
		if detailsErr != nil {
			return errorResponse(ctx, detailsErr)
		}
		details = &shipmentDetails
	}

	cmd, err := commands.NewCreateOrderCommand(request.Number, placedAt,
		request.CustomerName, total, status, details)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID})
}

// GetOrders handles GET /api/v1/orders.
// The optional customerName query parameter narrows the list to customers
// whose name contains the fragment, case-insensitively.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery(ctx.QueryParam("customerName"))

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, result := range orders {
		response[i] = toOrderResponse(result)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// UpdateOrder handles PUT /api/v1/orders/:id.
// The shipment reference is not part of the update payload and survives
// unchanged; a shipment object in the body is ignored.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request OrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	placedAt, err := parseDate("placedAt", request.PlacedAt)
	if err != nil {
		return errorResponse(ctx, err)
	}

	total, err := kernel.NewMoney(request.Total)
	if err != nil {
		return errorResponse(ctx, err)
	}

	status, err := orderStatusFromRequest(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, request.Number, placedAt,
		request.CustomerName, total, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - soft-deletes the order.
// The referenced shipment is left untouched.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderShipment handles PUT /api/v1/orders/:id/shipment - updates the
// shipment the order currently references. Shared shipments propagate the
// change to every referencing order.
func (s *Server) UpdateOrderShipment(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ShipmentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cost, dispatchedAt, estimatedArrivalAt, carrier, shipmentType, status, err :=
		shipmentFieldsFromRequest(request)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderShipmentCommand(orderID, request.TrackingCode, cost,
		dispatchedAt, estimatedArrivalAt, carrier, shipmentType, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateOrderShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DetachShipment handles DELETE /api/v1/orders/:orderId/shipment/:shipmentId.
// This is the safe removal path: the order's reference is cleared before the
// shipment is soft-deleted, in one transaction.
func (s *Server) DetachShipment(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	shipmentID, err := pathID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	cmd, err := commands.NewDetachShipmentCommand(orderID, shipmentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.detachShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateShipment handles POST /api/v1/shipments - creates a standalone shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request ShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cost, dispatchedAt, estimatedArrivalAt, carrier, shipmentType, status, err :=
		shipmentFieldsFromRequest(request)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(request.TrackingCode, cost,
		dispatchedAt, estimatedArrivalAt, carrier, shipmentType, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	shipmentID, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID})
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(ctx echo.Context) error {
	shipments, err := s.getShipmentsHandler.Handle(ctx.Request().Context(),
		queries.NewGetShipmentsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ShipmentResponse, len(shipments))
	for i, result := range shipments {
		response[i] = toShipmentResponse(result)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(result))
}

// UpdateShipment handles PUT /api/v1/shipments/:id.
// Because several orders may reference the shipment, the change is visible
// to all of them.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var request ShipmentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cost, dispatchedAt, estimatedArrivalAt, carrier, shipmentType, status, err :=
		shipmentFieldsFromRequest(request)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentCommand(id, request.TrackingCode, cost,
		dispatchedAt, estimatedArrivalAt, carrier, shipmentType, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
// This is the unsafe path: referencing orders are not checked and may be
// left with a dangling reference.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	cmd, err := commands.NewDeleteShipmentCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// shipmentDetailsFromRequest converts a shipment payload into the command
// value object used by order creation.
func shipmentDetailsFromRequest(request ShipmentRequest) (commands.ShipmentDetails, error) {
	cost, dispatchedAt, estimatedArrivalAt, carrier, shipmentType, status, err :=
		shipmentFieldsFromRequest(request)
	if err != nil {
		return commands.ShipmentDetails{}, err
	}

	return commands.NewShipmentDetails(request.ID, request.TrackingCode, cost,
		dispatchedAt, estimatedArrivalAt, carrier, shipmentType, status)
}

// shipmentFieldsFromRequest parses the typed shipment fields shared by the
// create, update and embedded payloads.
func shipmentFieldsFromRequest(request ShipmentRequest) (
	kernel.Money, time.Time, time.Time, shipment.Carrier, shipment.Type, shipment.Status, error,
) {
	var zeroMoney kernel.Money
	var zeroTime time.Time

	cost, err := kernel.NewMoney(request.Cost)
	if err != nil {
		return zeroMoney, zeroTime, zeroTime, 0, 0, 0, err
	}

	dispatchedAt, err := parseDate("dispatchedAt", request.DispatchedAt)
	if err != nil {
		return zeroMoney, zeroTime, zeroTime, 0, 0, 0, err
	}

	estimatedArrivalAt, err := parseDate("estimatedArrivalAt", request.EstimatedArrivalAt)
	if err != nil {
		return zeroMoney, zeroTime, zeroTime, 0, 0, 0, err
	}

	carrier, err := shipment.CarrierFromString(request.Carrier)
	if err != nil {
		return zeroMoney, zeroTime, zeroTime, 0, 0, 0, err
	}

	shipmentType, err := shipment.TypeFromString(request.Type)
	if err != nil {
		return zeroMoney, zeroTime, zeroTime, 0, 0, 0, err
	}

	status, err := shipmentStatusFromRequest(request.Status)
	if err != nil {
		return zeroMoney, zeroTime, zeroTime, 0, 0, 0, err
	}

	return cost, dispatchedAt, estimatedArrivalAt, carrier, shipmentType, status, nil
}

// orderStatusFromRequest parses the order status, defaulting to New when the
// payload leaves it empty.
func orderStatusFromRequest(value string) (order.Status, error) {
	if value == "" {
		return order.New, nil
	}
	return order.StatusFromString(value)
}

// shipmentStatusFromRequest parses the shipment status, defaulting to
// Pending when the payload leaves it empty.
func shipmentStatusFromRequest(value string) (shipment.Status, error) {
	if value == "" {
		return shipment.StatusPending, nil
	}
	return shipment.StatusFromString(value)
}

// pathID parses a positive integer path parameter.
func pathID(ctx echo.Context, name string) (int64, error) {
	return strconv.ParseInt(ctx.Param(name), 10, 64)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps the error taxonomy onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateKey):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
