// Package http exposes the order lifecycle workflows over a JSON API.
// Each endpoint translates the request body into a command, hands it to the
// matching handler and maps the pipeline outcome back to a response:
// successful outcomes return 200, rejected ones 400 with the collected
// reasons, and internal failures 500.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/returns"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler  commands.PlaceOrderCommandHandler
	modifyOrderHandler commands.ModifyOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler
	returnOrderHandler commands.ReturnOrderCommandHandler

	getAllOrdersHandler queries.GetAllOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	modifyOrderHandler commands.ModifyOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	returnOrderHandler commands.ReturnOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:   placeOrderHandler,
		modifyOrderHandler:  modifyOrderHandler,
		cancelOrderHandler:  cancelOrderHandler,
		returnOrderHandler:  returnOrderHandler,
		getAllOrdersHandler: getAllOrdersHandler,
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.PlaceOrder)
	e.GET("/api/v1/orders", s.GetOrders)
	e.POST("/api/v1/orders/:orderNumber/modify", s.ModifyOrder)
	e.POST("/api/v1/orders/:orderNumber/cancel", s.CancelOrder)
	e.POST("/api/v1/orders/:orderNumber/return", s.ReturnOrder)
}

// OrderLineRequest is one raw order line as submitted by the client.
type OrderLineRequest struct {
	ProductCode string `json:"productCode"`
	Quantity    string `json:"quantity"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	Items      []OrderLineRequest `json:"items"`
	Street     string             `json:"street"`
	City       string             `json:"city"`
	PostalCode string             `json:"postalCode"`
	Country    string             `json:"country"`
}

// ModifyOrderRequest is the body of POST /api/v1/orders/{orderNumber}/modify.
type ModifyOrderRequest struct {
	NewItems []OrderLineRequest `json:"newItems"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/{orderNumber}/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// ReturnOrderRequest is the body of POST /api/v1/orders/{orderNumber}/return.
type ReturnOrderRequest struct {
	Reason string             `json:"reason"`
	Items  []OrderLineRequest `json:"items"`
}

// Error is the standard error body for malformed requests and internal
// failures. Business rejections use OutcomeResponse instead.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OutcomeResponse mirrors a pipeline outcome. Fields absent from a given
// workflow stay at their zero value and are omitted.
type OutcomeResponse struct {
	Success         bool             `json:"success"`
	OrderNumber     string           `json:"orderNumber,omitempty"`
	ReturnNumber    string           `json:"returnNumber,omitempty"`
	TotalPrice      *decimal.Decimal `json:"totalPrice,omitempty"`
	PriceDifference *decimal.Decimal `json:"priceDifference,omitempty"`
	RefundAmount    *decimal.Decimal `json:"refundAmount,omitempty"`
	ShippingFee     *decimal.Decimal `json:"shippingFee,omitempty"`
	Date            *time.Time       `json:"date,omitempty"`
	Summary         string           `json:"summary,omitempty"`
	Reasons         []string         `json:"reasons,omitempty"`
}

func outcomeStatus(success bool) int {
	if success {
		return http.StatusOK
	}
	return http.StatusBadRequest
}

func toLines(items []OrderLineRequest) []order.UnvalidatedLine {
	lines := make([]order.UnvalidatedLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, order.UnvalidatedLine{
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
		})
	}
	return lines
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd := commands.NewPlaceOrderCommand(toLines(req.Items),
		req.Street, req.City, req.PostalCode, req.Country)

	outcome, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	resp := OutcomeResponse{
		Success:     outcome.Success,
		OrderNumber: outcome.OrderNumber,
		Summary:     outcome.Summary,
		Reasons:     outcome.Reasons,
	}
	if outcome.Success {
		resp.TotalPrice = &outcome.TotalPrice
		resp.Date = &outcome.PlacedDate
	}

	return ctx.JSON(outcomeStatus(outcome.Success), resp)
}

// ModifyOrder handles POST /api/v1/orders/{orderNumber}/modify.
func (s *Server) ModifyOrder(ctx echo.Context) error {
	var req ModifyOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd := commands.NewModifyOrderCommand(ctx.Param("orderNumber"), toLines(req.NewItems))

	outcome, err := s.modifyOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to modify order",
		})
	}

	resp := OutcomeResponse{
		Success:     outcome.Success,
		OrderNumber: outcome.OrderNumber,
		Summary:     outcome.Summary,
		Reasons:     outcome.Reasons,
	}
	if outcome.Success {
		resp.TotalPrice = &outcome.NewTotalPrice
		resp.PriceDifference = &outcome.PriceDifference
		resp.Date = &outcome.ModifiedDate
	}

	return ctx.JSON(outcomeStatus(outcome.Success), resp)
}

// CancelOrder handles POST /api/v1/orders/{orderNumber}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd := commands.NewCancelOrderCommand(ctx.Param("orderNumber"), req.Reason)

	outcome, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to cancel order",
		})
	}

	resp := OutcomeResponse{
		Success:     outcome.Success,
		OrderNumber: outcome.OrderNumber,
		Summary:     outcome.Summary,
		Reasons:     outcome.Reasons,
	}
	if outcome.Success {
		resp.RefundAmount = &outcome.RefundAmount
		resp.Date = &outcome.CancelledDate
	}

	return ctx.JSON(outcomeStatus(outcome.Success), resp)
}

// ReturnOrder handles POST /api/v1/orders/{orderNumber}/return.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	var req ReturnOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]returns.UnvalidatedItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, returns.UnvalidatedItem{
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
		})
	}

	cmd := commands.NewReturnOrderCommand(ctx.Param("orderNumber"), req.Reason, items)

	outcome, err := s.returnOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process return",
		})
	}

	resp := OutcomeResponse{
		Success:      outcome.Success,
		OrderNumber:  outcome.OrderNumber,
		ReturnNumber: outcome.ReturnNumber,
		Summary:      outcome.Summary,
		Reasons:      outcome.Reasons,
	}
	if outcome.Success {
		resp.RefundAmount = &outcome.RefundAmount
		resp.ShippingFee = &outcome.ShippingFee
		resp.Date = &outcome.ProcessedDate
	}

	return ctx.JSON(outcomeStatus(outcome.Success), resp)
}

// OrderSummary is one row of GET /api/v1/orders.
type OrderSummary struct {
	OrderNumber string          `json:"orderNumber"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	PlacedAt    time.Time       `json:"placedAt"`
	City        string          `json:"city"`
	Country     string          `json:"country"`
}

// GetOrders handles GET /api/v1/orders - lists all stored orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderSummary, len(orders))
	for i, row := range orders {
		response[i] = OrderSummary{
			OrderNumber: row.OrderNumber,
			TotalAmount: row.TotalAmount,
			Status:      row.Status,
			PlacedAt:    row.PlacedAt,
			City:        row.City,
			Country:     row.Country,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
