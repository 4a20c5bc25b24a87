package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
)

// OrderHandler handles HTTP requests for order intake and lifecycle.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type createOrderRequest struct {
	CustomerName  string    `json:"customer_name"  validate:"required"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	ProductID     string    `json:"product_id"     validate:"required"`
	Quantity      int       `json:"quantity"       validate:"required,gt=0"`
	DeliveryDate  time.Time `json:"delivery_date"  validate:"required"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in_production delivered cancelled"`
}

// Create handles POST /api/orders.
//
// @Summary      Create a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		DeliveryDate:  req.DeliveryDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// List handles GET /api/orders with an optional ?status= filter.
func (h *OrderHandler) List(c echo.Context) error {
	filter := ports.OrderFilter{Status: domain.OrderStatus(c.QueryParam("status"))}
	orders, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// UpdateStatus handles PUT /api/orders/:id/status.
//
// @Summary      Move an order along its lifecycle
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Order id"
// @Param        body  body      updateOrderStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Delete handles DELETE /api/orders/:id. Orders already in production or
// delivered are rejected and left unchanged.
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "order deleted"})
}
