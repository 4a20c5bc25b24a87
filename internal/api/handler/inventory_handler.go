package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
)

// InventoryHandler handles component stock routes. Mutations are accepted
// into the movement pipeline and applied asynchronously, serialized per SKU.
type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

type createItemRequest struct {
	SKU      string `json:"sku"      validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Category string `json:"category" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
	Unit     string `json:"unit"     validate:"required"`
	MinStock int    `json:"min_stock" validate:"gte=0"`
	Location string `json:"location"`
}

type adjustRequest struct {
	Delta   int    `json:"delta"   validate:"required"`
	Note    string `json:"note"    validate:"required"`
	Inbound bool   `json:"inbound"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/inventory/:sku.
func (h *InventoryHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("sku"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /api/inventory.
func (h *InventoryHandler) Create(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.CreateItem(c.Request().Context(), domain.InventoryItem{
		SKU:      req.SKU,
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		MinStock: req.MinStock,
		Location: req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Adjust handles POST /api/inventory/:sku/adjust. The correction is
// enqueued, not applied inline, so the response is 202.
//
// @Summary      Adjust stock for a component
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sku   path      string         true  "Component SKU"
// @Param        body  body      adjustRequest  true  "Signed delta and note"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/inventory/{sku}/adjust [post]
func (h *InventoryHandler) Adjust(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req adjustRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Adjust(c.Request().Context(), ports.AdjustInput{
		SKU:     c.Param("sku"),
		Delta:   req.Delta,
		Note:    req.Note,
		Actor:   userID,
		Inbound: req.Inbound,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "adjustment accepted"})
}
