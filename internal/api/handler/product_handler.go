package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
)

// ProductHandler handles the assembled-product catalogue routes.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type bomItemRequest struct {
	SKU      string `json:"sku"      validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type productRequest struct {
	SKU              string           `json:"sku"                validate:"required"`
	Name             string           `json:"name"               validate:"required"`
	Category         string           `json:"category"           validate:"required,oneof=cpu apu embedded"`
	UnitPrice        float64          `json:"unit_price"         validate:"required,gt=0"`
	UnitCost         float64          `json:"unit_cost"          validate:"required,gt=0"`
	BuildTimeMinutes int              `json:"build_time_minutes" validate:"required,gt=0"`
	BOM              []bomItemRequest `json:"bom"                validate:"required,min=1,dive"`
}

func (r productRequest) toInput() ports.CreateProductInput {
	bom := make([]domain.BOMItem, 0, len(r.BOM))
	for _, line := range r.BOM {
		bom = append(bom, domain.BOMItem{SKU: line.SKU, Quantity: line.Quantity})
	}
	return ports.CreateProductInput{
		SKU:              r.SKU,
		Name:             r.Name,
		Category:         r.Category,
		UnitPrice:        r.UnitPrice,
		UnitCost:         r.UnitCost,
		BuildTimeMinutes: r.BuildTimeMinutes,
		BOM:              bom,
	}
}

// Create handles POST /api/products.
//
// @Summary      Add a product to the catalogue
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// List handles GET /api/products.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update handles PUT /api/products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted"})
}
