package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coreforge/mrp/internal/core/ports"
)

// FinancialHandler serves the reporting routes. Summary and per-order
// revenue are administrator-only; the overview is public and aggregate-only.
type FinancialHandler struct {
	service ports.FinancialService
}

func NewFinancialHandler(service ports.FinancialService) *FinancialHandler {
	return &FinancialHandler{service: service}
}

// reportWindow parses optional ?from= / ?to= query params (RFC 3339 dates).
// An absent window defaults to the trailing 30 days.
func reportWindow(c echo.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "from must be an RFC 3339 timestamp")
		}
		from = parsed
	}
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "to must be an RFC 3339 timestamp")
		}
		to = parsed
	}
	return from, to, nil
}

// Summary handles GET /api/financial/summary.
//
// @Summary      Financial summary for a reporting window
// @Tags         financial
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Window start (RFC 3339)"
// @Param        to    query     string  false  "Window end (RFC 3339)"
// @Success      200   {object}  ports.FinancialSummary
// @Failure      403   {object}  messageResponse
// @Router       /api/financial/summary [get]
func (h *FinancialHandler) Summary(c echo.Context) error {
	from, to, err := reportWindow(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summary(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Orders handles GET /api/financial/orders, the per-order revenue lines.
func (h *FinancialHandler) Orders(c echo.Context) error {
	from, to, err := reportWindow(c)
	if err != nil {
		return err
	}

	lines, err := h.service.OrderRevenue(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lines)
}

// Overview handles GET /api/financial/overview. Public, counts only.
func (h *FinancialHandler) Overview(c echo.Context) error {
	overview, err := h.service.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}
