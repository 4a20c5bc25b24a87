package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
)

// MaintenanceHandler handles equipment ticketing routes.
type MaintenanceHandler struct {
	service ports.MaintenanceService
}

func NewMaintenanceHandler(service ports.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

type createTicketRequest struct {
	Equipment   string `json:"equipment"   validate:"required"`
	Description string `json:"description" validate:"required"`
	Department  string `json:"department"  validate:"required,oneof=assembly testing packaging logistics"`
	Priority    string `json:"priority"    validate:"required,oneof=low medium high critical"`
}

type updateTicketRequest struct {
	Status     string `json:"status"      validate:"required,oneof=open in_progress resolved cancelled"`
	AssignedTo string `json:"assigned_to,omitempty"`
}

// Create handles POST /api/maintenance. The requester identity comes from
// the verified token claims, never from the body.
//
// @Summary      Open a maintenance request
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTicketRequest  true  "Ticket details"
// @Success      201   {object}  domain.MaintenanceRequest
// @Failure      400   {object}  messageResponse
// @Router       /api/maintenance [post]
func (h *MaintenanceHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := h.service.Create(c.Request().Context(), ports.CreateTicketInput{
		Equipment:   req.Equipment,
		Description: req.Description,
		Department:  req.Department,
		Priority:    domain.TicketPriority(req.Priority),
		RequestedBy: userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ticket)
}

// List handles GET /api/maintenance.
func (h *MaintenanceHandler) List(c echo.Context) error {
	tickets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

// Get handles GET /api/maintenance/:id.
func (h *MaintenanceHandler) Get(c echo.Context) error {
	ticket, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

// UpdateStatus handles PUT /api/maintenance/:id/status.
func (h *MaintenanceHandler) UpdateStatus(c echo.Context) error {
	var req updateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.TicketStatus(req.Status), req.AssignedTo)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

// Delete handles DELETE /api/maintenance/:id.
func (h *MaintenanceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "maintenance request deleted"})
}
