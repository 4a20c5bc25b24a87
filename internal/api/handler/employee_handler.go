package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coreforge/mrp/internal/core/ports"
)

// EmployeeHandler serves the assembly roster routes.
type EmployeeHandler struct {
	service ports.TeamService
}

func NewEmployeeHandler(service ports.TeamService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type employeeRequest struct {
	Name       string `json:"name"       validate:"required"`
	Position   string `json:"position"   validate:"required"`
	Department string `json:"department" validate:"required,oneof=assembly testing packaging logistics"`
	Shift      string `json:"shift"      validate:"required,oneof=morning evening night"`
	Active     bool   `json:"active"`
}

func (r employeeRequest) toInput() ports.EmployeeInput {
	return ports.EmployeeInput{
		Name:       r.Name,
		Position:   r.Position,
		Department: r.Department,
		Shift:      r.Shift,
		Active:     r.Active,
	}
}

// List handles GET /api/employees.
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Get handles GET /api/employees/:id.
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Create handles POST /api/employees.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employee)
}

// Update handles PUT /api/employees/:id.
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "employee removed"})
}
