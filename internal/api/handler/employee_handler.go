package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/employee-api/internal/api/metrics"
	"github.com/peopleops/employee-api/internal/core/domain"
	"github.com/peopleops/employee-api/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List handles GET /employees.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Param        X-Session-Token  header    string  true  "Session token"
// @Success      200              {array}   employeeResponse
// @Failure      401              {object}  map[string]string
// @Failure      403              {object}  map[string]string
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	requester, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	employees, err := h.service.List(c.Request().Context(), requester)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toEmployeeResponses(employees))
}

// Get handles GET /employees/:id.
//
// @Summary      Get one employee
// @Tags         employees
// @Produce      json
// @Param        X-Session-Token  header    string  true  "Session token"
// @Param        id               path      string  true  "Employee id"
// @Success      200              {object}  employeeResponse
// @Failure      401              {object}  map[string]string
// @Failure      403              {object}  map[string]string
// @Failure      404              {object}  map[string]string
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	requester, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	employee, err := h.service.Get(c.Request().Context(), requester, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

// Create handles POST /employees.
//
// @Summary      Create an employee with its user account
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        X-Session-Token  header    string                 true  "Session token"
// @Param        body             body      createEmployeeRequest  true  "Employee details and credentials"
// @Success      201              {object}  employeeResponse
// @Failure      400              {object}  map[string]string
// @Failure      403              {object}  map[string]string
// @Failure      409              {object}  map[string]string
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	requester, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	employee, err := h.service.Create(c.Request().Context(), requester, ports.CreateEmployeeInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Position:    req.Position,
		DateOfBirth: req.DateOfBirth,
		Email:       req.Email,
		Phone:       req.Phone,
		Username:    req.Username,
		Password:    req.Password,
		Role:        domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	metrics.EmployeeMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toEmployeeResponse(employee))
}

// Update handles PUT /employees/:id.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        X-Session-Token  header    string                 true  "Session token"
// @Param        id               path      string                 true  "Employee id"
// @Param        body             body      updateEmployeeRequest  true  "Updated employee details"
// @Success      200              {object}  employeeResponse
// @Failure      400              {object}  map[string]string
// @Failure      403              {object}  map[string]string
// @Failure      404              {object}  map[string]string
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	requester, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	employee, err := h.service.Update(c.Request().Context(), requester, c.Param("id"), ports.UpdateEmployeeInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Position:    req.Position,
		DateOfBirth: req.DateOfBirth,
		Email:       req.Email,
		Phone:       req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.EmployeeMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

// Delete handles DELETE /employees/:id.
//
// @Summary      Delete an employee and its user account
// @Tags         employees
// @Produce      json
// @Param        X-Session-Token  header  string  true  "Session token"
// @Param        id               path    string  true  "Employee id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	requester, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), requester, c.Param("id")); err != nil {
		return err
	}

	metrics.EmployeeMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
