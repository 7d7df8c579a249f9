package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/employee-api/internal/core/domain"
	"github.com/peopleops/employee-api/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the session middleware and
// fast-fails before any service call: an empty role means the middleware
// never ran, which is a wiring bug surfaced as 401 rather than a panic
// downstream.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("user_id").(string)
	employeeID, _ := c.Get("employee_id").(string)

	return ports.Identity{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       domain.Role(role),
	}, nil
}
