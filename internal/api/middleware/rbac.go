package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/employee-api/internal/core/domain"
)

// RequireRole guards a route group against requesters outside the allowed
// roles. Ownership-based decisions (an employee touching their own record)
// stay in the service policy; this gate only handles the coarse role cut.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "access forbidden"})
			}
			return next(c)
		}
	}
}
