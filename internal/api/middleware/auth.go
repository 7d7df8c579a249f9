package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/employee-api/internal/api/metrics"
	"github.com/peopleops/employee-api/internal/core/domain"
	"github.com/peopleops/employee-api/internal/core/ports"
)

// HeaderSessionToken carries the opaque session token on every protected
// request. /auth/* routes never pass through this middleware.
const HeaderSessionToken = "X-Session-Token"

// Session resolves the session token and injects the requester's identity
// into the request context. A missing header and an unknown or expired token
// produce the same 401 so callers cannot probe token validity; session-store
// failures propagate as internal errors instead.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(HeaderSessionToken)

			session, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrAuthenticationRequired) {
					metrics.AuthRejectionsTotal.Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
				return err
			}

			c.Set("user_id", session.UserID)
			c.Set("employee_id", session.EmployeeID)
			c.Set("role", string(session.Role))

			return next(c)
		}
	}
}
