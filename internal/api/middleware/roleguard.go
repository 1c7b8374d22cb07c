package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/escoffier/enrollment-system/internal/core/domain"
	"github.com/escoffier/enrollment-system/internal/core/ports"
)

// RequireRole gates a route on the caller's stored role. The verified email
// from the Auth middleware is looked up in the user store on every request;
// the authorization decision always reflects the current record, so a role
// revocation takes effect immediately. Must be registered after Auth.
func RequireRole(users ports.UserRepository, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil {
				return err
			}
			if user == nil || user.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			return next(c)
		}
	}
}

// RequireAdmin gates a route to admin callers.
func RequireAdmin(users ports.UserRepository) echo.MiddlewareFunc {
	return RequireRole(users, domain.RoleAdmin)
}

// RequireInstructor gates a route to instructor callers.
func RequireInstructor(users ports.UserRepository) echo.MiddlewareFunc {
	return RequireRole(users, domain.RoleInstructor)
}
