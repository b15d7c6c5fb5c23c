package middleware

import (
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/clanops/clan-gateway/internal/core/domain"
)

// RBAC admits operators whose "role" (set by Auth) is in roles. Anything else
// is rejected with domain.ErrForbidden for the error handler to render.
func RBAC(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" || !slices.Contains(roles, role) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
