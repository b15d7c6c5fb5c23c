package handler

import "github.com/labstack/echo/v4"

// ctxOperator returns the username and role the Auth middleware stored on c.
// Both are empty on unauthenticated routes.
func ctxOperator(c echo.Context) (username, role string) {
	username, _ = c.Get("username").(string)
	role, _ = c.Get("role").(string)
	return username, role
}
