package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UsernameContextKey is where GatewayAuth stores the caller's username.
const UsernameContextKey = "username"

// usernameHeader carries the pre-validated identity set by the API gateway.
const usernameHeader = "X-Username"

// GatewayAuth extracts the authenticated username forwarded by the gateway.
// Routes acting on behalf of a user require it; token verification itself
// happens upstream.
func GatewayAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username := c.Request().Header.Get(usernameHeader)
			if username == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing user authentication")
			}
			c.Set(UsernameContextKey, username)
			return next(c)
		}
	}
}
