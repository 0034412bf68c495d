package middleware

import (
	"github.com/labstack/echo/v4"
)

// NoCache sets cache-defeating headers on every response. Dashboard data is
// live operational state; a stale cached table is worse than a refetch.
func NoCache() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("Cache-Control", "no-store, no-cache, must-revalidate")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")
			return next(c)
		}
	}
}
