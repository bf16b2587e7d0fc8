package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// OpenCORS allows any origin to call the wrapped routes with the given methods.
// Headers are set before the handler runs so error responses carry them too.
// OPTIONS requests are answered with 200 and an empty body.
func OpenCORS(methods string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowMethods, methods)
			h.Set(echo.HeaderAccessControlAllowHeaders, echo.HeaderContentType)

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}
