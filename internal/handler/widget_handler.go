package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"feedbackpulse/internal/errors"
)

// WidgetHandler serves the embeddable widget script.
type WidgetHandler struct {
	script []byte
}

// NewWidgetHandler creates a widget handler for the given script body.
func NewWidgetHandler(script []byte) *WidgetHandler {
	return &WidgetHandler{script: script}
}

// Serve godoc
// @Summary Widget script
// @Description CORS-open and cacheable for an hour.
// @Tags widget
// @Produce application/javascript
// @Success 200 {string} string
// @Failure 404 {object} errors.ErrorResponse
// @Router /widget [get]
func (h *WidgetHandler) Serve(c echo.Context) error {
	if len(h.script) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: "widget not found",
			Code:  "WIDGET_NOT_FOUND",
		})
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")
	return c.Blob(http.StatusOK, "application/javascript; charset=utf-8", h.script)
}
