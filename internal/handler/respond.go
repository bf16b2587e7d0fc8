package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"feedbackpulse/internal/auth"
	"feedbackpulse/internal/errors"
)

// MessageResponse is returned by operations that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

// fail maps a service error to its HTTP form. Internal failures are logged
// here, once, and callers only ever see the generic message.
func fail(c echo.Context, err error) error {
	if errors.IsInternal(err) {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// Preflight answers CORS preflight for the public endpoints.
func Preflight(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func badRequest(message, code string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func invalidBody() error {
	return badRequest("invalid request body", "INVALID_REQUEST")
}

// bindAndValidate decodes the body into req and runs struct validation.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(req); err != nil {
		return badRequest(validationMessage(err), "VALIDATION_FAILED")
	}
	return nil
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name, label string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, badRequest("invalid "+label+" id", "INVALID_ID")
	}
	return uint(id), nil
}

// requester returns the authenticated identity or a 401.
func requester(c echo.Context) (auth.Identity, error) {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return auth.Identity{}, fail(c, err)
	}
	return identity, nil
}
