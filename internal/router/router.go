package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	apperrors "feedbackpulse/internal/errors"
	"feedbackpulse/internal/handler"
	fpmiddleware "feedbackpulse/internal/middleware"
)

const (
	feedbackMethods = "POST, OPTIONS"
	widgetMethods   = "GET, OPTIONS"
)

// Register wires routes and middleware.
//
// session authenticates the dashboard routes; ingestLimit guards the public
// feedback endpoint.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	feedbackHandler *handler.FeedbackHandler,
	labelHandler *handler.LabelHandler,
	widgetHandler *handler.WidgetHandler,
	session echo.MiddlewareFunc,
	ingestLimit echo.MiddlewareFunc,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Widget-facing routes are called from arbitrary third-party origins.
	feedbackCORS := fpmiddleware.OpenCORS(feedbackMethods)
	api.POST("/feedback", feedbackHandler.Submit, feedbackCORS, ingestLimit)
	api.OPTIONS("/feedback", handler.Preflight, feedbackCORS)

	widgetCORS := fpmiddleware.OpenCORS(widgetMethods)
	api.GET("/widget", widgetHandler.Serve, widgetCORS)
	api.OPTIONS("/widget", handler.Preflight, widgetCORS)

	// Secured routes (require a session)
	secured := api.Group("", session)

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/auth/session", authHandler.Session)

	// Project routes
	secured.POST("/projects", projectHandler.Create)
	secured.GET("/projects", projectHandler.List)
	secured.GET("/projects/:id", projectHandler.Get)
	secured.PATCH("/projects/:id", projectHandler.Update)
	secured.DELETE("/projects/:id", projectHandler.Delete)
	secured.GET("/projects/:id/feedback", feedbackHandler.List)

	// Label routes
	secured.POST("/feedback/:id/labels", labelHandler.Add)
	secured.DELETE("/feedback/:id/labels/:labelId", labelHandler.Remove)
}

// ErrorHandler renders every error as an ErrorResponse, including the ones
// echo raises itself for unknown routes and unsupported methods.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		c.Logger().Error(err)
		he = echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	var body apperrors.ErrorResponse
	switch m := he.Message.(type) {
	case apperrors.ErrorResponse:
		body = m
	case string:
		body = apperrors.ErrorResponse{Error: strings.ToLower(m), Code: statusCode(he.Code)}
	default:
		body = apperrors.ErrorResponse{Error: strings.ToLower(http.StatusText(he.Code)), Code: statusCode(he.Code)}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(he.Code)
	} else {
		err = c.JSON(he.Code, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

// statusCode turns "Method Not Allowed" into METHOD_NOT_ALLOWED.
func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
