package auth

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "feedbackpulse/internal/errors"
)

// ContextKey is where the middleware stores *Claims on the echo context.
const ContextKey = "session"

var errRevoked = errors.New("session revoked")

// Middleware authenticates requests from the session cookie, falling back to
// an Authorization bearer header, and rejects revoked sessions.
func Middleware(sessions *SessionService, store TokenStoreInterface, cookieName string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "cookie:" + cookieName + ",header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			claims, err := sessions.Validate(raw)
			if err != nil {
				return nil, err
			}
			revoked, _ := store.IsRevoked(c.Request().Context(), claims.ID)
			if revoked {
				return nil, errRevoked
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.ErrUnauthenticated.Error(),
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// ClaimsFrom returns the session claims stored by Middleware.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ContextKey).(*Claims)
	return claims, ok && claims != nil
}

// IdentityFrom returns the authenticated requester, or ErrUnauthenticated.
func IdentityFrom(c echo.Context) (Identity, error) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return Identity{}, apperrors.ErrUnauthenticated
	}
	return claims.Identity(), nil
}
