package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	args := m.Called(ctx, key, ttl)
	return args.Get(0).(int64), args.Error(1)
}

func serveLimited(t *testing.T, counter Counter, limit int) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.POST("/api/feedback", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, OpenCORS("POST, OPTIONS"), RateLimit(counter, limit, time.Minute))

	req := httptest.NewRequest(http.MethodPost, "/api/feedback", nil)
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.9")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name           string
		count          int64
		err            error
		expectedStatus int
	}{
		{name: "under the limit", count: 1, expectedStatus: http.StatusCreated},
		{name: "at the limit", count: 3, expectedStatus: http.StatusCreated},
		{name: "over the limit", count: 4, expectedStatus: http.StatusTooManyRequests},
		{name: "store unavailable", err: errors.New("dial tcp: refused"), expectedStatus: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := new(MockCounter)
			counter.On("Incr", mock.Anything, RateLimitKeyPrefix+"203.0.113.9", time.Minute).Return(tt.count, tt.err)

			rec := serveLimited(t, counter, 3)

			require.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
			if tt.expectedStatus == http.StatusTooManyRequests {
				assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
				assert.Equal(t, "60", rec.Header().Get("Retry-After"))
			}
			counter.AssertExpectations(t)
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	counter := new(MockCounter)
	rec := serveLimited(t, counter, 0)

	assert.Equal(t, http.StatusCreated, rec.Code)
	counter.AssertNotCalled(t, "Incr", mock.Anything, mock.Anything, mock.Anything)
}
