package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"feedbackpulse/internal/auth"
	"feedbackpulse/internal/model"
	"feedbackpulse/internal/service"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

var testClaims = &auth.Claims{UserID: 7, Email: "owner@example.com"}

// signedIn stands in for the session middleware.
func signedIn(claims *auth.Claims) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims != nil {
				c.Set(auth.ContextKey, claims)
			}
			return next(c)
		}
	}
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	args := m.Called(ctx, email, password, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *auth.Claims, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(2) == nil {
		return "", nil, nil, args.Error(3)
	}
	return args.String(0), args.Get(1).(*auth.Claims), args.Get(2).(*model.User), args.Error(3)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *MockAuthService) SignInWithProvider(ctx context.Context, profile service.ProviderProfile) (*model.User, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, requester auth.Identity, name string) (*model.Project, error) {
	args := m.Called(ctx, requester, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, requester auth.Identity) ([]model.Project, error) {
	args := m.Called(ctx, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, requester auth.Identity, id uint) (*model.Project, error) {
	args := m.Called(ctx, requester, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Rename(ctx context.Context, requester auth.Identity, id uint, name string) (*model.Project, error) {
	args := m.Called(ctx, requester, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, requester auth.Identity, id uint) error {
	args := m.Called(ctx, requester, id)
	return args.Error(0)
}

func (m *MockProjectService) EmbedScript(projectKey string) string {
	args := m.Called(projectKey)
	return args.String(0)
}

type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) Submit(ctx context.Context, in service.SubmitFeedbackInput) (*model.Feedback, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Feedback), args.Error(1)
}

func (m *MockFeedbackService) ListForProject(ctx context.Context, requester auth.Identity, projectID uint, filter string) ([]model.Feedback, error) {
	args := m.Called(ctx, requester, projectID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Feedback), args.Error(1)
}

type MockLabelService struct {
	mock.Mock
}

func (m *MockLabelService) Add(ctx context.Context, requester auth.Identity, feedbackID uint, label string) (*model.FeedbackLabel, error) {
	args := m.Called(ctx, requester, feedbackID, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FeedbackLabel), args.Error(1)
}

func (m *MockLabelService) Remove(ctx context.Context, requester auth.Identity, feedbackID, labelID uint) error {
	args := m.Called(ctx, requester, feedbackID, labelID)
	return args.Error(0)
}
