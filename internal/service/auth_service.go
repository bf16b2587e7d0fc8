package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"feedbackpulse/internal/auth"
	apperrors "feedbackpulse/internal/errors"
	"feedbackpulse/internal/model"
	"feedbackpulse/internal/repository"
)

const (
	bcryptCost        = 12
	minPasswordLength = 6
)

// ProviderProfile is what an OAuth provider reports after sign-in.
type ProviderProfile struct {
	Provider          string
	ProviderAccountID string
	Type              string
	Email             string
	Name              string
	Image             string
	AccessToken       string
	RefreshToken      string
	IDToken           string
	TokenType         string
	Scope             string
	ExpiresAt         int64
}

// AuthService handles registration, sign-in and sign-out.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, claims *auth.Claims, user *model.User, err error)
	Logout(ctx context.Context, claims *auth.Claims) error
	SignInWithProvider(ctx context.Context, profile ProviderProfile) (*model.User, error)
}

type authService struct {
	userRepo    repository.UserRepository
	accountRepo repository.AccountRepository
	sessions    *auth.SessionService
	tokenStore  auth.TokenStoreInterface
	now         func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	accountRepo repository.AccountRepository,
	sessions *auth.SessionService,
	tokenStore auth.TokenStoreInterface,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		sessions:    sessions,
		tokenStore:  tokenStore,
		now:         time.Now,
	}
}

// Register creates a credentials user with a hashed password.
func (s *authService) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.ErrMissingCredentials
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.ErrPasswordTooShort
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	// If error is not "record not found", return it (could be a database error)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	passwordHash := string(hashed)

	user := &model.User{
		Email:        email,
		PasswordHash: &passwordHash,
		Name:         nonEmpty(name),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent sign-up can win the race past FindByEmail.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks credentials and issues a session token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *auth.Claims, *model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, nil, fmt.Errorf("find user: %w", err)
	}
	// OAuth-only users have no password to check against.
	if user.PasswordHash == nil {
		return "", nil, nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return "", nil, nil, apperrors.ErrInvalidCredentials
	}

	token, claims, err := s.sessions.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, nil, fmt.Errorf("issue session: %w", err)
	}
	return token, claims, user, nil
}

// Logout revokes the session until it would have expired.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return apperrors.ErrUnauthenticated
	}
	if err := s.tokenStore.Revoke(ctx, claims.ID, s.sessions.Remaining(claims)); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// SignInWithProvider upserts the user by email and links the provider account.
func (s *authService) SignInWithProvider(ctx context.Context, profile ProviderProfile) (*model.User, error) {
	email := strings.TrimSpace(profile.Email)
	if email == "" {
		return nil, apperrors.ErrMissingEmail
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		verified := s.now()
		user = &model.User{
			Email:         email,
			Name:          nonEmpty(profile.Name),
			Image:         nonEmpty(profile.Image),
			EmailVerified: &verified,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}

	_, err = s.accountRepo.FindByProvider(ctx, profile.Provider, profile.ProviderAccountID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find account: %w", err)
	}

	accountType := profile.Type
	if accountType == "" {
		accountType = "oauth"
	}
	account := &model.Account{
		UserID:            user.ID,
		Type:              accountType,
		Provider:          profile.Provider,
		ProviderAccountID: profile.ProviderAccountID,
		AccessToken:       nonEmpty(profile.AccessToken),
		RefreshToken:      nonEmpty(profile.RefreshToken),
		IDToken:           nonEmpty(profile.IDToken),
		TokenType:         nonEmpty(profile.TokenType),
		Scope:             nonEmpty(profile.Scope),
	}
	if profile.ExpiresAt > 0 {
		expiresAt := profile.ExpiresAt
		account.ExpiresAt = &expiresAt
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("link account: %w", err)
	}
	return user, nil
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
