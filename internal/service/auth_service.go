package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/user-auth-service/internal/auth"
	"github.com/spec-kit/user-auth-service/internal/config"
	"github.com/spec-kit/user-auth-service/internal/domain"
	"github.com/spec-kit/user-auth-service/internal/repository"
	apperrors "github.com/spec-kit/user-auth-service/pkg/util"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

// AuthService coordinates registration, login and identity verification.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account and issues a bearer token for it.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", apperrors.NewValidationError("name, email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, "", apperrors.NewValidationError("invalid email format")
	}
	if len(password) < minPasswordLength {
		return nil, "", apperrors.NewValidationError("password must be at least 6 characters")
	}

	// Convenience pre-check only; the unique index on email is what actually
	// guarantees uniqueness under concurrent registration.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", apperrors.NewConflict("a user with this email already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, _, err := s.tokenMgr.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates an account by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperrors.NewValidationError("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.NewNotFound("user not found")
		}
		return nil, "", err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", apperrors.NewAuthenticationError("invalid credentials")
	}

	token, _, err := s.tokenMgr.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Verify re-fetches the account named by a verified token claim. The claim
// may outlive the row it refers to.
func (s *AuthService) Verify(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
