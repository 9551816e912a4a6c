package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/user-auth-service/internal/auth"
	"github.com/spec-kit/user-auth-service/internal/config"
	"github.com/spec-kit/user-auth-service/internal/domain"
	"github.com/spec-kit/user-auth-service/internal/repository"
	apperrors "github.com/spec-kit/user-auth-service/pkg/util"
)

// UserService provides CRUD operations over user accounts.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, users repository.UserRepository) *UserService {
	return &UserService{
		users:      users,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// List returns all users ordered by ascending id.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get returns a single user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

// Create stores a new user. Unlike registration it enforces no minimum
// password length and issues no token.
func (s *UserService) Create(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperrors.NewValidationError("name, email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperrors.NewValidationError("invalid email format")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("a user with this email already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update modifies a subset of a user's fields. Empty inputs keep the stored
// value; the password hash is replaced only when a new password is given.
func (s *UserService) Update(ctx context.Context, id int64, name, email, password string) (*domain.User, error) {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user not found")
		}
		return nil, err
	}

	if name != "" {
		existing.Name = name
	}
	if email != "" {
		existing.Email = email
	}
	if password != "" {
		hash, err := auth.HashPassword(password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = hash
	}

	if err := s.users.Update(ctx, existing); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user not found")
		}
		return nil, err
	}
	return existing, nil
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user not found")
		}
		return err
	}
	return nil
}
