package dto

import (
	"time"

	"github.com/spec-kit/user-auth-service/internal/domain"
)

// SignupRequest payload for registration.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest payload for login.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest payload for admin-side user creation.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest payload for partial updates; empty fields are left unchanged.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user, without the password hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRecord is the full row view returned by the listing and by-id reads.
// It deliberately carries the stored password hash; see DESIGN.md.
type UserRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps a domain user to its public view.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// NewUserRecord maps a domain user to its full row view.
func NewUserRecord(user *domain.User) UserRecord {
	return UserRecord{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
	}
}
