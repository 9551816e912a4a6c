package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-auth-service/internal/api/dto"
	"github.com/spec-kit/user-auth-service/internal/auth"
	"github.com/spec-kit/user-auth-service/internal/service"
	apperrors "github.com/spec-kit/user-auth-service/pkg/util"
)

// AuthHandler exposes signup, signin and token verification endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}

	user, token, err := h.auth.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"data": fiber.Map{
			"user":  dto.NewUserResponse(user),
			"token": token,
		},
	})
}

// Signin handles POST /auth/signin.
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req dto.SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}

	user, token, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Signed in successfully",
		"data": fiber.Map{
			"user":  dto.NewUserResponse(user),
			"token": token,
		},
	})
}

// Verify handles GET /auth/verify. The bearer middleware has already parsed
// the token; the account is re-fetched because the row may be gone.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	user, err := h.auth.Verify(c.UserContext(), claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Token is valid",
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
		},
	})
}
