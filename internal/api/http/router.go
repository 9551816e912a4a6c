package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-auth-service/internal/api/http/handlers"
	"github.com/spec-kit/user-auth-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. The /users group is intentionally left
// unguarded to match the deployed behavior of the original service; only
// /auth/verify requires a bearer token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Health)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/signin", cfg.Auth.Signin)
	authGroup.Get("/verify", cfg.AuthMiddleware.Handle, cfg.Auth.Verify)

	usersGroup := app.Group("/users")
	usersGroup.Get("/", cfg.Users.List)
	usersGroup.Get("/:id", cfg.Users.Get)
	usersGroup.Post("/", cfg.Users.Create)
	usersGroup.Put("/:id", cfg.Users.Update)
	usersGroup.Delete("/:id", cfg.Users.Delete)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
		})
	})
}
