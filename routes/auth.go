package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rtharindu/echannaling-admin/middleware"
	"github.com/rtharindu/echannaling-admin/models"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(api fiber.Router, d Deps) {
	auth := api.Group("/auth")

	auth.Post("/login", middleware.ValidateBody[models.LoginInput](), d.Auth.Login)
	auth.Get("/me",
		middleware.Protected(d.JWTSecret),
		middleware.RequireActiveUser(d.Users, d.Log),
		d.Auth.Me,
	)
}
