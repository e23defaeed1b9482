package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/rtharindu/echannaling-admin/middleware"
	"github.com/rtharindu/echannaling-admin/models"
	"github.com/rtharindu/echannaling-admin/services"
	"github.com/rtharindu/echannaling-admin/utils"
)

type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

type AuthController struct {
	users  Authenticator
	secret string
	ttl    time.Duration
	log    zerolog.Logger
}

func NewAuthController(users Authenticator, secret string, ttl time.Duration, log zerolog.Logger) *AuthController {
	return &AuthController{
		users:  users,
		secret: secret,
		ttl:    ttl,
		log:    log.With().Str("controller", "auth").Logger(),
	}
}

// Login exchanges credentials for an access token.
func (h *AuthController) Login(c *fiber.Ctx) error {
	in := middleware.Body[models.LoginInput](c)

	user, err := h.users.Authenticate(c.UserContext(), in.Email, in.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, services.ErrInactiveUser):
		return utils.Forbidden(c, "Account is inactive")
	case err != nil:
		h.log.Error().Err(err).Msg("login failed")
		return utils.InternalError(c, "Internal server error")
	}

	token, err := middleware.IssueToken(h.secret, h.ttl, user)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to sign token")
		return utils.InternalError(c, "Failed to generate token")
	}

	h.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return utils.Success(c, fiber.Map{
		"token":     token,
		"expiresIn": int64(h.ttl.Seconds()),
		"user":      user,
	}, "Login successful")
}

// Me returns the user loaded by RequireActiveUser.
func (h *AuthController) Me(c *fiber.Ctx) error {
	user, ok := c.Locals(middleware.LocalUser).(*models.User)
	if !ok {
		return utils.Unauthorized(c, "Authentication required")
	}
	return utils.Success(c, user, "User retrieved successfully")
}
