package middleware

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/rtharindu/echannaling-admin/models"
	"github.com/rtharindu/echannaling-admin/services"
	"github.com/rtharindu/echannaling-admin/utils"
)

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// RequireActiveUser rejects tokens whose user no longer exists or has been
// deactivated. It must run after Protected.
func RequireActiveUser(users UserLookup, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := CurrentUserID(c)
		if id == "" {
			return utils.Unauthorized(c, "Authentication required")
		}

		user, err := users.GetByID(c.UserContext(), id)
		if errors.Is(err, services.ErrNotFound) {
			return utils.Unauthorized(c, "User not found")
		}
		if err != nil {
			log.Error().Err(err).Str("user_id", id).Msg("error loading current user")
			return utils.InternalError(c, "Internal server error")
		}
		if !user.IsActive {
			return utils.Forbidden(c, "Account is inactive")
		}

		c.Locals(LocalUser, user)
		// The stored role wins over the one baked into the token.
		c.Locals(LocalRole, user.Role)
		return c.Next()
	}
}

// RequireRole allows the request through when the caller holds any of roles.
func RequireRole(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := CurrentRole(c)
		if role == "" {
			return utils.Unauthorized(c, "Authentication required")
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return utils.Forbidden(c, "Insufficient permissions")
	}
}
