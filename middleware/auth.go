package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/rtharindu/echannaling-admin/models"
	"github.com/rtharindu/echannaling-admin/utils"
)

// Locals keys set by the auth middleware.
const (
	LocalUserID = "userID"
	LocalRole   = "role"
	LocalEmail  = "email"
	LocalUser   = "currentUser"
)

// IssueToken signs an HS256 token carrying the user's id, email and role.
func IssueToken(secret string, ttl time.Duration, user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Protected verifies the bearer token and copies its claims into locals.
func Protected(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:    []byte(secret),
		SigningMethod: jwtware.HS256,
		ErrorHandler:  jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return utils.Unauthorized(c, "Invalid token")
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return utils.Unauthorized(c, "Invalid token claims")
			}

			userID, err := stringClaim(claims, "id")
			if err != nil {
				return utils.Unauthorized(c, "Invalid user ID in token")
			}
			role, err := stringClaim(claims, "role")
			if err != nil {
				return utils.Unauthorized(c, "Invalid role in token")
			}
			email, _ := stringClaim(claims, "email")

			c.Locals(LocalUserID, userID)
			c.Locals(LocalRole, models.UserRole(role))
			c.Locals(LocalEmail, email)
			return c.Next()
		},
	})
}

func stringClaim(claims jwt.MapClaims, key string) (string, error) {
	v, ok := claims[key].(string)
	if !ok || v == "" {
		return "", errors.New("missing claim " + key)
	}
	return v, nil
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return utils.Unauthorized(c, "Access token required")
	}
	return utils.Unauthorized(c, "Invalid or expired token")
}

// CurrentUserID returns the authenticated user's id, or "" outside Protected.
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

func CurrentRole(c *fiber.Ctx) models.UserRole {
	role, _ := c.Locals(LocalRole).(models.UserRole)
	return role
}
