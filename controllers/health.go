package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rtharindu/echannaling-admin/utils"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

func (h *HealthController) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.Response{
			Success: false,
			Message: "Database unavailable",
			Data:    fiber.Map{"database": "down"},
		})
	}
	return utils.Success(c, fiber.Map{"database": "up"}, "OK")
}
