package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/rtharindu/echannaling-admin/middleware"
	"github.com/rtharindu/echannaling-admin/utils"
)

// NewApp builds the Fiber app with the global middleware stack. Routes are
// added separately by Setup.
func NewApp(log zerolog.Logger, corsOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "echannelling-admin",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))
	return app
}

// errorHandler renders anything a handler returned, including recovered
// panics, as the standard failure envelope.
func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return utils.Fail(c, fe.Code, fe.Message)
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		return utils.InternalError(c, "Internal server error")
	}
}
