package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rtharindu/echannaling-admin/middleware"
	"github.com/rtharindu/echannaling-admin/models"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(api fiber.Router, d Deps) {
	appointments := secured(api, "/appointments", d)
	h := d.Appointments

	appointments.Post("/", staff, middleware.ValidateBody[models.CreateAppointmentInput](), h.CreateAppointment)
	appointments.Get("/", staff, middleware.ValidateQuery[models.ListQuery](), h.GetAllAppointments)
	appointments.Get("/:id", staff, validID, h.GetAppointment)
	appointments.Put("/:id", staff, validID, middleware.ValidateBody[models.UpdateAppointmentInput](), h.UpdateAppointment)
	appointments.Patch("/:id/cancel", staff, validID, middleware.ValidateBody[models.CancelAppointmentInput](), h.CancelAppointment)
}
