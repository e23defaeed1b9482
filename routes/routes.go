package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/rtharindu/echannaling-admin/controllers"
	"github.com/rtharindu/echannaling-admin/middleware"
	"github.com/rtharindu/echannaling-admin/models"
)

// Deps carries everything the route table needs.
type Deps struct {
	JWTSecret string
	Users     middleware.UserLookup
	Log       zerolog.Logger

	Auth         *controllers.AuthController
	Health       *controllers.HealthController
	Agents       *controllers.AgentController
	Doctors      *controllers.DoctorController
	Hospitals    *controllers.HospitalController
	Customers    *controllers.CustomerController
	Appointments *controllers.AppointmentController
}

var (
	adminOnly    = middleware.RequireRole(models.RoleAdmin)
	adminOrSuper = middleware.RequireRole(models.RoleAdmin, models.RoleSupervisor)
	staff        = middleware.RequireRole(models.RoleAdmin, models.RoleSupervisor, models.RoleAgent)
	validID      = middleware.ValidateParams[models.IDParams]()
)

// Setup mounts every route on app.
func Setup(app *fiber.App, d Deps) {
	app.Get("/health", d.Health.Health)

	api := app.Group("/api")
	SetupAuthRoutes(api, d)
	SetupAgentRoutes(api, d)
	SetupDoctorRoutes(api, d)
	SetupHospitalRoutes(api, d)
	SetupCustomerRoutes(api, d)
	SetupAppointmentRoutes(api, d)
}

// secured returns a group that requires a valid token for an active user.
func secured(r fiber.Router, prefix string, d Deps) fiber.Router {
	return r.Group(prefix,
		middleware.Protected(d.JWTSecret),
		middleware.RequireActiveUser(d.Users, d.Log),
	)
}
