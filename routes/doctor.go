package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rtharindu/echannaling-admin/middleware"
	"github.com/rtharindu/echannaling-admin/models"
)

func SetupDoctorRoutes(api fiber.Router, d Deps) {
	doctors := secured(api, "/doctors", d)
	h := d.Doctors

	doctors.Post("/", adminOnly, middleware.ValidateBody[models.CreateDoctorInput](), h.CreateDoctor)
	doctors.Get("/", adminOrSuper, middleware.ValidateQuery[models.ListQuery](), h.GetAllDoctors)
	doctors.Get("/stats", adminOrSuper, h.GetDoctorStats)
	doctors.Get("/:id", adminOrSuper, validID, h.GetDoctor)
	doctors.Put("/:id", adminOnly, validID, middleware.ValidateBody[models.UpdateDoctorInput](), h.UpdateDoctor)
	doctors.Delete("/:id", adminOnly, validID, h.DeleteDoctor)
	doctors.Post("/:id/profile-image", adminOnly, validID, h.UploadProfileImage)
}
