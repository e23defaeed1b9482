package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rtharindu/echannaling-admin/controllers"
	"github.com/rtharindu/echannaling-admin/middleware"
	"github.com/rtharindu/echannaling-admin/models"
)

func SetupHospitalRoutes(api fiber.Router, d Deps) {
	hospitals := secured(api, "/hospitals", d)
	h := d.Hospitals

	hospitals.Post("/", adminOnly, middleware.ValidateBody[models.CreateHospitalInput](), h.CreateHospital)
	hospitals.Get("/", adminOrSuper, middleware.ValidateQuery[models.ListQuery](), h.GetAllHospitals)
	hospitals.Get("/stats", adminOrSuper, h.GetHospitalStats)
	hospitals.Get("/city/:city", adminOrSuper, middleware.ValidateParams[controllers.CityParams](), h.GetHospitalsByCity)
	hospitals.Get("/:id", adminOrSuper, validID, h.GetHospital)
	hospitals.Put("/:id", adminOnly, validID, middleware.ValidateBody[models.UpdateHospitalInput](), h.UpdateHospital)
	hospitals.Delete("/:id", adminOnly, validID, h.DeleteHospital)
	hospitals.Post("/:id/profile-image", adminOnly, validID, h.UploadProfileImage)
}
