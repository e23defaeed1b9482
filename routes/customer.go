package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rtharindu/echannaling-admin/middleware"
	"github.com/rtharindu/echannaling-admin/models"
)

func SetupCustomerRoutes(api fiber.Router, d Deps) {
	customers := secured(api, "/customers", d)
	h := d.Customers

	customers.Post("/", staff, middleware.ValidateBody[models.CreateCustomerInput](), h.CreateCustomer)
	customers.Get("/", staff, middleware.ValidateQuery[models.ListQuery](), h.GetAllCustomers)
	customers.Get("/:id", staff, validID, h.GetCustomer)
	customers.Put("/:id", staff, validID, middleware.ValidateBody[models.UpdateCustomerInput](), h.UpdateCustomer)
	customers.Delete("/:id", adminOnly, validID, h.DeleteCustomer)
}
