package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/rtharindu/echannaling-admin/events"
	"github.com/rtharindu/echannaling-admin/middleware"
	"github.com/rtharindu/echannaling-admin/models"
	"github.com/rtharindu/echannaling-admin/utils"
)

// CustomerController answers the customer endpoints without a backing
// store: writes echo the validated input and reads return synthetic data.
// The customers table is migrated so a persistent service can slot in here.
type CustomerController struct {
	audit auditor
	log   zerolog.Logger
}

func NewCustomerController(pub events.Publisher, log zerolog.Logger) *CustomerController {
	log = log.With().Str("controller", "customer").Logger()
	return &CustomerController{audit: auditor{pub: pub, log: log}, log: log}
}

type createdCustomer struct {
	ID             string `json:"id"`
	CustomerNumber string `json:"customerNumber"`
	models.CreateCustomerInput
	Status    models.CustomerStatus `json:"status"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

type updatedCustomer struct {
	ID string `json:"id"`
	models.UpdateCustomerInput
	UpdatedAt time.Time `json:"updatedAt"`
}

func (h *CustomerController) CreateCustomer(c *fiber.Ctx) error {
	now := time.Now()
	out := createdCustomer{
		ID:                  utils.GenerateUUID(),
		CustomerNumber:      utils.GenerateCustomerNumber(),
		CreateCustomerInput: middleware.Body[models.CreateCustomerInput](c),
		Status:              models.CustomerActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	h.audit.record(c, "CREATE", "customer", out.ID)
	return utils.Created(c, out, "Customer created successfully")
}

func (h *CustomerController) GetCustomer(c *fiber.Ctx) error {
	now := time.Now()
	return utils.Success(c, fiber.Map{
		"id":             middleware.Params[models.IDParams](c).ID,
		"customerNumber": "CUST-001",
		"firstName":      "John",
		"lastName":       "Doe",
		"email":          "john.doe@example.com",
		"phone":          "+1234567890",
		"status":         models.CustomerActive,
		"createdAt":      now,
		"updatedAt":      now,
	}, "Customer retrieved successfully")
}

func (h *CustomerController) GetAllCustomers(c *fiber.Ctx) error {
	return utils.Paginated(c, []interface{}{},
		utils.NewPagination(utils.DefaultPage, utils.DefaultLimit, 0),
		"Customers retrieved successfully",
	)
}

func (h *CustomerController) UpdateCustomer(c *fiber.Ctx) error {
	out := updatedCustomer{
		ID:                  middleware.Params[models.IDParams](c).ID,
		UpdateCustomerInput: middleware.Body[models.UpdateCustomerInput](c),
		UpdatedAt:           time.Now(),
	}
	h.audit.record(c, "UPDATE", "customer", out.ID)
	return utils.Success(c, out, "Customer updated successfully")
}

func (h *CustomerController) DeleteCustomer(c *fiber.Ctx) error {
	h.audit.record(c, "DELETE", "customer", middleware.Params[models.IDParams](c).ID)
	return utils.Success(c, nil, "Customer deleted successfully")
}
