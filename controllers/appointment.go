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

// AppointmentController answers the appointment endpoints without a backing
// store, in the same way as CustomerController.
type AppointmentController struct {
	audit auditor
	log   zerolog.Logger
}

func NewAppointmentController(pub events.Publisher, log zerolog.Logger) *AppointmentController {
	log = log.With().Str("controller", "appointment").Logger()
	return &AppointmentController{audit: auditor{pub: pub, log: log}, log: log}
}

type bookedAppointment struct {
	ID                string `json:"id"`
	AppointmentNumber string `json:"appointmentNumber"`
	models.CreateAppointmentInput
	BookedByID    string                   `json:"bookedById"`
	Status        models.AppointmentStatus `json:"status"`
	PaymentStatus models.PaymentStatus     `json:"paymentStatus"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

type updatedAppointment struct {
	ID string `json:"id"`
	models.UpdateAppointmentInput
	UpdatedAt time.Time `json:"updatedAt"`
}

type cancelledAppointment struct {
	ID                 string                   `json:"id"`
	Status             models.AppointmentStatus `json:"status"`
	CancellationReason *string                  `json:"cancellationReason,omitempty"`
	CancellationDate   time.Time                `json:"cancellationDate"`
	UpdatedAt          time.Time                `json:"updatedAt"`
}

// CreateAppointment godoc
// @Summary Book an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Router /api/appointments [post]
func (h *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	now := time.Now()
	out := bookedAppointment{
		ID:                     utils.GenerateUUID(),
		AppointmentNumber:      utils.GenerateAppointmentNumber(),
		CreateAppointmentInput: middleware.Body[models.CreateAppointmentInput](c),
		BookedByID:             middleware.CurrentUserID(c),
		Status:                 models.AppointmentConfirmed,
		PaymentStatus:          models.PaymentPending,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	h.audit.record(c, "CREATE", "appointment", out.ID)
	return utils.Created(c, out, "Appointment created successfully")
}

func (h *AppointmentController) GetAppointment(c *fiber.Ctx) error {
	now := time.Now()
	return utils.Success(c, fiber.Map{
		"id":                middleware.Params[models.IDParams](c).ID,
		"appointmentNumber": "APT-001",
		"patientName":       "John Doe",
		"patientEmail":      "john.doe@example.com",
		"status":            models.AppointmentConfirmed,
		"paymentStatus":     models.PaymentPending,
		"createdAt":         now,
		"updatedAt":         now,
	}, "Appointment retrieved successfully")
}

func (h *AppointmentController) GetAllAppointments(c *fiber.Ctx) error {
	return utils.Paginated(c, []interface{}{},
		utils.NewPagination(utils.DefaultPage, utils.DefaultLimit, 0),
		"Appointments retrieved successfully",
	)
}

func (h *AppointmentController) UpdateAppointment(c *fiber.Ctx) error {
	out := updatedAppointment{
		ID:                     middleware.Params[models.IDParams](c).ID,
		UpdateAppointmentInput: middleware.Body[models.UpdateAppointmentInput](c),
		UpdatedAt:              time.Now(),
	}
	h.audit.record(c, "UPDATE", "appointment", out.ID)
	return utils.Success(c, out, "Appointment updated successfully")
}

func (h *AppointmentController) CancelAppointment(c *fiber.Ctx) error {
	now := time.Now()
	out := cancelledAppointment{
		ID:                 middleware.Params[models.IDParams](c).ID,
		Status:             models.AppointmentCancelled,
		CancellationReason: middleware.Body[models.CancelAppointmentInput](c).CancellationReason,
		CancellationDate:   now,
		UpdatedAt:          now,
	}
	h.audit.record(c, "CANCEL", "appointment", out.ID)
	return utils.Success(c, out, "Appointment cancelled successfully")
}
