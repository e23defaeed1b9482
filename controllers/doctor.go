package controllers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/rtharindu/echannaling-admin/events"
	"github.com/rtharindu/echannaling-admin/middleware"
	"github.com/rtharindu/echannaling-admin/models"
	"github.com/rtharindu/echannaling-admin/services"
	"github.com/rtharindu/echannaling-admin/utils"
)

type DoctorStore interface {
	GetAll(ctx context.Context, search string) []services.DoctorView
	GetByID(ctx context.Context, id string) *services.DoctorView
	Create(ctx context.Context, in models.CreateDoctorInput) (*services.DoctorView, error)
	Update(ctx context.Context, id string, in models.UpdateDoctorInput) *services.DoctorView
	Delete(ctx context.Context, id string) bool
	GetStats(ctx context.Context) services.Stats
}

type DoctorController struct {
	doctors  DoctorStore
	uploader ImageUploader
	audit    auditor
	log      zerolog.Logger
}

// NewDoctorController wires the handlers. uploader may be nil, in which case
// profile image uploads are refused.
func NewDoctorController(doctors DoctorStore, uploader ImageUploader, pub events.Publisher, log zerolog.Logger) *DoctorController {
	log = log.With().Str("controller", "doctor").Logger()
	return &DoctorController{
		doctors:  doctors,
		uploader: uploader,
		audit:    auditor{pub: pub, log: log},
		log:      log,
	}
}

func (h *DoctorController) GetAllDoctors(c *fiber.Ctx) error {
	q := middleware.Query[models.ListQuery](c)

	doctors := h.doctors.GetAll(c.UserContext(), q.Search)
	if q.Status != "" {
		filtered := make([]services.DoctorView, 0, len(doctors))
		for _, d := range doctors {
			if string(d.Status) == q.Status {
				filtered = append(filtered, d)
			}
		}
		doctors = filtered
	}

	page, limit := utils.ResolvePage(q.Page, q.Limit)
	return utils.Paginated(c,
		utils.PageOf(doctors, page, limit),
		utils.NewPagination(page, limit, int64(len(doctors))),
		"Doctors retrieved successfully",
	)
}

func (h *DoctorController) GetDoctor(c *fiber.Ctx) error {
	doctor := h.doctors.GetByID(c.UserContext(), middleware.Params[models.IDParams](c).ID)
	if doctor == nil {
		return utils.NotFound(c, "Doctor not found")
	}
	return utils.Success(c, doctor, "Doctor retrieved successfully")
}

func (h *DoctorController) CreateDoctor(c *fiber.Ctx) error {
	doctor, err := h.doctors.Create(c.UserContext(), middleware.Body[models.CreateDoctorInput](c))
	if err != nil {
		if services.IsDuplicate(err) {
			return utils.BadRequest(c, "Email already exists")
		}
		return utils.BadRequest(c, "Failed to create doctor")
	}
	h.audit.record(c, "CREATE", "doctor", doctor.ID)
	return utils.Created(c, doctor, "Doctor created successfully")
}

func (h *DoctorController) UpdateDoctor(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := middleware.Params[models.IDParams](c).ID

	if h.doctors.GetByID(ctx, id) == nil {
		return utils.NotFound(c, "Doctor not found")
	}
	doctor := h.doctors.Update(ctx, id, middleware.Body[models.UpdateDoctorInput](c))
	if doctor == nil {
		return utils.BadRequest(c, "Failed to update doctor")
	}
	h.audit.record(c, "UPDATE", "doctor", id)
	return utils.Success(c, doctor, "Doctor updated successfully")
}

func (h *DoctorController) DeleteDoctor(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := middleware.Params[models.IDParams](c).ID

	if h.doctors.GetByID(ctx, id) == nil {
		return utils.NotFound(c, "Doctor not found")
	}
	if !h.doctors.Delete(ctx, id) {
		return utils.BadRequest(c, "Failed to delete doctor")
	}
	h.audit.record(c, "DELETE", "doctor", id)
	return utils.Success(c, nil, "Doctor deleted successfully")
}

func (h *DoctorController) GetDoctorStats(c *fiber.Ctx) error {
	return utils.Success(c, h.doctors.GetStats(c.UserContext()), "Doctor stats retrieved successfully")
}

// UploadProfileImage godoc
// @Summary Upload a doctor's profile image
// @Tags doctors
// @Accept multipart/form-data
// @Param image formData file true "Image"
// @Router /api/doctors/{id}/profile-image [post]
func (h *DoctorController) UploadProfileImage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := middleware.Params[models.IDParams](c).ID

	if h.doctors.GetByID(ctx, id) == nil {
		return utils.NotFound(c, "Doctor not found")
	}
	url, status, msg := uploadImage(c, h.uploader, fmt.Sprintf("doctor_%s_%d", id, time.Now().Unix()), "doctors")
	if status != 0 {
		if status >= fiber.StatusInternalServerError {
			h.log.Error().Str("doctor_id", id).Msg(msg)
		}
		return utils.Fail(c, status, msg)
	}

	doctor := h.doctors.Update(ctx, id, models.UpdateDoctorInput{ProfileImage: &url})
	if doctor == nil {
		return utils.BadRequest(c, "Failed to update doctor")
	}
	h.audit.record(c, "UPDATE", "doctor", id)
	return utils.Success(c, doctor, "Profile image uploaded successfully")
}

// uploadImage reads the multipart "image" field and stores it. A non-zero
// status means the request failed with msg.
func uploadImage(c *fiber.Ctx, uploader ImageUploader, publicID, folder string) (url string, status int, msg string) {
	if uploader == nil {
		return "", fiber.StatusServiceUnavailable, "Image uploads are not configured"
	}
	file, err := c.FormFile("image")
	if err != nil {
		return "", fiber.StatusBadRequest, "Image file is required"
	}
	f, err := file.Open()
	if err != nil {
		return "", fiber.StatusBadRequest, "Failed to read image file"
	}
	defer f.Close()

	url, err = uploader.Upload(c.UserContext(), f, publicID, folder)
	if err != nil {
		return "", fiber.StatusBadGateway, "Failed to upload image"
	}
	return url, 0, ""
}
