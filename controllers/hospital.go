package controllers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/rtharindu/echannaling-admin/events"
	"github.com/rtharindu/echannaling-admin/middleware"
	"github.com/rtharindu/echannaling-admin/models"
	"github.com/rtharindu/echannaling-admin/services"
	"github.com/rtharindu/echannaling-admin/utils"
)

type HospitalStore interface {
	GetAll(ctx context.Context, search string) []models.Hospital
	GetByID(ctx context.Context, id string) *models.Hospital
	GetByCity(ctx context.Context, city string) []models.Hospital
	Create(ctx context.Context, in models.CreateHospitalInput) (*models.Hospital, error)
	Update(ctx context.Context, id string, in models.UpdateHospitalInput) *models.Hospital
	Delete(ctx context.Context, id string) bool
	GetStats(ctx context.Context) services.Stats
}

// CityParams is the path shape of GET /hospitals/city/:city.
type CityParams struct {
	City string `params:"city" validate:"required,min=1"`
}

type HospitalController struct {
	hospitals HospitalStore
	uploader  ImageUploader
	audit     auditor
	log       zerolog.Logger
}

func NewHospitalController(hospitals HospitalStore, uploader ImageUploader, pub events.Publisher, log zerolog.Logger) *HospitalController {
	log = log.With().Str("controller", "hospital").Logger()
	return &HospitalController{
		hospitals: hospitals,
		uploader:  uploader,
		audit:     auditor{pub: pub, log: log},
		log:       log,
	}
}

func (h *HospitalController) GetAllHospitals(c *fiber.Ctx) error {
	q := middleware.Query[models.ListQuery](c)

	hospitals := h.hospitals.GetAll(c.UserContext(), q.Search)
	if q.Status != "" || q.City != "" {
		filtered := make([]models.Hospital, 0, len(hospitals))
		for _, hs := range hospitals {
			if q.Status != "" && string(hs.Status) != q.Status {
				continue
			}
			if q.City != "" && !strings.EqualFold(hs.City, q.City) {
				continue
			}
			filtered = append(filtered, hs)
		}
		hospitals = filtered
	}

	page, limit := utils.ResolvePage(q.Page, q.Limit)
	return utils.Paginated(c,
		utils.PageOf(hospitals, page, limit),
		utils.NewPagination(page, limit, int64(len(hospitals))),
		"Hospitals retrieved successfully",
	)
}

func (h *HospitalController) GetHospital(c *fiber.Ctx) error {
	hospital := h.hospitals.GetByID(c.UserContext(), middleware.Params[models.IDParams](c).ID)
	if hospital == nil {
		return utils.NotFound(c, "Hospital not found")
	}
	return utils.Success(c, hospital, "Hospital retrieved successfully")
}

func (h *HospitalController) GetHospitalsByCity(c *fiber.Ctx) error {
	city := middleware.Params[CityParams](c).City
	return utils.Success(c, h.hospitals.GetByCity(c.UserContext(), city), "Hospitals retrieved successfully")
}

func (h *HospitalController) CreateHospital(c *fiber.Ctx) error {
	hospital, err := h.hospitals.Create(c.UserContext(), middleware.Body[models.CreateHospitalInput](c))
	if err != nil {
		if services.IsDuplicate(err) {
			return utils.BadRequest(c, "Email already exists")
		}
		return utils.BadRequest(c, "Failed to create hospital")
	}
	h.audit.record(c, "CREATE", "hospital", hospital.ID)
	return utils.Created(c, hospital, "Hospital created successfully")
}

func (h *HospitalController) UpdateHospital(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := middleware.Params[models.IDParams](c).ID

	if h.hospitals.GetByID(ctx, id) == nil {
		return utils.NotFound(c, "Hospital not found")
	}
	hospital := h.hospitals.Update(ctx, id, middleware.Body[models.UpdateHospitalInput](c))
	if hospital == nil {
		return utils.BadRequest(c, "Failed to update hospital")
	}
	h.audit.record(c, "UPDATE", "hospital", id)
	return utils.Success(c, hospital, "Hospital updated successfully")
}

func (h *HospitalController) DeleteHospital(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := middleware.Params[models.IDParams](c).ID

	if h.hospitals.GetByID(ctx, id) == nil {
		return utils.NotFound(c, "Hospital not found")
	}
	if !h.hospitals.Delete(ctx, id) {
		return utils.BadRequest(c, "Failed to delete hospital")
	}
	h.audit.record(c, "DELETE", "hospital", id)
	return utils.Success(c, nil, "Hospital deleted successfully")
}

func (h *HospitalController) GetHospitalStats(c *fiber.Ctx) error {
	return utils.Success(c, h.hospitals.GetStats(c.UserContext()), "Hospital stats retrieved successfully")
}

func (h *HospitalController) UploadProfileImage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := middleware.Params[models.IDParams](c).ID

	if h.hospitals.GetByID(ctx, id) == nil {
		return utils.NotFound(c, "Hospital not found")
	}
	url, status, msg := uploadImage(c, h.uploader, fmt.Sprintf("hospital_%s_%d", id, time.Now().Unix()), "hospitals")
	if status != 0 {
		if status >= fiber.StatusInternalServerError {
			h.log.Error().Str("hospital_id", id).Msg(msg)
		}
		return utils.Fail(c, status, msg)
	}

	hospital := h.hospitals.Update(ctx, id, models.UpdateHospitalInput{ProfileImage: &url})
	if hospital == nil {
		return utils.BadRequest(c, "Failed to update hospital")
	}
	h.audit.record(c, "UPDATE", "hospital", id)
	return utils.Success(c, hospital, "Profile image uploaded successfully")
}
