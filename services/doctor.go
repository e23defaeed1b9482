package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rtharindu/echannaling-admin/models"
)

const (
	defaultSpecialization  = "General Medicine"
	defaultQualification   = "MBBS"
	defaultDoctorPhone     = "+94700000000"
	defaultConsultationFee = 1500.00
)

var (
	defaultLanguages     = []string{"English"}
	defaultAvailableDays = []string{"Monday"}
)

// DoctorView is the client-facing shape of a doctor.
type DoctorView struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Email           string                `json:"email"`
	Specialization  string                `json:"specialization"`
	Qualification   string                `json:"qualification"`
	Experience      int                   `json:"experience"`
	PhoneNumber     string                `json:"phoneNumber"`
	ConsultationFee float64               `json:"consultationFee"`
	Rating          float64               `json:"rating"`
	ProfileImage    *string               `json:"profileImage"`
	Description     string                `json:"description"`
	Languages       []string              `json:"languages"`
	AvailableDays   []string              `json:"availableDays"`
	IsActive        bool                  `json:"isActive"`
	Status          models.ApprovalStatus `json:"status"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// toDoctorView is the only place the stored phonenumber column is renamed.
func toDoctorView(d models.Doctor) DoctorView {
	return DoctorView{
		ID:              d.ID,
		Name:            d.Name,
		Email:           d.Email,
		Specialization:  d.Specialization,
		Qualification:   d.Qualification,
		Experience:      d.Experience,
		PhoneNumber:     d.Phonenumber,
		ConsultationFee: d.ConsultationFee,
		Rating:          d.Rating,
		ProfileImage:    d.ProfileImage,
		Description:     d.Description,
		Languages:       []string(d.Languages),
		AvailableDays:   []string(d.AvailableDays),
		IsActive:        d.IsActive,
		Status:          d.Status,
		CreatedAt:       d.CreatedAt,
	}
}

// DoctorService reads swallow persistence errors and return empty results;
// Create is the only method that reports them.
type DoctorService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewDoctorService(db *gorm.DB, log zerolog.Logger) *DoctorService {
	return &DoctorService{db: db, log: log.With().Str("service", "doctor").Logger()}
}

// GetAll returns active doctors, optionally filtered by a search term.
func (s *DoctorService) GetAll(ctx context.Context, search string) []DoctorView {
	s.log.Info().Msg("fetching all doctors from database")

	var doctors []models.Doctor
	err := s.db.WithContext(ctx).
		Scopes(onlyActive, matchAny(search, "name", "email", "specialization")).
		Order("created_at desc").
		Find(&doctors).Error
	if err != nil {
		s.log.Error().Err(err).Msg("error fetching doctors")
		return []DoctorView{}
	}

	s.log.Info().Int("count", len(doctors)).Msg("found doctors in database")
	views := make([]DoctorView, 0, len(doctors))
	for _, d := range doctors {
		views = append(views, toDoctorView(d))
	}
	return views
}

// GetByID returns nil when the doctor does not exist or cannot be read.
func (s *DoctorService) GetByID(ctx context.Context, id string) *DoctorView {
	var doctor models.Doctor
	if err := s.db.WithContext(ctx).First(&doctor, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Error().Err(err).Str("doctor_id", id).Msg("error fetching doctor")
		}
		return nil
	}
	v := toDoctorView(doctor)
	return &v
}

func (s *DoctorService) Create(ctx context.Context, in models.CreateDoctorInput) (*DoctorView, error) {
	doctor := models.Doctor{
		Name:            in.Name,
		Email:           in.Email,
		Specialization:  orDefault(in.Specialization, defaultSpecialization),
		Qualification:   orDefault(in.Qualification, defaultQualification),
		Phonenumber:     orDefault(in.PhoneNumber, defaultDoctorPhone),
		ConsultationFee: defaultConsultationFee,
		ProfileImage:    in.ProfileImage,
		Description:     in.Description,
		Languages:       listOrDefault(in.Languages, defaultLanguages),
		AvailableDays:   listOrDefault(in.AvailableDays, defaultAvailableDays),
		IsActive:        true,
		Status:          models.StatusPending,
	}
	if in.Experience != nil {
		doctor.Experience = *in.Experience
	}
	if in.ConsultationFee != nil {
		doctor.ConsultationFee = *in.ConsultationFee
	}

	if err := s.db.WithContext(ctx).Create(&doctor).Error; err != nil {
		s.log.Error().Err(err).Msg("error creating doctor")
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	v := toDoctorView(doctor)
	return &v, nil
}

// Update applies only the supplied fields. It returns nil when the doctor
// does not exist or the update fails.
func (s *DoctorService) Update(ctx context.Context, id string, in models.UpdateDoctorInput) *DoctorView {
	changes := in.Changes()
	if len(changes) > 0 {
		res := s.db.WithContext(ctx).Model(&models.Doctor{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			s.log.Error().Err(res.Error).Str("doctor_id", id).Msg("error updating doctor")
			return nil
		}
		if res.RowsAffected == 0 {
			return nil
		}
	}
	return s.GetByID(ctx, id)
}

// Delete removes the doctor row. Missing rows and failures both yield false.
func (s *DoctorService) Delete(ctx context.Context, id string) bool {
	res := s.db.WithContext(ctx).Delete(&models.Doctor{}, "id = ?", id)
	if res.Error != nil {
		s.log.Error().Err(res.Error).Str("doctor_id", id).Msg("error deleting doctor")
		return false
	}
	return res.RowsAffected > 0
}

func (s *DoctorService) GetStats(ctx context.Context) Stats {
	stats, err := approvalStats(ctx, s.db, &models.Doctor{})
	if err != nil {
		s.log.Error().Err(err).Msg("error fetching doctor stats")
		return Stats{}
	}
	return stats
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func listOrDefault(v, def []string) models.StringList {
	if len(v) == 0 {
		return append(models.StringList{}, def...)
	}
	return models.StringList(v)
}
