package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rtharindu/echannaling-admin/models"
)

type HospitalService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewHospitalService(db *gorm.DB, log zerolog.Logger) *HospitalService {
	return &HospitalService{db: db, log: log.With().Str("service", "hospital").Logger()}
}

// GetAll returns active hospitals, optionally filtered by a search term.
// Read failures are logged and produce an empty list.
func (s *HospitalService) GetAll(ctx context.Context, search string) []models.Hospital {
	s.log.Info().Msg("fetching all hospitals from database")

	hospitals := []models.Hospital{}
	err := s.db.WithContext(ctx).
		Scopes(onlyActive, matchAny(search, "name", "city", "district")).
		Order("created_at desc").
		Find(&hospitals).Error
	if err != nil {
		s.log.Error().Err(err).Msg("error fetching hospitals")
		return []models.Hospital{}
	}

	s.log.Info().Int("count", len(hospitals)).Msg("found hospitals in database")
	return hospitals
}

func (s *HospitalService) GetByID(ctx context.Context, id string) *models.Hospital {
	var hospital models.Hospital
	if err := s.db.WithContext(ctx).First(&hospital, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Error().Err(err).Str("hospital_id", id).Msg("error fetching hospital")
		}
		return nil
	}
	return &hospital
}

// GetByCity returns the active hospitals in a city.
func (s *HospitalService) GetByCity(ctx context.Context, city string) []models.Hospital {
	hospitals := []models.Hospital{}
	err := s.db.WithContext(ctx).
		Scopes(onlyActive).
		Where("city = ?", city).
		Order("name asc").
		Find(&hospitals).Error
	if err != nil {
		s.log.Error().Err(err).Str("city", city).Msg("error fetching hospitals by city")
		return []models.Hospital{}
	}
	return hospitals
}

func (s *HospitalService) Create(ctx context.Context, in models.CreateHospitalInput) (*models.Hospital, error) {
	facilities := models.StringList{}
	if in.Facilities != nil {
		facilities = models.StringList(in.Facilities)
	}
	hospital := models.Hospital{
		Name:          in.Name,
		Email:         in.Email,
		Address:       in.Address,
		City:          in.City,
		District:      in.District,
		ContactNumber: in.ContactNumber,
		Website:       in.Website,
		Facilities:    facilities,
		IsActive:      true,
		Status:        models.StatusPending,
		ProfileImage:  in.ProfileImage,
	}

	if err := s.db.WithContext(ctx).Create(&hospital).Error; err != nil {
		s.log.Error().Err(err).Msg("error creating hospital")
		return nil, fmt.Errorf("create hospital: %w", err)
	}
	return &hospital, nil
}

// Update applies only the supplied fields; nil means not found or failed.
func (s *HospitalService) Update(ctx context.Context, id string, in models.UpdateHospitalInput) *models.Hospital {
	changes := in.Changes()
	if len(changes) > 0 {
		res := s.db.WithContext(ctx).Model(&models.Hospital{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			s.log.Error().Err(res.Error).Str("hospital_id", id).Msg("error updating hospital")
			return nil
		}
		if res.RowsAffected == 0 {
			return nil
		}
	}
	return s.GetByID(ctx, id)
}

func (s *HospitalService) Delete(ctx context.Context, id string) bool {
	res := s.db.WithContext(ctx).Delete(&models.Hospital{}, "id = ?", id)
	if res.Error != nil {
		s.log.Error().Err(res.Error).Str("hospital_id", id).Msg("error deleting hospital")
		return false
	}
	return res.RowsAffected > 0
}

func (s *HospitalService) GetStats(ctx context.Context) Stats {
	stats, err := approvalStats(ctx, s.db, &models.Hospital{})
	if err != nil {
		s.log.Error().Err(err).Msg("error fetching hospital stats")
		return Stats{}
	}
	return stats
}
