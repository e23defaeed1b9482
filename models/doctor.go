package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApprovalStatus tracks the onboarding state of doctors and hospitals.
type ApprovalStatus string

const (
	StatusPending   ApprovalStatus = "PENDING"
	StatusApproved  ApprovalStatus = "APPROVED"
	StatusRejected  ApprovalStatus = "REJECTED"
	StatusSuspended ApprovalStatus = "SUSPENDED"
)

// Doctor mirrors the doctors table. The phone column is historically named
// "phonenumber"; the API exposes it as phoneNumber.
type Doctor struct {
	ID              string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string         `json:"name" gorm:"not null"`
	Email           string         `json:"email" gorm:"uniqueIndex;not null"`
	Specialization  string         `json:"specialization"`
	Qualification   string         `json:"qualification"`
	Experience      int            `json:"experience"`
	Phonenumber     string         `json:"phonenumber" gorm:"column:phonenumber"`
	ConsultationFee float64        `json:"consultationFee"`
	Rating          float64        `json:"rating"`
	ProfileImage    *string        `json:"profileImage"`
	Description     string         `json:"description"`
	Languages       StringList     `json:"languages"`
	AvailableDays   StringList     `json:"availableDays"`
	IsActive        bool           `json:"isActive" gorm:"index"`
	Status          ApprovalStatus `json:"status" gorm:"index"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Status == "" {
		d.Status = StatusPending
	}
	return nil
}

type CreateDoctorInput struct {
	Name            string   `json:"name" validate:"required,min=1"`
	Email           string   `json:"email" validate:"required,email"`
	Specialization  string   `json:"specialization"`
	Qualification   string   `json:"qualification"`
	Experience      *int     `json:"experience" validate:"omitempty,min=0"`
	PhoneNumber     string   `json:"phoneNumber"`
	ConsultationFee *float64 `json:"consultationFee" validate:"omitempty,min=0"`
	ProfileImage    *string  `json:"profileImage" validate:"omitempty,url"`
	Description     string   `json:"description"`
	Languages       []string `json:"languages"`
	AvailableDays   []string `json:"availableDays" validate:"omitempty,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
}

type UpdateDoctorInput struct {
	Name            *string         `json:"name" validate:"omitempty,min=1"`
	Specialization  *string         `json:"specialization"`
	Qualification   *string         `json:"qualification"`
	Experience      *int            `json:"experience" validate:"omitempty,min=0"`
	PhoneNumber     *string         `json:"phoneNumber"`
	ConsultationFee *float64        `json:"consultationFee" validate:"omitempty,min=0"`
	Rating          *float64        `json:"rating" validate:"omitempty,min=0,max=5"`
	ProfileImage    *string         `json:"profileImage" validate:"omitempty,url"`
	Description     *string         `json:"description"`
	Languages       []string        `json:"languages"`
	AvailableDays   []string        `json:"availableDays" validate:"omitempty,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	IsActive        *bool           `json:"isActive"`
	Status          *ApprovalStatus `json:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED SUSPENDED"`
}

// Changes returns the column updates for the fields present in the input.
func (in UpdateDoctorInput) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Specialization != nil {
		changes["specialization"] = *in.Specialization
	}
	if in.Qualification != nil {
		changes["qualification"] = *in.Qualification
	}
	if in.Experience != nil {
		changes["experience"] = *in.Experience
	}
	if in.PhoneNumber != nil {
		changes["phonenumber"] = *in.PhoneNumber
	}
	if in.ConsultationFee != nil {
		changes["consultation_fee"] = *in.ConsultationFee
	}
	if in.Rating != nil {
		changes["rating"] = *in.Rating
	}
	if in.ProfileImage != nil {
		changes["profile_image"] = *in.ProfileImage
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.Languages != nil {
		changes["languages"] = StringList(in.Languages)
	}
	if in.AvailableDays != nil {
		changes["available_days"] = StringList(in.AvailableDays)
	}
	if in.IsActive != nil {
		changes["is_active"] = *in.IsActive
	}
	if in.Status != nil {
		changes["status"] = *in.Status
	}
	return changes
}
