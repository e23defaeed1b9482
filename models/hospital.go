package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Hospital struct {
	ID            string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string         `json:"name" gorm:"not null"`
	Address       string         `json:"address"`
	City          string         `json:"city" gorm:"index"`
	District      string         `json:"district"`
	ContactNumber string         `json:"contactNumber"`
	Email         string         `json:"email" gorm:"uniqueIndex;not null"`
	Website       *string        `json:"website"`
	Facilities    StringList     `json:"facilities"`
	IsActive      bool           `json:"isActive" gorm:"index"`
	Status        ApprovalStatus `json:"status" gorm:"index"`
	ProfileImage  *string        `json:"profileImage"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (h *Hospital) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.Status == "" {
		h.Status = StatusPending
	}
	return nil
}

type CreateHospitalInput struct {
	Name          string   `json:"name" validate:"required,min=1"`
	Email         string   `json:"email" validate:"required,email"`
	Address       string   `json:"address" validate:"required"`
	City          string   `json:"city" validate:"required"`
	District      string   `json:"district" validate:"required"`
	ContactNumber string   `json:"contactNumber" validate:"required"`
	Website       *string  `json:"website" validate:"omitempty,url"`
	Facilities    []string `json:"facilities"`
	ProfileImage  *string  `json:"profileImage" validate:"omitempty,url"`
}

type UpdateHospitalInput struct {
	Name          *string         `json:"name" validate:"omitempty,min=1"`
	Address       *string         `json:"address"`
	City          *string         `json:"city"`
	District      *string         `json:"district"`
	ContactNumber *string         `json:"contactNumber"`
	Website       *string         `json:"website" validate:"omitempty,url"`
	Facilities    []string        `json:"facilities"`
	IsActive      *bool           `json:"isActive"`
	Status        *ApprovalStatus `json:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED SUSPENDED"`
	ProfileImage  *string         `json:"profileImage" validate:"omitempty,url"`
}

// Changes returns the column updates for the fields present in the input.
func (in UpdateHospitalInput) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Address != nil {
		changes["address"] = *in.Address
	}
	if in.City != nil {
		changes["city"] = *in.City
	}
	if in.District != nil {
		changes["district"] = *in.District
	}
	if in.ContactNumber != nil {
		changes["contact_number"] = *in.ContactNumber
	}
	if in.Website != nil {
		changes["website"] = *in.Website
	}
	if in.Facilities != nil {
		changes["facilities"] = StringList(in.Facilities)
	}
	if in.IsActive != nil {
		changes["is_active"] = *in.IsActive
	}
	if in.Status != nil {
		changes["status"] = *in.Status
	}
	if in.ProfileImage != nil {
		changes["profile_image"] = *in.ProfileImage
	}
	return changes
}
