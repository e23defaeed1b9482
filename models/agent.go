package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Agent struct {
	ID          string       `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string       `json:"name" gorm:"not null"`
	Email       string       `json:"email" gorm:"uniqueIndex;not null"`
	CompanyName *string      `json:"companyName"`
	Phone       *string      `json:"phone"`
	Address     *string      `json:"address"`
	UserID      *string      `json:"userId" gorm:"type:uuid;index"`
	User        *UserSummary `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	IsActive    bool         `json:"isActive"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (a *Agent) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type CreateAgentInput struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Email       string  `json:"email" validate:"required,email"`
	CompanyName *string `json:"companyName"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	UserID      *string `json:"userId" validate:"omitempty,uuid"`
}

type UpdateAgentInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	CompanyName *string `json:"companyName"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	UserID      *string `json:"userId" validate:"omitempty,uuid"`
	IsActive    *bool   `json:"isActive"`
}

// Changes returns the column updates for the fields present in the input.
func (in UpdateAgentInput) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Email != nil {
		changes["email"] = *in.Email
	}
	if in.CompanyName != nil {
		changes["company_name"] = *in.CompanyName
	}
	if in.Phone != nil {
		changes["phone"] = *in.Phone
	}
	if in.Address != nil {
		changes["address"] = *in.Address
	}
	if in.UserID != nil {
		changes["user_id"] = *in.UserID
	}
	if in.IsActive != nil {
		changes["is_active"] = *in.IsActive
	}
	return changes
}

type AgentQuery struct {
	Page      *int   `query:"page" validate:"omitempty,min=1,max=100000"`
	Limit     *int   `query:"limit" validate:"omitempty,min=1,max=100"`
	Search    string `query:"search"`
	IsActive  *bool  `query:"isActive"`
	SortBy    string `query:"sortBy" validate:"omitempty,oneof=name email createdAt"`
	SortOrder string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

