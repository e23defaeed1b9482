package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleSupervisor UserRole = "SUPERVISOR"
	RoleAgent      UserRole = "AGENT"
	RoleUser       UserRole = "USER"
)

type User struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	Email       string     `json:"email" gorm:"uniqueIndex;not null"`
	Name        *string    `json:"name,omitempty"`
	Password    string     `json:"-" gorm:"not null"`
	Role        UserRole   `json:"role" gorm:"not null"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

// UserSummary is the projection of a user embedded in other records.
type UserSummary struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  *string  `json:"name"`
	Role  UserRole `json:"role"`
}

func (UserSummary) TableName() string {
	return "users"
}

type CreateUserInput struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Name     *string  `json:"name" validate:"omitempty,min=1"`
	Role     UserRole `json:"role" validate:"omitempty,oneof=ADMIN SUPERVISOR AGENT USER"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
