package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "ACTIVE"
	CustomerInactive  CustomerStatus = "INACTIVE"
	CustomerSuspended CustomerStatus = "SUSPENDED"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type Customer struct {
	ID                    string         `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerNumber        string         `json:"customerNumber" gorm:"uniqueIndex;not null"`
	FirstName             string         `json:"firstName" gorm:"not null"`
	LastName              string         `json:"lastName" gorm:"not null"`
	Email                 string         `json:"email" gorm:"uniqueIndex;not null"`
	Phone                 string         `json:"phone"`
	DateOfBirth           *time.Time     `json:"dateOfBirth,omitempty"`
	Gender                *Gender        `json:"gender,omitempty"`
	Street                *string        `json:"street,omitempty"`
	City                  *string        `json:"city,omitempty" gorm:"index"`
	State                 *string        `json:"state,omitempty"`
	ZipCode               *string        `json:"zipCode,omitempty"`
	EmergencyContactName  *string        `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string        `json:"emergencyContactPhone,omitempty"`
	MedicalHistory        *string        `json:"medicalHistory,omitempty"`
	Allergies             *string        `json:"allergies,omitempty"`
	CurrentMedications    *string        `json:"currentMedications,omitempty"`
	InsuranceProvider     *string        `json:"insuranceProvider,omitempty"`
	InsurancePolicyNumber *string        `json:"insurancePolicyNumber,omitempty"`
	PreferredLanguage     *string        `json:"preferredLanguage,omitempty"`
	Status                CustomerStatus `json:"status" gorm:"index"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = CustomerActive
	}
	return nil
}

type CreateCustomerInput struct {
	FirstName             string  `json:"firstName" validate:"required,min=1"`
	LastName              string  `json:"lastName" validate:"required,min=1"`
	Email                 string  `json:"email" validate:"required,email"`
	Phone                 string  `json:"phone" validate:"required,min=1"`
	DateOfBirth           *string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Gender                *Gender `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	Street                *string `json:"street,omitempty"`
	City                  *string `json:"city,omitempty"`
	State                 *string `json:"state,omitempty"`
	ZipCode               *string `json:"zipCode,omitempty"`
	EmergencyContactName  *string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string `json:"emergencyContactPhone,omitempty"`
	MedicalHistory        *string `json:"medicalHistory,omitempty"`
	Allergies             *string `json:"allergies,omitempty"`
	CurrentMedications    *string `json:"currentMedications,omitempty"`
	InsuranceProvider     *string `json:"insuranceProvider,omitempty"`
	InsurancePolicyNumber *string `json:"insurancePolicyNumber,omitempty"`
	PreferredLanguage     *string `json:"preferredLanguage,omitempty"`
}

type UpdateCustomerInput struct {
	FirstName             *string         `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName              *string         `json:"lastName,omitempty" validate:"omitempty,min=1"`
	Email                 *string         `json:"email,omitempty" validate:"omitempty,email"`
	Phone                 *string         `json:"phone,omitempty"`
	DateOfBirth           *string         `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Gender                *Gender         `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	Street                *string         `json:"street,omitempty"`
	City                  *string         `json:"city,omitempty"`
	State                 *string         `json:"state,omitempty"`
	ZipCode               *string         `json:"zipCode,omitempty"`
	EmergencyContactName  *string         `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string         `json:"emergencyContactPhone,omitempty"`
	MedicalHistory        *string         `json:"medicalHistory,omitempty"`
	Allergies             *string         `json:"allergies,omitempty"`
	CurrentMedications    *string         `json:"currentMedications,omitempty"`
	InsuranceProvider     *string         `json:"insuranceProvider,omitempty"`
	InsurancePolicyNumber *string         `json:"insurancePolicyNumber,omitempty"`
	PreferredLanguage     *string         `json:"preferredLanguage,omitempty"`
	Status                *CustomerStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
}
