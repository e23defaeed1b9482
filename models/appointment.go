package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentNoShow    AppointmentStatus = "NO_SHOW"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type Appointment struct {
	ID                    string            `json:"id" gorm:"type:uuid;primaryKey"`
	AppointmentNumber     string            `json:"appointmentNumber" gorm:"uniqueIndex;not null"`
	PatientName           string            `json:"patientName" gorm:"not null"`
	PatientEmail          string            `json:"patientEmail" gorm:"index"`
	PatientPhone          string            `json:"patientPhone"`
	PatientNIC            *string           `json:"patientNIC,omitempty" gorm:"column:patient_nic"`
	PatientDateOfBirth    *time.Time        `json:"patientDateOfBirth,omitempty"`
	PatientGender         Gender            `json:"patientGender"`
	EmergencyContactName  *string           `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string           `json:"emergencyContactPhone,omitempty"`
	MedicalHistory        *string           `json:"medicalHistory,omitempty"`
	CurrentMedications    *string           `json:"currentMedications,omitempty"`
	Allergies             *string           `json:"allergies,omitempty"`
	InsuranceProvider     *string           `json:"insuranceProvider,omitempty"`
	InsurancePolicyNumber *string           `json:"insurancePolicyNumber,omitempty"`
	IsNewPatient          bool              `json:"isNewPatient"`
	SessionID             string            `json:"sessionId" gorm:"index;not null"`
	EstimatedWaitTime     *int              `json:"estimatedWaitTime,omitempty"`
	QueuePosition         *int              `json:"queuePosition,omitempty"`
	ConsultationFee       float64           `json:"consultationFee"`
	TotalAmount           float64           `json:"totalAmount"`
	Status                AppointmentStatus `json:"status" gorm:"index"`
	PaymentStatus         PaymentStatus     `json:"paymentStatus"`
	Notes                 *string           `json:"notes,omitempty"`
	CancellationReason    *string           `json:"cancellationReason,omitempty"`
	CancellationDate      *time.Time        `json:"cancellationDate,omitempty"`
	BookedByID            *string           `json:"bookedById,omitempty" gorm:"type:uuid;index"`
	CreatedAt             time.Time         `json:"createdAt"`
	UpdatedAt             time.Time         `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = AppointmentConfirmed
	}
	if a.PaymentStatus == "" {
		a.PaymentStatus = PaymentPending
	}
	return nil
}

type CreateAppointmentInput struct {
	PatientName           string  `json:"patientName" validate:"required,min=1"`
	PatientEmail          string  `json:"patientEmail" validate:"required,email"`
	PatientPhone          string  `json:"patientPhone" validate:"required,min=1"`
	PatientNIC            *string `json:"patientNIC,omitempty"`
	PatientDateOfBirth    *string `json:"patientDateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	PatientGender         Gender  `json:"patientGender" validate:"required,oneof=MALE FEMALE OTHER"`
	EmergencyContactName  *string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string `json:"emergencyContactPhone,omitempty"`
	MedicalHistory        *string `json:"medicalHistory,omitempty"`
	CurrentMedications    *string `json:"currentMedications,omitempty"`
	Allergies             *string `json:"allergies,omitempty"`
	InsuranceProvider     *string `json:"insuranceProvider,omitempty"`
	InsurancePolicyNumber *string `json:"insurancePolicyNumber,omitempty"`
	IsNewPatient          *bool   `json:"isNewPatient,omitempty"`
	SessionID             string  `json:"sessionId" validate:"required,min=1"`
	ConsultationFee       float64 `json:"consultationFee" validate:"min=0"`
	TotalAmount           float64 `json:"totalAmount" validate:"min=0"`
	Notes                 *string `json:"notes,omitempty"`
}

type UpdateAppointmentInput struct {
	PatientName           *string            `json:"patientName,omitempty" validate:"omitempty,min=1"`
	PatientEmail          *string            `json:"patientEmail,omitempty" validate:"omitempty,email"`
	PatientPhone          *string            `json:"patientPhone,omitempty"`
	PatientNIC            *string            `json:"patientNIC,omitempty"`
	PatientDateOfBirth    *string            `json:"patientDateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	PatientGender         *Gender            `json:"patientGender,omitempty" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	EmergencyContactName  *string            `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string            `json:"emergencyContactPhone,omitempty"`
	MedicalHistory        *string            `json:"medicalHistory,omitempty"`
	CurrentMedications    *string            `json:"currentMedications,omitempty"`
	Allergies             *string            `json:"allergies,omitempty"`
	InsuranceProvider     *string            `json:"insuranceProvider,omitempty"`
	InsurancePolicyNumber *string            `json:"insurancePolicyNumber,omitempty"`
	IsNewPatient          *bool              `json:"isNewPatient,omitempty"`
	EstimatedWaitTime     *int               `json:"estimatedWaitTime,omitempty"`
	QueuePosition         *int               `json:"queuePosition,omitempty"`
	Status                *AppointmentStatus `json:"status,omitempty" validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED NO_SHOW"`
	PaymentStatus         *PaymentStatus     `json:"paymentStatus,omitempty" validate:"omitempty,oneof=PENDING PAID FAILED REFUNDED"`
	ConsultationFee       *float64           `json:"consultationFee,omitempty" validate:"omitempty,min=0"`
	TotalAmount           *float64           `json:"totalAmount,omitempty" validate:"omitempty,min=0"`
	Notes                 *string            `json:"notes,omitempty"`
	CancellationReason    *string            `json:"cancellationReason,omitempty"`
}

type CancelAppointmentInput struct {
	CancellationReason *string `json:"cancellationReason" validate:"omitempty,max=500"`
}
