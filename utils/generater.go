package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID returns a random v4 identifier.
func GenerateUUID() string {
	return uuid.NewString()
}

func GenerateCustomerNumber() string {
	return recordNumber("CUST")
}

func GenerateAppointmentNumber() string {
	return recordNumber("APT")
}

func recordNumber(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(id[:8])
}
