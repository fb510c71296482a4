package util

import (
	"github.com/google/uuid"
)

// GenerateUUID returns a new random (version 4) UUID string
func GenerateUUID() string {
	return uuid.NewString()
}
