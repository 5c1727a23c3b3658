package core

import (
	"strings"

	"pulsetrack-backend-go/internal/models"
)

// ValidationError is a field-scoped validation failure detected locally,
// before any write is attempted. The Field names the offending form field so
// the client can surface the message next to it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateProfileSetup gates profile writes: both user-supplied fields must
// be present. Returns nil when the request may be written.
func ValidateProfileSetup(req models.SetupProfileRequest) *ValidationError {
	if strings.TrimSpace(req.DisplayName) == "" {
		return &ValidationError{Field: "displayName", Message: "display name is required"}
	}
	if strings.TrimSpace(req.Birthdate) == "" {
		return &ValidationError{Field: "birthdate", Message: "birthdate is required"}
	}
	return nil
}

// ValidateActivityLog gates activity writes. Duration must be present and a
// positive number of minutes: zero stays invalid, as an explicit rule rather
// than a missing-value artifact.
func ValidateActivityLog(req models.LogActivityRequest) *ValidationError {
	if strings.TrimSpace(req.Description) == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if req.Duration == nil {
		return &ValidationError{Field: "duration", Message: "duration is required"}
	}
	if *req.Duration <= 0 {
		return &ValidationError{Field: "duration", Message: "duration must be a positive number of minutes"}
	}
	return nil
}
