package models

// SetupProfileRequest represents the request body for the one-time profile setup.
// Email is not part of the body; it is copied from the verified ID token.
type SetupProfileRequest struct {
	DisplayName string `json:"displayName"`
	Birthdate   string `json:"birthdate"`
}

// LogActivityRequest represents the request body for logging an activity.
// Duration is a pointer so that a missing field and an explicit zero can be
// told apart and rejected with distinct messages.
type LogActivityRequest struct {
	Description string `json:"description"`
	Duration    *int   `json:"duration"`
}
