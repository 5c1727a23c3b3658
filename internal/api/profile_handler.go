package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulsetrack-backend-go/internal/core"
	"pulsetrack-backend-go/internal/models"
)

// ProfileHandler handles profile-related API endpoints.
type ProfileHandler struct {
	profileService core.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(ps core.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: ps}
}

// GetProfile handles GET /api/v1/profile.
// It retrieves the profile of the currently authenticated user.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetByID(c.Request.Context(), userID)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SetupProfile handles POST /api/v1/profile, the one-time profile setup.
// Email is taken from the verified ID token, never from the request body.
// On validation failure no write occurs and the error is scoped to the
// offending field.
func (h *ProfileHandler) SetupProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	email := c.GetString("userEmail")

	var req models.SetupProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	profile, err := h.profileService.Setup(c.Request.Context(), userID, email, req)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}

	// A completed setup always lands on the dashboard.
	machine := core.NewSessionMachine()
	machine.Apply(core.EventSignedIn{ProfileComplete: false})
	state := machine.Apply(core.EventProfileCompleted{})

	c.JSON(http.StatusCreated, SetupProfileResponse{
		Profile: profile,
		State:   state,
	})
}
