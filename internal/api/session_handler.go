package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulsetrack-backend-go/internal/core"
)

// SessionHandler reports the view state machine's state for the caller.
type SessionHandler struct {
	sessionService core.SessionService
	profileService core.ProfileService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(ss core.SessionService, ps core.ProfileService) *SessionHandler {
	return &SessionHandler{sessionService: ss, profileService: ps}
}

// GetSession handles GET /api/v1/session.
// The route sits behind the auth middleware, so reaching it means the caller
// is signed in; the state machine then picks between profile setup and the
// dashboard based on the profile lookup. Dashboard responses include the
// header identity block.
func (h *SessionHandler) GetSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	state := h.sessionService.Resolve(c.Request.Context(), userID)
	resp := SessionResponse{State: state}

	if state == core.StateDashboard {
		profile, err := h.profileService.GetByID(c.Request.Context(), userID)
		if err != nil && !errors.Is(err, core.ErrProfileNotFound) {
			mapErrorToStatus(c, err)
			return
		}
		if profile != nil {
			resp.User = &SessionUser{
				DisplayName:   profile.DisplayName,
				Email:         profile.Email,
				AvatarInitial: avatarInitial(profile.DisplayName),
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
