package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulsetrack-backend-go/internal/core"
	"pulsetrack-backend-go/internal/models"
)

// ActivityHandler handles activity-related API endpoints.
type ActivityHandler struct {
	activityService core.ActivityService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(as core.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: as}
}

// LogActivity handles POST /api/v1/activities.
// On validation failure no write occurs; on success the response carries the
// created record and a transient success notice with a fixed dismiss delay.
func (h *ActivityHandler) LogActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.LogActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	activity, err := h.activityService.Log(c.Request.Context(), userID, req)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusCreated, LogActivityResponse{
		Activity: toActivityView(*activity),
		Notice: Notice{
			Message:        "Activity logged successfully!",
			DismissAfterMS: successDismissMS,
		},
	})
}

// GetDashboard handles GET /api/v1/dashboard.
// It returns one snapshot of the user's collection run through the
// aggregation pipeline. Live updates are served by the stream endpoint;
// a write triggers the subscription callback there, not a refresh here.
func (h *ActivityHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.activityService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, toDashboardResponse(view))
}
