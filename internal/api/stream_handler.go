package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pulsetrack-backend-go/internal/core"
	"pulsetrack-backend-go/internal/observability"
)

// clockInterval matches the page's one-second clock refresh.
const clockInterval = time.Second

// StreamHandler serves the dashboard's live-update channel over
// Server-Sent Events.
type StreamHandler struct {
	activityService core.ActivityService
	clock           core.Clock
}

// NewStreamHandler creates a new StreamHandler. A nil clock defaults to the
// system clock.
func NewStreamHandler(as core.ActivityService, clock core.Clock) *StreamHandler {
	if clock == nil {
		clock = core.SystemClock()
	}
	return &StreamHandler{activityService: as, clock: clock}
}

// StreamDashboard handles GET /api/v1/dashboard/stream.
//
// It emits one "dashboard" event per live snapshot from the store (each a
// full replacement run through the aggregation pipeline, so the
// last-delivered snapshot always wins) and a recurring "clock" event with
// the formatted server time. The subscription is torn down when the client
// disconnects; there is no other unsubscribe path. A subscription failure is
// reported as a single "error" event, not retried.
func (h *StreamHandler) StreamDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	updates, err := h.activityService.Subscribe(ctx, userID)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}

	observability.StreamOpened()
	defer observability.StreamClosed()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(clockInterval)
	defer ticker.Stop()

	for {
		select {
		case update, open := <-updates:
			if !open {
				return
			}
			if update.Err != nil {
				// Generic message to the client; the repository already
				// wrapped the details for the server-side log.
				c.SSEvent("error", ErrorResponse{Error: "Live updates interrupted. Please reload."})
				c.Writer.Flush()
				return
			}
			c.SSEvent("dashboard", toDashboardResponse(update.View))
			c.Writer.Flush()
		case <-ticker.C:
			c.SSEvent("clock", h.clock.Now().Format(core.ClockLayout))
			c.Writer.Flush()
		case <-ctx.Done():
			return
		}
	}
}
