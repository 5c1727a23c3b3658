package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsetrack-backend-go/internal/core"
	"pulsetrack-backend-go/internal/db"
	"pulsetrack-backend-go/internal/models"
)

func newStreamRouter(repo *fakeActivityRepo, clock core.Clock) *gin.Engine {
	service := core.NewActivityService(repo, clock)
	handler := NewStreamHandler(service, clock)

	router := gin.New()
	router.GET("/api/v1/dashboard/stream", asUser("user-1", ""), handler.StreamDashboard)
	return router
}

func TestStreamDashboardEmitsSnapshotEvents(t *testing.T) {
	snapshots := make(chan db.ActivitySnapshot, 2)
	snapshots <- db.ActivitySnapshot{Records: []models.Activity{
		{ID: "a", Description: "Run", Duration: 30, Timestamp: time.UnixMilli(100), Date: "Mon Jan 01 2024", Time: "9:00 AM"},
	}}
	snapshots <- db.ActivitySnapshot{Records: []models.Activity{
		{ID: "a", Description: "Run", Duration: 30, Timestamp: time.UnixMilli(100), Date: "Mon Jan 01 2024", Time: "9:00 AM"},
		{ID: "b", Description: "Read", Duration: 20, Timestamp: time.UnixMilli(200), Date: "Mon Jan 01 2024", Time: "10:00 AM"},
	}}
	close(snapshots)

	repo := &fakeActivityRepo{snapshots: snapshots}
	router := newStreamRouter(repo, fixedClock{time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stream", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))

	body := rr.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event:dashboard"), "one event per delivered snapshot")
	assert.Contains(t, body, `"totalActivities":1`)
	assert.Contains(t, body, `"totalActivities":2`, "each delivery fully replaces the previous state")
}

func TestStreamDashboardReportsSubscriptionFailure(t *testing.T) {
	snapshots := make(chan db.ActivitySnapshot, 1)
	snapshots <- db.ActivitySnapshot{Err: assert.AnError}

	repo := &fakeActivityRepo{snapshots: snapshots}
	router := newStreamRouter(repo, fixedClock{time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stream", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	body := rr.Body.String()
	assert.Contains(t, body, "event:error")
	assert.NotContains(t, body, assert.AnError.Error(), "error details stay server-side")
}
