package api

import (
	"context"
	"encoding/json"
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

func init() {
	gin.SetMode(gin.TestMode)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// fakeActivityRepo records Append calls and serves canned snapshots.
type fakeActivityRepo struct {
	appended  []models.Activity
	listed    []models.Activity
	listErr   error
	snapshots chan db.ActivitySnapshot
}

func (f *fakeActivityRepo) Append(_ context.Context, _ string, activity *models.Activity) (string, error) {
	activity.ID = "generated-id"
	f.appended = append(f.appended, *activity)
	return activity.ID, nil
}

func (f *fakeActivityRepo) List(context.Context, string) ([]models.Activity, error) {
	return f.listed, f.listErr
}

func (f *fakeActivityRepo) Subscribe(context.Context, string) (<-chan db.ActivitySnapshot, error) {
	return f.snapshots, nil
}

// asUser stands in for the auth middleware in tests.
func asUser(userID, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		if email != "" {
			c.Set("userEmail", email)
		}
		c.Next()
	}
}

func newActivityRouter(repo *fakeActivityRepo, clock core.Clock) *gin.Engine {
	service := core.NewActivityService(repo, clock)
	handler := NewActivityHandler(service)

	router := gin.New()
	router.POST("/api/v1/activities", asUser("user-1", ""), handler.LogActivity)
	router.GET("/api/v1/dashboard", asUser("user-1", ""), handler.GetDashboard)
	return router
}

func TestLogActivitySuccess(t *testing.T) {
	repo := &fakeActivityRepo{}
	router := newActivityRouter(repo, fixedClock{time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/activities",
		strings.NewReader(`{"description":"Run","duration":30}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp LogActivityResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "generated-id", resp.Activity.ID)
	assert.Equal(t, "Run", resp.Activity.Description)
	assert.Equal(t, 30, resp.Activity.Duration)
	assert.Equal(t, "Mon Jan 01 2024", resp.Activity.Date)
	assert.Equal(t, "09:00 AM", resp.Activity.Time)
	assert.Equal(t, "Activity logged successfully!", resp.Notice.Message)
	assert.Equal(t, 3000, resp.Notice.DismissAfterMS)
	require.Len(t, repo.appended, 1)
}

func TestLogActivityRejectsZeroDuration(t *testing.T) {
	repo := &fakeActivityRepo{}
	router := newActivityRouter(repo, fixedClock{time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/activities",
		strings.NewReader(`{"description":"Run","duration":0}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "duration", resp.Field)
	assert.Empty(t, repo.appended, "no write may occur on validation failure")
}

func TestLogActivityRejectsMissingDescription(t *testing.T) {
	repo := &fakeActivityRepo{}
	router := newActivityRouter(repo, fixedClock{time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/activities",
		strings.NewReader(`{"duration":30}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "description", resp.Field)
	assert.Empty(t, repo.appended)
}

func TestGetDashboard(t *testing.T) {
	repo := &fakeActivityRepo{
		listed: []models.Activity{
			{ID: "a", Description: "Run", Duration: 30, Timestamp: time.UnixMilli(100), Date: "Mon Jan 01 2024", Time: "9:00 AM"},
			{ID: "b", Description: "Read", Duration: 20, Timestamp: time.UnixMilli(200), Date: "Mon Jan 01 2024", Time: "10:00 AM"},
		},
	}
	router := newActivityRouter(repo, fixedClock{time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Activities, 2)
	assert.Equal(t, "b", resp.Activities[0].ID, "most recent first")
	assert.Equal(t, int64(200), resp.Activities[0].Timestamp)
	assert.Equal(t, 2, resp.Stats.ActivitiesToday)
	assert.Equal(t, 2, resp.Stats.TotalActivities)
	assert.Equal(t, 1, resp.Stats.ActiveDays)
	assert.Empty(t, resp.Placeholder)
	assert.Equal(t, "Monday, January 1, 2024, 10:30 AM", resp.CurrentTime)
}

func TestGetDashboardEmpty(t *testing.T) {
	router := newActivityRouter(&fakeActivityRepo{}, fixedClock{time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp.Activities)
	assert.Equal(t, 0, resp.Stats.TotalActivities)
	assert.Equal(t, core.NoActivitiesPlaceholder, resp.Placeholder)
}
