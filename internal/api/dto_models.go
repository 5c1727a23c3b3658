package api

import (
	"pulsetrack-backend-go/internal/core"
	"pulsetrack-backend-go/internal/models"
)

// ErrorResponse is a generic structure for returning errors via API.
// Field names the form field a validation failure is scoped to.
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// Notice is a transient success indicator. DismissAfterMS tells the client
// how long to show it before self-clearing.
type Notice struct {
	Message        string `json:"message"`
	DismissAfterMS int    `json:"dismissAfterMs"`
}

// successDismissMS is the fixed display time for success notices.
const successDismissMS = 3000

// ActivityView is the API representation of one activity record. Timestamp
// is the store-assigned commit time in milliseconds; it is omitted on a
// freshly logged record, which has not been read back yet.
type ActivityView struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Timestamp   int64  `json:"timestamp,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// StatsView carries the three derived statistics of the stats panel.
type StatsView struct {
	ActivitiesToday int `json:"activitiesToday"`
	TotalActivities int `json:"totalActivities"`
	ActiveDays      int `json:"activeDays"`
}

// DashboardResponse is the aggregation pipeline's output for one snapshot:
// the full ordered list, today's view, the statistics, the placeholder
// selected when today is empty, and the formatted server clock.
type DashboardResponse struct {
	Activities  []ActivityView `json:"activities"`
	Today       []ActivityView `json:"today"`
	Stats       StatsView      `json:"stats"`
	Placeholder string         `json:"placeholder,omitempty"`
	CurrentTime string         `json:"currentTime"`
}

// LogActivityResponse confirms a successful submission.
type LogActivityResponse struct {
	Activity ActivityView `json:"activity"`
	Notice   Notice       `json:"notice"`
}

// SetupProfileResponse confirms the one-time profile creation and carries the
// resulting session state (profile setup always leads to the dashboard).
type SetupProfileResponse struct {
	Profile *models.Profile   `json:"profile"`
	State   core.SessionState `json:"state"`
}

// SessionUser is the dashboard header's identity block.
type SessionUser struct {
	DisplayName   string `json:"displayName"`
	Email         string `json:"email"`
	AvatarInitial string `json:"avatarInitial"`
}

// SessionResponse reports the view state machine's state for the caller.
// User is present only in the dashboard state.
type SessionResponse struct {
	State core.SessionState `json:"state"`
	User  *SessionUser      `json:"user,omitempty"`
}

func toActivityView(a models.Activity) ActivityView {
	view := ActivityView{
		ID:          a.ID,
		Description: a.Description,
		Duration:    a.Duration,
		Date:        a.Date,
		Time:        a.Time,
	}
	if !a.Timestamp.IsZero() {
		view.Timestamp = a.Timestamp.UnixMilli()
	}
	return view
}

func toActivityViews(records []models.Activity) []ActivityView {
	views := make([]ActivityView, len(records))
	for i, a := range records {
		views[i] = toActivityView(a)
	}
	return views
}

func toDashboardResponse(view *core.DashboardView) DashboardResponse {
	return DashboardResponse{
		Activities: toActivityViews(view.Summary.OrderedAll),
		Today:      toActivityViews(view.Summary.Today),
		Stats: StatsView{
			ActivitiesToday: view.Summary.ActivitiesToday,
			TotalActivities: view.Summary.TotalActivities,
			ActiveDays:      view.Summary.ActiveDays,
		},
		Placeholder: view.Placeholder,
		CurrentTime: view.CurrentTime,
	}
}
