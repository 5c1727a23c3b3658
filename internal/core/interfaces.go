package core

import (
	"context"

	"pulsetrack-backend-go/internal/models"
)

// ProfileService defines the interface for profile-related operations.
type ProfileService interface {
	// Setup performs the one-time profile creation for the authenticated
	// user. Email comes from the verified ID token, not from the request.
	Setup(ctx context.Context, userID, email string, req models.SetupProfileRequest) (*models.Profile, error)
	GetByID(ctx context.Context, userID string) (*models.Profile, error)
	// IsComplete reports whether the user has a complete profile. Lookup
	// failures are treated as absent.
	IsComplete(ctx context.Context, userID string) bool
}

// DashboardView is the aggregation pipeline's output prepared for
// presentation: the summary, the placeholder selected when today's view is
// empty, and the formatted server clock string.
type DashboardView struct {
	Summary     Summary
	Placeholder string
	CurrentTime string
}

// DashboardUpdate is one delivery on a live dashboard subscription.
type DashboardUpdate struct {
	View *DashboardView
	Err  error
}

// ActivityService defines the interface for activity-related operations.
type ActivityService interface {
	Log(ctx context.Context, userID string, req models.LogActivityRequest) (*models.Activity, error)
	// Dashboard runs one snapshot of the user's collection through the
	// aggregation pipeline.
	Dashboard(ctx context.Context, userID string) (*DashboardView, error)
	// Subscribe opens a live-update channel; every push from the store is
	// re-run through the aggregation pipeline as a full replacement. The
	// channel closes when ctx is cancelled.
	Subscribe(ctx context.Context, userID string) (<-chan DashboardUpdate, error)
}

// SessionService resolves the view state machine for a request.
type SessionService interface {
	// Resolve feeds the caller's auth state into a fresh session machine and
	// returns the resulting state. An empty userID means unauthenticated.
	Resolve(ctx context.Context, userID string) SessionState
}
