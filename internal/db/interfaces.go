package db

import (
	"context"

	"pulsetrack-backend-go/internal/models"
)

// ProfileRepository defines the interface for profile storage operations.
// Profiles are written exactly once; there is no update or delete.
type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
}

// ActivitySnapshot is one complete materialization of a user's activity
// collection, delivered on every live-update push. Err is set when the
// subscription fails or a snapshot fails to decode; Records is then nil.
type ActivitySnapshot struct {
	Records []models.Activity
	Err     error
}

// ActivityRepository defines the interface for activity storage operations.
// Records are append-only: no update or delete exists.
type ActivityRepository interface {
	// Append writes a new record under the user's collection and returns the
	// store-assigned ID. The record's timestamp is assigned server-side.
	Append(ctx context.Context, userID string, activity *models.Activity) (string, error)
	// List returns one snapshot of the user's collection, in no particular order.
	List(ctx context.Context, userID string) ([]models.Activity, error)
	// Subscribe opens a live-update channel delivering a full replacement
	// snapshot on every change, in server-commit order. The channel closes
	// when ctx is cancelled.
	Subscribe(ctx context.Context, userID string) (<-chan ActivitySnapshot, error)
}
