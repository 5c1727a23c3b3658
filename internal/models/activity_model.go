package models

import (
	"errors"
	"fmt"
	"time"
)

// Activity represents a single logged activity. Records are append-only:
// once written they are never updated or deleted.
type Activity struct {
	ID          string    `json:"id" firestore:"-"` // Document ID, auto-generated
	Description string    `json:"description" firestore:"description"`
	Duration    int       `json:"duration" firestore:"duration"` // Minutes
	Timestamp   time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	Date        string    `json:"date" firestore:"date"` // Calendar day string, client clock at submission
	Time        string    `json:"time" firestore:"time"` // Clock string, client clock at submission
}

// ErrMalformedActivity indicates a stored record that does not satisfy the
// activity invariants. Snapshots containing such records are rejected whole
// rather than passed through partially decoded.
var ErrMalformedActivity = errors.New("malformed activity record")

// Validate checks the invariants every stored activity must satisfy.
// The submission path guarantees them on write; this guards the read path
// against documents written by anything else.
func (a *Activity) Validate() error {
	if a.Description == "" {
		return fmt.Errorf("%w: missing description (id: %s)", ErrMalformedActivity, a.ID)
	}
	if a.Duration <= 0 {
		return fmt.Errorf("%w: non-positive duration %d (id: %s)", ErrMalformedActivity, a.Duration, a.ID)
	}
	if a.Timestamp.IsZero() {
		return fmt.Errorf("%w: missing timestamp (id: %s)", ErrMalformedActivity, a.ID)
	}
	if a.Date == "" {
		return fmt.Errorf("%w: missing date (id: %s)", ErrMalformedActivity, a.ID)
	}
	return nil
}
