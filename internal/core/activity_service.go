package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pulsetrack-backend-go/internal/db"
	"pulsetrack-backend-go/internal/models"
	"pulsetrack-backend-go/internal/observability"
)

// activityService implements the ActivityService interface.
type activityService struct {
	activityRepo db.ActivityRepository
	clock        Clock
}

// NewActivityService creates a new ActivityService instance. A nil clock
// defaults to the system clock.
func NewActivityService(activityRepo db.ActivityRepository, clock Clock) ActivityService {
	if clock == nil {
		clock = SystemClock()
	}
	return &activityService{
		activityRepo: activityRepo,
		clock:        clock,
	}
}

// Log validates and appends one activity record. The date and time strings
// are captured from the clock at submission time; the timestamp itself is
// assigned by the store at commit time.
func (s *activityService) Log(ctx context.Context, userID string, req models.LogActivityRequest) (*models.Activity, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for Log operation")
	}
	if verr := ValidateActivityLog(req); verr != nil {
		observability.RecordSubmission("rejected")
		return nil, verr
	}

	now := s.clock.Now()
	activity := &models.Activity{
		Description: strings.TrimSpace(req.Description),
		Duration:    *req.Duration,
		Date:        now.Format(DateLayout),
		Time:        now.Format(TimeLayout),
		// Timestamp is assigned by the store at commit time.
	}

	if _, err := s.activityRepo.Append(ctx, userID, activity); err != nil {
		observability.RecordSubmission("failed")
		return nil, fmt.Errorf("failed to log activity for user '%s': %w", userID, err)
	}
	observability.RecordSubmission("accepted")
	return activity, nil
}

// Dashboard runs one snapshot of the user's collection through the
// aggregation pipeline.
func (s *activityService) Dashboard(ctx context.Context, userID string) (*DashboardView, error) {
	records, err := s.activityRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities for user '%s': %w", userID, err)
	}
	return s.view(records), nil
}

// Subscribe forwards the store's live-update channel through the aggregation
// pipeline. Each delivery is a full replacement of prior state, so the
// last-delivered snapshot always wins; there is no incremental merge.
func (s *activityService) Subscribe(ctx context.Context, userID string) (<-chan DashboardUpdate, error) {
	snapshots, err := s.activityRepo.Subscribe(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to activities for user '%s': %w", userID, err)
	}

	updates := make(chan DashboardUpdate)
	go func() {
		defer close(updates)
		for snap := range snapshots {
			if snap.Err != nil {
				select {
				case updates <- DashboardUpdate{Err: snap.Err}:
				case <-ctx.Done():
				}
				return
			}
			observability.RecordSnapshotDelivered()
			select {
			case updates <- DashboardUpdate{View: s.view(snap.Records)}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return updates, nil
}

func (s *activityService) view(records []models.Activity) *DashboardView {
	now := s.clock.Now()
	summary := Aggregate(records, DayString(now))
	return &DashboardView{
		Summary:     summary,
		Placeholder: summary.Placeholder(),
		CurrentTime: now.Format(ClockLayout),
	}
}
