package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pulsetrack-backend-go/internal/db"
	"pulsetrack-backend-go/internal/models"
)

// ErrProfileNotFound is returned when a user has no stored profile.
var ErrProfileNotFound = errors.New("profile not found")

// ErrProfileAlreadyComplete is returned when setup is attempted for a user
// whose profile already exists. Profiles are written exactly once.
var ErrProfileAlreadyComplete = errors.New("profile already complete")

// profileService implements the ProfileService interface.
type profileService struct {
	profileRepo db.ProfileRepository
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(profileRepo db.ProfileRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
	}
}

// Setup validates and performs the one-time profile write. A profile is
// stored either complete with all four fields populated, or not at all; no
// write occurs on validation failure.
func (s *profileService) Setup(ctx context.Context, userID, email string, req models.SetupProfileRequest) (*models.Profile, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for Setup operation")
	}
	if verr := ValidateProfileSetup(req); verr != nil {
		return nil, verr
	}

	// A failed lookup is treated as absent: the subsequent Create is the
	// authoritative once-only guard (the store rejects an existing doc ID).
	existing, err := s.profileRepo.GetByID(ctx, userID)
	if err == nil && existing != nil && existing.ProfileComplete {
		return nil, fmt.Errorf("%w: user '%s'", ErrProfileAlreadyComplete, userID)
	}

	profile := &models.Profile{
		ID:              userID,
		DisplayName:     strings.TrimSpace(req.DisplayName),
		Birthdate:       strings.TrimSpace(req.Birthdate),
		Email:           email,
		ProfileComplete: true,
		// JoinedDate is assigned by the store at commit time.
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile for user '%s': %w", userID, err)
	}
	return profile, nil
}

// GetByID retrieves a user's profile.
func (s *profileService) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user '%s'", ErrProfileNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get profile for user '%s': %w", userID, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: user '%s'", ErrProfileNotFound, userID)
	}
	return profile, nil
}

// IsComplete reports whether the user has a complete profile. Absent profiles
// and lookup failures both report false, which routes the session to profile
// setup rather than surfacing a read error.
func (s *profileService) IsComplete(ctx context.Context, userID string) bool {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	return err == nil && profile != nil && profile.ProfileComplete
}
