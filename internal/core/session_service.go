package core

import "context"

// sessionService implements the SessionService interface by feeding the
// caller's auth state through the session machine.
type sessionService struct {
	profiles ProfileService
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(profiles ProfileService) SessionService {
	return &sessionService{profiles: profiles}
}

// Resolve determines the session state for one request. Each request carries
// its own auth state, so the machine is replayed from its initial state: a
// verified token is a signed-in event whose payload is the profile lookup
// result, and its absence leaves the machine Unauthenticated.
func (s *sessionService) Resolve(ctx context.Context, userID string) SessionState {
	machine := NewSessionMachine()
	if userID == "" {
		return machine.State()
	}
	return machine.Apply(EventSignedIn{ProfileComplete: s.profiles.IsComplete(ctx, userID)})
}
