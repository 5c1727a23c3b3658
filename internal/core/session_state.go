package core

// SessionState identifies which of the three page sections a client session
// should present. Exactly one state is active at a time.
type SessionState string

const (
	StateUnauthenticated   SessionState = "unauthenticated"
	StateProfileIncomplete SessionState = "profile_incomplete"
	StateDashboard         SessionState = "dashboard"
)

// Session events. Each carries the payload the transition depends on; they
// are delivered into the machine rather than acted on as ambient side effects.
type (
	// EventSignedIn reports a successful identity-provider sign-in together
	// with the result of the profile lookup for that user. A failed lookup is
	// reported as ProfileComplete=false (absent and incomplete are treated
	// alike).
	EventSignedIn struct{ ProfileComplete bool }

	// EventProfileCompleted reports a successful one-time profile setup.
	EventProfileCompleted struct{}

	// EventSignedOut reports the identity provider signing the user out,
	// including explicit logout.
	EventSignedOut struct{}
)

// SessionMachine is the linear view state machine driving section visibility.
// It starts Unauthenticated and runs for the lifetime of the session; there
// is no terminal state. Events that do not apply in the current state leave
// it unchanged.
type SessionMachine struct {
	state SessionState
}

// NewSessionMachine returns a machine in the initial Unauthenticated state.
func NewSessionMachine() *SessionMachine {
	return &SessionMachine{state: StateUnauthenticated}
}

// State reports the current state.
func (m *SessionMachine) State() SessionState { return m.state }

// Apply delivers one event and returns the resulting state.
func (m *SessionMachine) Apply(event any) SessionState {
	switch e := event.(type) {
	case EventSignedIn:
		if m.state == StateUnauthenticated {
			if e.ProfileComplete {
				m.state = StateDashboard
			} else {
				m.state = StateProfileIncomplete
			}
		}
	case EventProfileCompleted:
		if m.state == StateProfileIncomplete {
			m.state = StateDashboard
		}
	case EventSignedOut:
		m.state = StateUnauthenticated
	}
	return m.state
}
