package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionMachineInitialState(t *testing.T) {
	m := NewSessionMachine()
	assert.Equal(t, StateUnauthenticated, m.State())
}

func TestSessionMachineSignInWithCompleteProfile(t *testing.T) {
	m := NewSessionMachine()
	assert.Equal(t, StateDashboard, m.Apply(EventSignedIn{ProfileComplete: true}))
}

func TestSessionMachineSignInWithIncompleteProfile(t *testing.T) {
	m := NewSessionMachine()
	assert.Equal(t, StateProfileIncomplete, m.Apply(EventSignedIn{ProfileComplete: false}))
	assert.Equal(t, StateDashboard, m.Apply(EventProfileCompleted{}))
}

func TestSessionMachineSignOutFromAnyState(t *testing.T) {
	fromDashboard := NewSessionMachine()
	fromDashboard.Apply(EventSignedIn{ProfileComplete: true})
	assert.Equal(t, StateUnauthenticated, fromDashboard.Apply(EventSignedOut{}))

	fromSetup := NewSessionMachine()
	fromSetup.Apply(EventSignedIn{ProfileComplete: false})
	assert.Equal(t, StateUnauthenticated, fromSetup.Apply(EventSignedOut{}))
}

func TestSessionMachineIgnoresInapplicableEvents(t *testing.T) {
	// Completing a profile only matters during setup.
	m := NewSessionMachine()
	assert.Equal(t, StateUnauthenticated, m.Apply(EventProfileCompleted{}))

	// A repeated sign-in while already signed in does not regress the state.
	m.Apply(EventSignedIn{ProfileComplete: true})
	assert.Equal(t, StateDashboard, m.Apply(EventSignedIn{ProfileComplete: false}))
}
