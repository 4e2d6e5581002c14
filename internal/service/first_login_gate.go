package service

import (
	"sync"

	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/models"
)

// GateState is the state of the [FirstLoginGate].
type GateState int

const (
	GateNormal GateState = iota
	GateMustChangePassword
)

func (s GateState) String() string {
	if s == GateMustChangePassword {
		return "must-change-password"
	}
	return "normal"
}

// Route names a navigation destination.
type Route string

const (
	RouteLogin             Route = "login"
	RouteChangePassword    Route = "change-password"
	RouteNoAssociations    Route = "no-associations"
	RouteSelectAssociation Route = "select-association"
	RouteIntegrityFault    Route = "integrity-fault"
	RouteHome              Route = "home"
	RouteActivity          Route = "activity"
	RouteAttendance        Route = "attendance"
	RouteNotifications     Route = "notifications"
)

// FirstLoginGate blocks every route but password rotation while the
// authenticated user is flagged as first-login.
//
// The gate only follows the session: it opens when the session store has
// cleared the flag, which happens solely through a successful rotation
// followed by UpdateUserAfterPasswordChange, or when the session ends.
type FirstLoginGate struct {
	mu    sync.RWMutex
	state GateState

	logger *logger.Logger
}

func NewFirstLoginGate(logger *logger.Logger) *FirstLoginGate {
	return &FirstLoginGate{logger: logger}
}

// Observe updates the gate from a session view. It is meant to be passed to
// SessionStore.Subscribe.
func (g *FirstLoginGate) Observe(view models.SessionView) {
	next := GateNormal
	if view.IsAuthenticated && view.User != nil && view.User.FirstLoginPending {
		next = GateMustChangePassword
	}

	g.mu.Lock()
	prev := g.state
	g.state = next
	g.mu.Unlock()

	if prev != next {
		g.logger.Info().
			Str("func", "FirstLoginGate.Observe").
			Str("from", prev.String()).
			Str("to", next.String()).
			Msg("first-login gate transition")
	}
}

func (g *FirstLoginGate) State() GateState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Allow reports whether route may be entered in the current state.
func (g *FirstLoginGate) Allow(route Route) bool {
	if g.State() == GateNormal {
		return true
	}
	return route == RouteChangePassword
}
