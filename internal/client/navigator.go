package client

import (
	"github.com/MKhiriev/go-school-link/internal/service"
)

// Navigator resolves where the user may go next. The first-login gate takes
// precedence over every association state.
type Navigator struct {
	store service.SessionStore
	gate  *service.FirstLoginGate
}

func NewNavigator(store service.SessionStore, gate *service.FirstLoginGate) *Navigator {
	return &Navigator{store: store, gate: gate}
}

// Resolve returns the destination the session currently leads to.
func (n *Navigator) Resolve() service.Route {
	view := n.store.View()

	switch {
	case !view.IsAuthenticated:
		return service.RouteLogin
	case n.gate.State() == service.GateMustChangePassword:
		return service.RouteChangePassword
	case view.Associations != nil && len(view.Associations) == 0:
		return service.RouteNoAssociations
	case view.ActiveAssociation == nil:
		return service.RouteSelectAssociation
	case view.IntegrityFault != nil:
		return service.RouteIntegrityFault
	default:
		return service.RouteHome
	}
}

// Navigate checks whether route may be entered. A blocked route returns the
// destination the user is sent to instead, with ErrRouteBlocked.
func (n *Navigator) Navigate(route service.Route) (service.Route, error) {
	if !n.gate.Allow(route) {
		return service.RouteChangePassword, ErrRouteBlocked
	}

	resolved := n.Resolve()
	if resolved == service.RouteHome || !tenantScoped(route) {
		return route, nil
	}
	return resolved, ErrRouteBlocked
}

func tenantScoped(route service.Route) bool {
	switch route {
	case service.RouteHome, service.RouteActivity, service.RouteAttendance, service.RouteNotifications:
		return true
	default:
		return false
	}
}
