package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-school-link/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// SessionStore is the single owner and writer of session state and of the
// persisted snapshot. Every other component reads views or issues intents.
type SessionStore interface {
	// Hydrate restores the persisted snapshot, marking the session
	// optimistically authenticated, and runs the selector over the cached
	// list without network access. It always clears IsLoading, also when
	// a login or logout settled the session first and it returns
	// [ErrSessionSuperseded]. A corrupt snapshot is logged, removed and
	// replaced by an empty session; its decode error is never returned.
	Hydrate(ctx context.Context) (SelectionResult, error)

	// Login validates the credentials locally, authenticates against the
	// backend under a bounded timeout, replaces token and user wholesale,
	// adopts an inline active association, persists, fetches associations
	// when they were not embedded and runs the selector. On failure the
	// session is left untouched and an [*AuthError] is returned.
	Login(ctx context.Context, email, password string) (models.SessionView, error)

	// Logout clears every field and every persisted key. It is local-only,
	// never fails, is safe to call twice and wins over an in-flight login or
	// hydrate.
	Logout(ctx context.Context)

	// UpdateUserAfterPasswordChange clears the first-login flag and
	// re-persists. It does not re-authenticate.
	UpdateUserAfterPasswordChange(ctx context.Context) error

	// ChangePassword rotates the password remotely and, on success, calls
	// UpdateUserAfterPasswordChange.
	ChangePassword(ctx context.Context, newPassword string) error

	// RefreshActiveAssociation refetches the association list and re-runs
	// the selector with the current active association as the candidate.
	RefreshActiveAssociation(ctx context.Context) (SelectionResult, error)

	// ForceRefreshActiveAssociation asks the backend for the authoritative
	// active association, bypassing every cache, and overwrites the
	// session's. Concurrent calls share one request.
	ForceRefreshActiveAssociation(ctx context.Context) (*models.Association, error)

	// SelectAssociation makes the association with id active. It must be
	// present in the list and active.
	SelectAssociation(ctx context.Context, id string) error

	// EnsureConsistent reconciles the active association, forcing one
	// refresh on inconsistency. A second inconsistent verdict records an
	// integrity fault and returns [ErrInconsistentAssociation].
	EnsureConsistent(ctx context.Context) (ReconcileOutcome, error)

	// View returns a read-only copy of the session.
	View() models.SessionView

	// Subscribe registers fn to receive every committed view, in commit
	// order. fn runs synchronously and must not call mutating methods.
	Subscribe(fn func(models.SessionView)) (unsubscribe func())
}

// AssociationSelector decides which association should be active.
type AssociationSelector interface {
	Select(list []models.Association, cached *models.Association) SelectionResult
}

// ConsistencyReconciler validates the active association against the role
// and every registered [StudentReference]. It is side-effect free except
// for logging.
type ConsistencyReconciler interface {
	Reconcile(active *models.Association, role models.Role) ReconcileOutcome
	Register(ref StudentReference) (unregister func())
}

// ReconcileJob periodically asks the session store to refresh and reconcile.
// It never mutates session fields itself.
type ReconcileJob interface {
	// Start launches the background goroutine. A zero or negative interval
	// defaults to 5 minutes. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}
