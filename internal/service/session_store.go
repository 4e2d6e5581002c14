package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-school-link/internal/adapter"
	"github.com/MKhiriev/go-school-link/internal/app"
	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/internal/store"
	"github.com/MKhiriev/go-school-link/internal/utils"
	"github.com/MKhiriev/go-school-link/internal/validators"
	"github.com/MKhiriev/go-school-link/models"
)

const (
	defaultRequestTimeout = 15 * time.Second
	forceRefreshKey       = "active-association"
)

type sessionStore struct {
	adapter    adapter.ServerAdapter
	snapshots  store.SnapshotRepository
	validator  validators.Validator
	selector   AssociationSelector
	reconciler ConsistencyReconciler
	metrics    *Metrics
	timeout    time.Duration
	logger     *logger.Logger
	now        func() time.Time

	// mu guards state and generation.
	mu         sync.RWMutex
	state      models.Session
	generation uint64

	// commitMu serialises swap, persistence and notification so that
	// subscribers and the snapshot see commits in order.
	commitMu sync.Mutex

	subsMu sync.Mutex
	subs   []subscription
	nextID uint64

	refreshGroup singleflight.Group
}

type subscription struct {
	id uint64
	fn func(models.SessionView)
}

// NewSessionStore creates the session store. The session starts empty with
// IsLoading set until Hydrate completes. requestTimeout bounds Login,
// association fetches and forced refreshes; zero selects 15 seconds.
func NewSessionStore(
	serverAdapter adapter.ServerAdapter,
	snapshots store.SnapshotRepository,
	validator validators.Validator,
	reconciler ConsistencyReconciler,
	metrics *Metrics,
	requestTimeout time.Duration,
	logger *logger.Logger,
) SessionStore {
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return &sessionStore{
		adapter:    serverAdapter,
		snapshots:  snapshots,
		validator:  validator,
		selector:   NewAssociationSelector(),
		reconciler: reconciler,
		metrics:    metrics,
		timeout:    requestTimeout,
		logger:     logger,
		now:        time.Now,
		state:      models.Session{IsLoading: true},
	}
}

// ── state plumbing ──────────────────────────────────────────────────────────

func (s *sessionStore) current() (models.Session, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone(), s.generation
}

// commit stages a copy of the current state, lets mutate edit it and swaps
// it in if gen is still current, then persists the snapshot.
func (s *sessionStore) commit(ctx context.Context, gen uint64, mutate func(*models.Session) error) (models.Session, error) {
	next, _, err := s.apply(ctx, gen, true, false, mutate)
	return next, err
}

// commitVolatile is commit without persistence.
func (s *sessionStore) commitVolatile(ctx context.Context, gen uint64, mutate func(*models.Session) error) (models.Session, error) {
	next, _, err := s.apply(ctx, gen, false, false, mutate)
	return next, err
}

// commitIdentity is commit for a change of identity: on success it starts a
// new generation, so every completion captured before it is discarded. Only
// a successful login does this; a failed one never touches the generation.
func (s *sessionStore) commitIdentity(ctx context.Context, gen uint64, mutate func(*models.Session) error) (models.Session, uint64, error) {
	return s.apply(ctx, gen, true, true, mutate)
}

func (s *sessionStore) apply(ctx context.Context, gen uint64, persist, advance bool, mutate func(*models.Session) error) (models.Session, uint64, error) {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return models.Session{}, 0, ErrSessionSuperseded
	}
	next := s.state.Clone()
	if err := mutate(&next); err != nil {
		s.mu.Unlock()
		return models.Session{}, 0, err
	}
	s.state = next
	if advance {
		s.generation++
	}
	gen = s.generation
	s.mu.Unlock()

	s.adapter.SetToken(next.Token)
	s.metrics.SetAuthenticated(next.IsAuthenticated())

	if persist {
		if err := s.snapshots.Save(ctx, next.Snapshot()); err != nil {
			// the in-memory session stays authoritative for this process
			s.logger.Err(err).Str("func", "sessionStore.apply").Msg("failed to persist session snapshot")
		}
	}

	s.notify(next)
	return next.Clone(), gen, nil
}

// finishLoading clears IsLoading on the current session. A hydrate that
// lost to a login or logout must still end the loading phase.
func (s *sessionStore) finishLoading() {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	if !s.state.IsLoading {
		s.mu.Unlock()
		return
	}
	s.state.IsLoading = false
	next := s.state.Clone()
	s.mu.Unlock()

	s.notify(next)
}

func (s *sessionStore) notify(next models.Session) {
	s.subsMu.Lock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.subsMu.Unlock()

	for _, sub := range subs {
		sub.fn(next.View())
	}
}

// applySelection runs the selector over n.Associations and writes the
// result into n.ActiveAssociation.
func (s *sessionStore) applySelection(n *models.Session, cached *models.Association) SelectionResult {
	result := s.selector.Select(n.Associations, cached)
	switch result.Kind {
	case SelectionSelected, SelectionPending:
		n.ActiveAssociation = result.Association.Clone()
	default:
		n.ActiveAssociation = nil
	}
	return result
}

// ── lifecycle ───────────────────────────────────────────────────────────────

func (s *sessionStore) Hydrate(ctx context.Context) (SelectionResult, error) {
	_, gen := s.current()

	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSnapshotNotFound):
			s.logger.Debug().Str("func", "sessionStore.Hydrate").Msg("no persisted session")
		case errors.Is(err, store.ErrSnapshotCorrupt):
			s.logger.Err(err).Str("func", "sessionStore.Hydrate").Msg("corrupt session snapshot, discarding")
			if clearErr := s.snapshots.Clear(ctx); clearErr != nil {
				s.logger.Err(clearErr).Str("func", "sessionStore.Hydrate").Msg("failed to remove corrupt snapshot")
			}
		default:
			s.logger.Err(err).Str("func", "sessionStore.Hydrate").Msg("failed to read session snapshot, starting unauthenticated")
		}

		_, err = s.commitVolatile(ctx, gen, func(n *models.Session) error {
			*n = models.Session{}
			return nil
		})
		if err != nil {
			s.finishLoading()
		}
		return SelectionResult{Kind: SelectionPending}, err
	}

	if info, tokenErr := utils.ReadTokenInfo(snapshot.Token); tokenErr == nil && info.Expired(s.now()) {
		s.logger.Warn().
			Str("func", "sessionStore.Hydrate").
			Time("expired_at", info.ExpiresAt).
			Msg("persisted token has expired; the backend will reject it")
	}

	var result SelectionResult
	_, err = s.commit(ctx, gen, func(n *models.Session) error {
		*n = models.Session{
			Token:        snapshot.Token,
			User:         snapshot.User.Clone(),
			Associations: models.CloneAssociations(snapshot.Associations),
		}
		result = s.applySelection(n, snapshot.ActiveAssociation)
		return nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "sessionStore.Hydrate").Msg("hydrate completion discarded")
		s.finishLoading()
		return SelectionResult{}, err
	}

	s.logger.Info().
		Str("func", "sessionStore.Hydrate").
		Str("selection", result.Kind.String()).
		Msg("session hydrated")
	return result, nil
}

func (s *sessionStore) Login(ctx context.Context, email, password string) (models.SessionView, error) {
	creds := models.Credentials{Email: strings.TrimSpace(email), Password: password}
	if err := s.validator.Validate(ctx, creds); err != nil {
		authErr := newAuthError(ErrValidation, 0, app.MsgInvalidDataProvided, err)
		s.metrics.ObserveLogin(authErr)
		return models.SessionView{}, authErr
	}

	_, gen := s.current()

	loginCtx, cancel := context.WithTimeout(ctx, s.timeout)
	result, err := s.adapter.Login(loginCtx, creds)
	cancel()
	if err != nil {
		mapped := mapAdapterError(err)
		s.logger.Err(err).Str("func", "sessionStore.Login").Msg("login failed")
		s.metrics.ObserveLogin(mapped)
		return models.SessionView{}, mapped
	}

	next, gen, err := s.commitIdentity(ctx, gen, func(n *models.Session) error {
		user := result.User
		*n = models.Session{
			Token:             result.Token,
			User:              &user,
			ActiveAssociation: result.ActiveAssociation.Clone(),
		}
		if result.AssociationsIncluded {
			n.Associations = nonNil(models.CloneAssociations(result.Associations))
			s.applySelection(n, result.ActiveAssociation)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "sessionStore.Login").Msg("login completion discarded")
		s.metrics.ObserveLogin(err)
		return models.SessionView{}, err
	}

	if !result.AssociationsIncluded {
		list, fetchErr := s.fetchAssociations(ctx)
		if fetchErr != nil {
			// authenticated; the list comes with the next refresh
			s.logger.Err(fetchErr).Str("func", "sessionStore.Login").Msg("failed to fetch associations after login")
			s.metrics.ObserveLogin(nil)
			return next.View(), nil
		}

		next, err = s.commit(ctx, gen, func(n *models.Session) error {
			n.Associations = list
			s.applySelection(n, n.ActiveAssociation)
			return nil
		})
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "sessionStore.Login").Msg("association selection discarded")
			s.metrics.ObserveLogin(err)
			return models.SessionView{}, err
		}
	}

	s.logger.Info().
		Str("func", "sessionStore.Login").
		Str("user_id", next.User.ID).
		Int("associations", len(next.Associations)).
		Bool("first_login_pending", next.User.FirstLoginPending).
		Msg("logged in")
	s.metrics.ObserveLogin(nil)
	return next.View(), nil
}

func (s *sessionStore) Logout(ctx context.Context) {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	s.generation++
	s.state = models.Session{}
	s.mu.Unlock()

	s.adapter.SetToken("")
	s.metrics.SetAuthenticated(false)

	if err := s.snapshots.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "sessionStore.Logout").Msg("failed to remove persisted session")
	}

	s.notify(models.Session{})
	s.logger.Info().Str("func", "sessionStore.Logout").Msg("logged out")
}

// ── user ────────────────────────────────────────────────────────────────────

func (s *sessionStore) UpdateUserAfterPasswordChange(ctx context.Context) error {
	_, gen := s.current()
	_, err := s.commit(ctx, gen, func(n *models.Session) error {
		if !n.IsAuthenticated() {
			return ErrNotAuthenticated
		}
		n.User.FirstLoginPending = false
		return nil
	})
	return err
}

func (s *sessionStore) ChangePassword(ctx context.Context, newPassword string) error {
	sess, _ := s.current()
	if !sess.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	change := models.PasswordChange{NewPassword: newPassword, IsFirstLogin: sess.User.FirstLoginPending}
	if err := s.validator.Validate(ctx, change); err != nil {
		return newAuthError(ErrValidation, 0, app.MsgInvalidDataProvided, err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	result, err := s.adapter.ChangePassword(reqCtx, change)
	cancel()
	if err != nil {
		s.logger.Err(err).Str("func", "sessionStore.ChangePassword").Msg("password change failed")
		return mapAdapterError(err)
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = app.MsgPasswordChangeRejected
		}
		return newAuthError(ErrValidation, 0, msg, nil)
	}

	if err = s.UpdateUserAfterPasswordChange(ctx); err != nil {
		return fmt.Errorf("password changed but session not updated: %w", err)
	}

	s.logger.Info().Str("func", "sessionStore.ChangePassword").Msg("password rotated")
	return nil
}

// ── associations ────────────────────────────────────────────────────────────

func (s *sessionStore) fetchAssociations(ctx context.Context) ([]models.Association, error) {
	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	list, err := s.adapter.GetAssociations(reqCtx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return nonNil(list), nil
}

func (s *sessionStore) RefreshActiveAssociation(ctx context.Context) (SelectionResult, error) {
	sess, gen := s.current()
	if !sess.IsAuthenticated() {
		return SelectionResult{}, ErrNotAuthenticated
	}

	list, err := s.fetchAssociations(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "sessionStore.RefreshActiveAssociation").Msg("failed to fetch associations")
		return SelectionResult{}, err
	}

	var result SelectionResult
	_, err = s.commit(ctx, gen, func(n *models.Session) error {
		n.Associations = list
		result = s.applySelection(n, n.ActiveAssociation)
		return nil
	})
	if err != nil {
		return SelectionResult{}, err
	}
	return result, nil
}

func (s *sessionStore) ForceRefreshActiveAssociation(ctx context.Context) (*models.Association, error) {
	sess, gen := s.current()
	if !sess.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	v, err, _ := s.refreshGroup.Do(forceRefreshKey, func() (any, error) {
		// shared by every joined caller, so no single caller may cancel it
		reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		active, err := s.adapter.GetActiveAssociation(reqCtx)
		if err != nil {
			mapped := mapAdapterError(err)
			s.logger.Err(err).Str("func", "sessionStore.ForceRefreshActiveAssociation").Msg("authoritative lookup failed")
			s.metrics.ObserveForcedRefresh(mapped)
			return nil, mapped
		}

		_, err = s.commit(reqCtx, gen, func(n *models.Session) error {
			n.ActiveAssociation = active.Clone()
			if active != nil && n.Associations != nil {
				n.Associations = upsertAssociation(n.Associations, *active)
			}
			return nil
		})
		if err != nil {
			s.metrics.ObserveForcedRefresh(err)
			return nil, err
		}

		s.metrics.ObserveForcedRefresh(nil)
		return active, nil
	})
	if err != nil {
		return nil, err
	}

	active, _ := v.(*models.Association)
	return active.Clone(), nil
}

func (s *sessionStore) SelectAssociation(ctx context.Context, id string) error {
	_, gen := s.current()
	_, err := s.commit(ctx, gen, func(n *models.Session) error {
		if !n.IsAuthenticated() {
			return ErrNotAuthenticated
		}
		found, ok := models.FindAssociation(n.Associations, id)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownAssociation, id)
		}
		if !found.IsActive() {
			return fmt.Errorf("%w: %s is inactive", ErrUnknownAssociation, id)
		}
		n.ActiveAssociation = found.Clone()
		n.IntegrityFault = nil
		return nil
	})
	return err
}

// ── reconciliation ──────────────────────────────────────────────────────────

func (s *sessionStore) reconcile(sess models.Session) ReconcileOutcome {
	role := sess.User.Role
	if sess.ActiveAssociation != nil {
		role = sess.ActiveAssociation.Role
	}
	return s.reconciler.Reconcile(sess.ActiveAssociation, role)
}

func (s *sessionStore) EnsureConsistent(ctx context.Context) (ReconcileOutcome, error) {
	sess, gen := s.current()
	if !sess.IsAuthenticated() {
		return ReconcileOutcome{}, ErrNotAuthenticated
	}
	if sess.ActiveAssociation == nil {
		s.metrics.ObserveReconcile(reconcileLabelSkipped)
		return ReconcileOutcome{Status: ReconcileSkipped}, nil
	}

	outcome := s.reconcile(sess)
	if outcome.IsConsistent() {
		s.metrics.ObserveReconcile(reconcileLabelConsistent)
		return outcome, s.clearIntegrityFault(ctx, gen)
	}

	s.logger.Warn().
		Str("func", "sessionStore.EnsureConsistent").
		Str("reason", string(outcome.Reason)).
		Msg("active association inconsistent, forcing refresh")

	if _, err := s.ForceRefreshActiveAssociation(ctx); err != nil {
		s.metrics.ObserveReconcile(reconcileLabelRefreshFailed)
		return outcome, err
	}

	sess, gen = s.current()
	outcome = s.reconcile(sess)
	if outcome.IsConsistent() {
		s.logger.Info().Str("func", "sessionStore.EnsureConsistent").Msg("active association repaired by forced refresh")
		s.metrics.ObserveReconcile(reconcileLabelRepaired)
		return outcome, s.clearIntegrityFault(ctx, gen)
	}

	fault := &models.IntegrityFault{
		Reason:     string(outcome.Reason),
		Expected:   outcome.Expected,
		Actual:     outcome.Actual,
		Source:     outcome.Source,
		DetectedAt: s.now(),
	}
	if _, err := s.commitVolatile(ctx, gen, func(n *models.Session) error {
		n.IntegrityFault = fault
		return nil
	}); err != nil {
		return outcome, err
	}

	s.logger.Error().
		Str("func", "sessionStore.EnsureConsistent").
		Str("reason", fault.Reason).
		Str("expected", fault.Expected).
		Str("actual", fault.Actual).
		Str("source", fault.Source).
		Msg("active association still inconsistent after forced refresh")
	s.metrics.ObserveReconcile(reconcileLabelFault)
	return outcome, &InconsistentAssociationError{Outcome: outcome}
}

func (s *sessionStore) clearIntegrityFault(ctx context.Context, gen uint64) error {
	sess, _ := s.current()
	if sess.IntegrityFault == nil {
		return nil
	}
	_, err := s.commitVolatile(ctx, gen, func(n *models.Session) error {
		n.IntegrityFault = nil
		return nil
	})
	return err
}

// ── readers ─────────────────────────────────────────────────────────────────

func (s *sessionStore) View() models.SessionView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.View()
}

func (s *sessionStore) Subscribe(fn func(models.SessionView)) (unsubscribe func()) {
	s.subsMu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			defer s.subsMu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// upsertAssociation replaces the same-id entry of list with a, or appends it.
func upsertAssociation(list []models.Association, a models.Association) []models.Association {
	for i := range list {
		if list[i].ID == a.ID {
			list[i] = *a.Clone()
			return list
		}
	}
	return append(list, *a.Clone())
}

// nonNil turns a nil list into an empty one: an answered fetch means the
// list is known, even when empty.
func nonNil(list []models.Association) []models.Association {
	if list == nil {
		return []models.Association{}
	}
	return list
}
