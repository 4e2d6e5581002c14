package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySessionStore counts the calls the reconcile job makes.
type spySessionStore struct {
	SessionStore

	authenticated atomic.Bool
	refreshes     atomic.Int64
	reconciles    atomic.Int64
	refreshErr    error
	reconcileErr  error
}

func (s *spySessionStore) View() models.SessionView {
	return models.SessionView{IsAuthenticated: s.authenticated.Load()}
}

func (s *spySessionStore) RefreshActiveAssociation(context.Context) (SelectionResult, error) {
	s.refreshes.Add(1)
	return SelectionResult{Kind: SelectionSelected}, s.refreshErr
}

func (s *spySessionStore) EnsureConsistent(context.Context) (ReconcileOutcome, error) {
	s.reconciles.Add(1)
	return ReconcileOutcome{}, s.reconcileErr
}

func newSpySessionStore(authenticated bool) *spySessionStore {
	s := &spySessionStore{}
	s.authenticated.Store(authenticated)
	return s
}

func TestNewReconcileJob_ReturnsInterface(t *testing.T) {
	job := NewReconcileJob(newSpySessionStore(true), logger.Nop())
	require.NotNil(t, job)
}

func TestReconcileJob_Start_RefreshesAndReconciles(t *testing.T) {
	spy := newSpySessionStore(true)
	job := NewReconcileJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.refreshes.Load(), int64(3))
	assert.Equal(t, spy.refreshes.Load(), spy.reconciles.Load())
}

func TestReconcileJob_SkipsWhenUnauthenticated(t *testing.T) {
	spy := newSpySessionStore(false)
	job := NewReconcileJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.refreshes.Load())
	assert.Zero(t, spy.reconciles.Load())
}

func TestReconcileJob_ErrorsDoNotStopJob(t *testing.T) {
	spy := newSpySessionStore(true)
	spy.refreshErr = assert.AnError
	spy.reconcileErr = ErrInconsistentAssociation
	job := NewReconcileJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.reconciles.Load(), int64(3))
}

func TestReconcileJob_Stop_StopsGoroutine(t *testing.T) {
	spy := newSpySessionStore(true)
	job := NewReconcileJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	after := spy.reconciles.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, spy.reconciles.Load())
}

func TestReconcileJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewReconcileJob(newSpySessionStore(true), logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestReconcileJob_Start_DefaultInterval(t *testing.T) {
	spy := newSpySessionStore(true)
	job := NewReconcileJob(spy, logger.Nop())

	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.refreshes.Load())
}

func TestReconcileJob_ContextCancel_StopsJob(t *testing.T) {
	spy := newSpySessionStore(true)
	job := NewReconcileJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}
