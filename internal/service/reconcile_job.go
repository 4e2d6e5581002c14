package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-school-link/internal/logger"
)

const defaultReconcileInterval = 5 * time.Minute

type reconcileJob struct {
	store  SessionStore
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReconcileJob creates a job that refreshes the association list and
// reconciles the active association on a ticker. The job is idle until
// Start is called.
func NewReconcileJob(store SessionStore, logger *logger.Logger) ReconcileJob {
	return &reconcileJob{store: store, logger: logger}
}

// Start implements ReconcileJob. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *reconcileJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultReconcileInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *reconcileJob) tick(ctx context.Context) {
	if !j.store.View().IsAuthenticated {
		return
	}

	result, err := j.store.RefreshActiveAssociation(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "reconcileJob.tick").Msg("association refresh failed")
	} else {
		j.logger.Debug().Str("func", "reconcileJob.tick").Str("selection", result.Kind.String()).Msg("associations refreshed")
	}

	outcome, err := j.store.EnsureConsistent(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "reconcileJob.tick").Msg("reconciliation failed")
		return
	}
	j.logger.Debug().Str("func", "reconcileJob.tick").Str("status", outcome.Status.String()).Msg("reconciled")
}

// Stop implements ReconcileJob. Safe to call when the job is not running.
func (j *reconcileJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
