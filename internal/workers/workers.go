package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-school-link/internal/config"
	"github.com/MKhiriev/go-school-link/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewClientWorkers returns the watch daemon's workers.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers) *Workers {
	return NewWorkers(NewReconcileWorker(services.ReconcileJob, cfg.ReconcileInterval))
}

// Run starts the workers in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type reconcileWorker struct {
	job      service.ReconcileJob
	interval time.Duration
}

// NewReconcileWorker runs job every interval.
func NewReconcileWorker(job service.ReconcileJob, interval time.Duration) Worker {
	return &reconcileWorker{job: job, interval: interval}
}

func (r *reconcileWorker) Run(ctx context.Context) {
	r.job.Start(ctx, r.interval)
}

func (r *reconcileWorker) Stop() {
	r.job.Stop()
}
