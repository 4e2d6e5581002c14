package service

import (
	"github.com/MKhiriev/go-school-link/internal/adapter"
	"github.com/MKhiriev/go-school-link/internal/config"
	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/internal/store"
	"github.com/MKhiriev/go-school-link/internal/validators"
)

type ClientServices struct {
	Metrics      *Metrics
	Reconciler   ConsistencyReconciler
	SessionStore SessionStore
	Gate         *FirstLoginGate
	ReconcileJob ReconcileJob
}

// NewClientServices wires the session services. The first-login gate is
// subscribed to the store so it observes every commit.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	metrics := NewMetrics()
	reconciler := NewConsistencyReconciler(logger)
	sessionStore := NewSessionStore(
		serverAdapter,
		storages.SnapshotRepository,
		validators.NewSessionValidator(),
		reconciler,
		metrics,
		cfg.Adapter.RequestTimeout,
		logger,
	)

	gate := NewFirstLoginGate(logger)
	sessionStore.Subscribe(gate.Observe)

	return &ClientServices{
		Metrics:      metrics,
		Reconciler:   reconciler,
		SessionStore: sessionStore,
		Gate:         gate,
		ReconcileJob: NewReconcileJob(sessionStore, logger),
	}
}
