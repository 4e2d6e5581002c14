package service

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the session Prometheus instrumentation on a private
// registry. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	logins          *prometheus.CounterVec
	forcedRefreshes *prometheus.CounterVec
	reconciles      *prometheus.CounterVec
	integrityFaults prometheus.Counter
	authenticated   prometheus.Gauge
}

// NewMetrics registers the session collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	logins := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_logins_total",
		Help: "Login attempts by result",
	}, []string{"result"})

	forcedRefreshes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_forced_refreshes_total",
		Help: "Authoritative active association lookups by result",
	}, []string{"result"})

	reconciles := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_reconciliations_total",
		Help: "Consistency reconciliations by outcome",
	}, []string{"outcome"})

	integrityFaults := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "session_integrity_faults_total",
		Help: "Active associations left inconsistent after a forced refresh",
	})

	authenticated := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "session_authenticated",
		Help: "1 while the session is authenticated",
	})

	registry.MustRegister(logins, forcedRefreshes, reconciles, integrityFaults, authenticated)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		logins:          logins,
		forcedRefreshes: forcedRefreshes,
		reconciles:      reconciles,
		integrityFaults: integrityFaults,
		authenticated:   authenticated,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

func (m *Metrics) ObserveLogin(err error) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(resultLabel(err)).Inc()
}

func (m *Metrics) ObserveForcedRefresh(err error) {
	if m == nil {
		return
	}
	m.forcedRefreshes.WithLabelValues(resultLabel(err)).Inc()
}

// ObserveReconcile records one EnsureConsistent outcome: "consistent",
// "repaired", "fault", "skipped" or "refresh_failed".
func (m *Metrics) ObserveReconcile(outcome string) {
	if m == nil {
		return
	}
	m.reconciles.WithLabelValues(outcome).Inc()
	if outcome == reconcileLabelFault {
		m.integrityFaults.Inc()
	}
}

func (m *Metrics) SetAuthenticated(authenticated bool) {
	if m == nil {
		return
	}
	if authenticated {
		m.authenticated.Set(1)
		return
	}
	m.authenticated.Set(0)
}

const (
	reconcileLabelConsistent    = "consistent"
	reconcileLabelRepaired      = "repaired"
	reconcileLabelFault         = "fault"
	reconcileLabelSkipped       = "skipped"
	reconcileLabelRefreshFailed = "refresh_failed"
)

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrNetworkUnreachable):
		return "network"
	case errors.Is(err, ErrSessionSuperseded):
		return "superseded"
	case errors.Is(err, ErrNotAuthenticated):
		return "not_authenticated"
	default:
		return "server_fault"
	}
}
