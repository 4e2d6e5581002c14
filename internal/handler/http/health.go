package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/internal/service"
)

// Health statuses reported by /healthz.
const (
	healthOK             = "ok"
	healthLoading        = "loading"
	healthIntegrityFault = "integrity_fault"
)

type healthResponse struct {
	Status            string       `json:"status"`
	Authenticated     bool         `json:"authenticated"`
	Gate              string       `json:"gate"`
	ActiveAssociation string       `json:"active_association,omitempty"`
	Associations      *int         `json:"associations,omitempty"`
	IntegrityFault    *faultReport `json:"integrity_fault,omitempty"`
}

type faultReport struct {
	Reason     string    `json:"reason"`
	Expected   string    `json:"expected,omitempty"`
	Actual     string    `json:"actual,omitempty"`
	Source     string    `json:"source,omitempty"`
	DetectedAt time.Time `json:"detected_at"`
}

// health reports 503 while the session is loading or an integrity fault is
// recorded, 200 otherwise. Being logged out is healthy.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	view := h.services.SessionStore.View()

	resp := healthResponse{
		Status:        healthOK,
		Authenticated: view.IsAuthenticated,
		Gate:          service.GateNormal.String(),
	}
	if h.services.Gate != nil {
		resp.Gate = h.services.Gate.State().String()
	}
	if view.ActiveAssociation != nil {
		resp.ActiveAssociation = view.ActiveAssociation.ID
	}
	if view.Associations != nil {
		n := len(view.Associations)
		resp.Associations = &n
	}

	code := http.StatusOK
	switch {
	case view.IntegrityFault != nil:
		f := view.IntegrityFault
		resp.Status = healthIntegrityFault
		resp.IntegrityFault = &faultReport{
			Reason:     f.Reason,
			Expected:   f.Expected,
			Actual:     f.Actual,
			Source:     f.Source,
			DetectedAt: f.DetectedAt,
		}
		code = http.StatusServiceUnavailable
	case view.IsLoading:
		resp.Status = healthLoading
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("failed to encode health response")
	}
}

func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	h.services.Metrics.Handler().ServeHTTP(w, r)
}
