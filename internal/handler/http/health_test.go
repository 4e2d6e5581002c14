package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-school-link/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	detected := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	active := &models.Association{ID: "a1"}

	tests := []struct {
		name       string
		view       models.SessionView
		wantCode   int
		wantStatus string
		check      func(t *testing.T, got healthResponse)
	}{
		{
			name:       "logged out is healthy",
			view:       models.SessionView{},
			wantCode:   http.StatusOK,
			wantStatus: healthOK,
			check: func(t *testing.T, got healthResponse) {
				assert.False(t, got.Authenticated)
				assert.Nil(t, got.Associations)
			},
		},
		{
			name:       "loading",
			view:       models.SessionView{IsLoading: true},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: healthLoading,
		},
		{
			name: "authenticated with active association",
			view: models.SessionView{
				IsAuthenticated:   true,
				User:              &models.User{ID: "u1"},
				Associations:      []models.Association{*active},
				ActiveAssociation: active,
			},
			wantCode:   http.StatusOK,
			wantStatus: healthOK,
			check: func(t *testing.T, got healthResponse) {
				assert.True(t, got.Authenticated)
				assert.Equal(t, "a1", got.ActiveAssociation)
				require.NotNil(t, got.Associations)
				assert.Equal(t, 1, *got.Associations)
			},
		},
		{
			name: "integrity fault",
			view: models.SessionView{
				IsAuthenticated: true,
				User:            &models.User{ID: "u1"},
				IntegrityFault: &models.IntegrityFault{
					Reason: "divergent-student", Expected: "S1", Actual: "S2", Source: "legacy-selection", DetectedAt: detected,
				},
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: healthIntegrityFault,
			check: func(t *testing.T, got healthResponse) {
				require.NotNil(t, got.IntegrityFault)
				assert.Equal(t, "S2", got.IntegrityFault.Actual)
				assert.True(t, detected.Equal(got.IntegrityFault.DetectedAt))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, sessionStore := newTestHandler(t)
			sessionStore.EXPECT().View().Return(tt.view)

			rr := httptest.NewRecorder()
			h.health(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var got healthResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, "normal", got.Gate)
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestHealth_ReportsGate(t *testing.T) {
	h, sessionStore := newTestHandler(t)
	view := models.SessionView{IsAuthenticated: true, User: &models.User{ID: "u1", FirstLoginPending: true}}
	h.services.Gate.Observe(view)
	sessionStore.EXPECT().View().Return(view)

	rr := httptest.NewRecorder()
	h.health(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Contains(t, rr.Body.String(), `"gate":"must-change-password"`)
}
