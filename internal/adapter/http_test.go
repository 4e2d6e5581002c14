// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-school-link/internal/config"
	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/internal/utils"
	"github.com/MKhiriev/go-school-link/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func newBackend(t *testing.T, register func(r chi.Router)) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

const associationS1 = `{
	"id": 11,
	"institution": {"id": "inst-1", "name": "North School", "legalName": "North School Ltd"},
	"division": {"id": "d-1", "name": "Year 5"},
	"role": {"id": 3, "name": "Primary-Tutor"},
	"student": {"id": "S1", "firstName": "Ada", "lastName": "Lovelace"},
	"status": "active"
}`

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Post(loginPath, func(w http.ResponseWriter, r *http.Request) {
			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "parent@example.com", req["email"])
			assert.Equal(t, "secret", req["password"])
			assert.NotEmpty(t, r.Header.Get(requestIDHeader))

			_, _ = w.Write([]byte(`{
				"token": "tok-1",
				"user": {"id": 7, "displayName": "Pat", "email": "parent@example.com",
					"role": {"id": 3, "name": "primary-tutor"}, "isFirstLogin": "1"},
				"associations": [` + associationS1 + `],
				"activeAssociation": ` + associationS1 + `
			}`))
		})
	})

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Email: "parent@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.Token)
	assert.Equal(t, "7", got.User.ID)
	assert.True(t, got.User.FirstLoginPending)
	assert.Equal(t, models.RolePrimaryTutor, got.User.Role.Name)
	assert.True(t, got.AssociationsIncluded)
	require.Len(t, got.Associations, 1)
	assert.Equal(t, "11", got.Associations[0].ID)
	assert.Equal(t, models.AssociationActive, got.Associations[0].Status)
	require.NotNil(t, got.ActiveAssociation)
	sid, ok := got.ActiveAssociation.StudentID()
	assert.True(t, ok)
	assert.Equal(t, "S1", sid)
}

func TestLogin_TokenFromAuthorizationHeader(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Post(loginPath, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Authorization", "Bearer header-token")
			_, _ = w.Write([]byte(`{"user": {"id": "u1", "role": {"name": "coordinator"}}}`))
		})
	})

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Email: "c@example.com", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "header-token", got.Token)
	assert.False(t, got.AssociationsIncluded)
	assert.Nil(t, got.ActiveAssociation)
}

func TestLogin_ForwardsRequestIDFromContext(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Post(loginPath, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "req-42", r.Header.Get(requestIDHeader))
			_, _ = w.Write([]byte(`{"token": "t", "user": {"id": "u1"}}`))
		})
	})

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(utils.WithRequestID(context.Background(), "req-42"), models.Credentials{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)
}

func TestLogin_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unprocessable", http.StatusUnprocessableEntity, ErrUnprocessable},
		{"bad gateway", http.StatusBadGateway, ErrServer},
		{"teapot", http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newBackend(t, func(r chi.Router) {
				r.Post(loginPath, func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte("nope"))
				})
			})

			a := newTestAdapter(t, srv.URL)
			_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestLogin_ConflictingFirstLoginFlags(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Post(loginPath, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"token": "t", "user": {"id": "u1", "firstLoginPending": true, "isFirstLogin": 0}}`))
		})
	})

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})

	assert.ErrorIs(t, err, ErrDecode)
}

func TestLogin_MissingToken(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Post(loginPath, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"user": {"id": "u1"}}`))
		})
	})

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})

	assert.ErrorIs(t, err, ErrDecode)
}

func TestLogin_NetworkUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestLogin_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := newBackend(t, func(r chi.Router) {
		r.Post(loginPath, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
	})
	defer close(release)

	a := newTestAdapter(t, srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := a.Login(ctx, models.Credentials{Email: "a@b.c", Password: "x"})

	assert.ErrorIs(t, err, ErrTimeout)
}

// ── Associations ────────────────────────────────────────────────────────────

func TestGetAssociations_Success(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Get(associationsPath, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`[` + associationS1 + `, {"id": "12", "institution": {"id": 2}, "role": {"name": "coordinator"}, "status": "inactive", "student": {"firstName": "ghost"}}]`))
		})
	})

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok-1")
	got, err := a.GetAssociations(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "d-1", got[0].Division.ID)
	assert.Equal(t, "12", got[1].ID)
	assert.Equal(t, models.AssociationInactive, got[1].Status)
	assert.Nil(t, got[1].Student)
	assert.Nil(t, got[1].Division)
}

func TestGetAssociations_UnknownStatus(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Get(associationsPath, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id": "1", "status": "suspended"}]`))
		})
	})

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetAssociations(context.Background())

	assert.ErrorIs(t, err, ErrDecode)
}

func TestGetAssociations_Unauthorized(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Get(associationsPath, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	})

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetAssociations(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetActiveAssociation(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantNil bool
		wantID  string
	}{
		{name: "no content", status: http.StatusNoContent, wantNil: true},
		{name: "null body", status: http.StatusOK, body: "null", wantNil: true},
		{name: "empty body", status: http.StatusOK, body: "", wantNil: true},
		{name: "association", status: http.StatusOK, body: associationS1, wantID: "11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newBackend(t, func(r chi.Router) {
				r.Get(activeAssociationPath, func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
				})
			})

			a := newTestAdapter(t, srv.URL)
			got, err := a.GetActiveAssociation(context.Background())

			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

// ── Change password ─────────────────────────────────────────────────────────

func TestChangePassword_Success(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Post(changePasswordPath, func(w http.ResponseWriter, r *http.Request) {
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "new-password", req["newPassword"])
			assert.Equal(t, true, req["isFirstLogin"])
			_, _ = w.Write([]byte(`{"success": "true", "message": "ok"}`))
		})
	})

	a := newTestAdapter(t, srv.URL)
	got, err := a.ChangePassword(context.Background(), models.PasswordChange{NewPassword: "new-password", IsFirstLogin: true})

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "ok", got.Message)
}

func TestChangePassword_AmbiguousSuccess(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Post(changePasswordPath, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success": "maybe"}`))
		})
	})

	a := newTestAdapter(t, srv.URL)
	_, err := a.ChangePassword(context.Background(), models.PasswordChange{NewPassword: "new-password"})

	assert.ErrorIs(t, err, ErrDecode)
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func TestSetToken(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080")
	assert.Empty(t, a.Token())
	a.SetToken("  abc ")
	assert.Equal(t, "abc", a.Token())
	a.SetToken("")
	assert.Empty(t, a.Token())
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://api.example.com/", want: "https://api.example.com"},
		{in: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
