package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request carrying a logger that writes to buf.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			path:            "/healthz",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/healthz"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:             "GET 503",
			path:             "/healthz",
			handlerStatus:    http.StatusServiceUnavailable,
			handlerResponse:  "{}",
			checkLogContains: []string{`"status":503`, `"size":2`},
		},
		{
			name:             "no status written defaults to 200",
			path:             "/version",
			checkLogContains: []string{`"status":200`, `"size":0`},
		},
	}

	h, _ := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, tt.path, &buf))

			logged := buf.String()
			for _, want := range tt.checkLogContains {
				assert.Contains(t, logged, want)
			}
			assert.Equal(t, 1, strings.Count(logged, "\n"), "exactly one access log line")
		})
	}
}

func TestWithLogging_PassesResponseThrough(t *testing.T) {
	h, _ := newTestHandler(t)
	var buf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Custom", "1")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body"))
	})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/x", &buf))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "body", rr.Body.String())
	assert.Equal(t, "1", rr.Header().Get("X-Custom"))
}
