package http

import (
	"testing"

	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/internal/mock"
	"github.com/MKhiriev/go-school-link/internal/service"
	"github.com/MKhiriev/go-school-link/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// newTestHandler builds a Handler over a mocked session store.
func newTestHandler(t *testing.T) (*Handler, *mock.MockSessionStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessionStore := mock.NewMockSessionStore(ctrl)

	services := &service.ClientServices{
		Metrics:      service.NewMetrics(),
		SessionStore: sessionStore,
		Gate:         service.NewFirstLoginGate(logger.Nop()),
	}
	return NewHandler(services, models.NewAppBuildInfo("1.4.2", "2026-03-01", "abc123"), logger.Nop()), sessionStore
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	services := &service.ClientServices{}
	info := models.NewAppBuildInfo("v", "d", "c")

	h := NewHandler(services, info, logger.Nop())

	assert.Same(t, services, h.services)
	assert.Equal(t, info, h.buildInfo)
	assert.NotNil(t, h.logger)
}
