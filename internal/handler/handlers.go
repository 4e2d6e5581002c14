package handler

import (
	"github.com/MKhiriev/go-school-link/internal/config"
	"github.com/MKhiriev/go-school-link/internal/handler/http"
	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/internal/service"
	"github.com/MKhiriev/go-school-link/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.ClientServices, buildInfo models.AppBuildInfo, cfg config.ClientApp, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.MetricsAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, buildInfo, logger)}, nil
}
