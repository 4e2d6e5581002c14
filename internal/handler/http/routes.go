package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID, h.withLogging)

	router.Get("/metrics", h.metrics)
	router.Get("/healthz", h.health)
	router.Get("/version", h.getClientVersion)

	return router
}
