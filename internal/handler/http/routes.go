package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.cfg.ProxyHeadersTrusted() {
		router.Use(middleware.RealIP)
	}
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRecover,
		h.withCORS(),
		h.withRequestTimeout,
	)

	router.Get("/", h.getServiceInfo)
	router.Get("/health", h.health)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	// validation is rate limited and, when configured, API-key gated
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit, h.withAPIKey)
		r.Post("/validate", h.validate)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
