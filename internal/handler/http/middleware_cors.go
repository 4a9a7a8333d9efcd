package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

const (
	apiKeyHeader = "X-API-Key"

	corsMaxAgeSeconds = 300
)

// withCORS allows the configured origin to call every route. An empty
// AllowedOrigin allows any origin.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := []string{"*"}
	if h.cfg.AllowedOrigin != "" {
		origins = []string{h.cfg.AllowedOrigin}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", apiKeyHeader, traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         corsMaxAgeSeconds,
	})
}
