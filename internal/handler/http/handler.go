package http

import (
	"github.com/MKhiriev/addrway/internal/config"
	"github.com/MKhiriev/addrway/internal/logger"
	"github.com/MKhiriev/addrway/internal/metrics"
	"github.com/MKhiriev/addrway/internal/service"
	"github.com/MKhiriev/addrway/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	limiter  *clientRateLimiter
	traceIDs *utils.TraceIDGenerator

	cfg config.Server

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. m may be nil, in which case no metrics
// are recorded and /metrics is not served.
func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		metrics:  m,
		traceIDs: utils.NewTraceIDGenerator(),
		cfg:      cfg,
		logger:   logger,
	}

	if cfg.RateLimitEnabled() {
		h.limiter = newClientRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)
	}

	logger.Info().
		Bool("api_key_required", cfg.APIKey != "").
		Bool("rate_limit_enabled", h.limiter != nil).
		Bool("proxy_headers_trusted", cfg.ProxyHeadersTrusted()).
		Str("allowed_origin", cfg.AllowedOrigin).
		Msg("http handler created")

	return h
}
