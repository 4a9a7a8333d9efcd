package handler

import (
	"github.com/MKhiriev/addrway/internal/config"
	"github.com/MKhiriev/addrway/internal/handler/http"
	"github.com/MKhiriev/addrway/internal/logger"
	"github.com/MKhiriev/addrway/internal/metrics"
	"github.com/MKhiriev/addrway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, m, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
