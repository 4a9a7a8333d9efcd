package service

import (
	"fmt"

	"github.com/MKhiriev/addrway/internal/adapter"
	"github.com/MKhiriev/addrway/internal/config"
	"github.com/MKhiriev/addrway/internal/logger"
)

type Services struct {
	ValidationService ValidationService
	AppInfoService    AppInfoService
}

// NewServices assembles the service layer. The validation service is
// decorated, from the outside in, with logging, metrics and input
// validation; observer may be nil to skip the metrics decorator.
func NewServices(provider adapter.GeocodeProvider, cfg config.StructuredConfig, observer ValidationObserver, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	wrappers := []ValidationServiceWrapper{NewInputValidationService()}
	if observer != nil {
		wrappers = append(wrappers, NewMetricsValidationService(observer))
	}
	wrappers = append(wrappers, NewLoggingValidationService())

	return &Services{
		ValidationService: Wrap(NewValidationService(provider, cfg.Scoring, logger), wrappers...),
		AppInfoService:    appInfoService,
	}, nil
}

// Wrap applies wrappers to svc in order, so the last wrapper is outermost.
func Wrap(svc ValidationService, wrappers ...ValidationServiceWrapper) ValidationService {
	for _, w := range wrappers {
		svc = w.Wrap(svc)
	}
	return svc
}
