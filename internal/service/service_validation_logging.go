package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/addrway/internal/logger"
	"github.com/MKhiriev/addrway/models"
)

// LoggingValidationService logs every validation with the request-scoped
// logger. The address itself is not logged, only its length.
type LoggingValidationService struct {
	inner ValidationService
}

func NewLoggingValidationService() ValidationServiceWrapper {
	return &LoggingValidationService{}
}

func (l *LoggingValidationService) Validate(ctx context.Context, address string) (models.ValidationResponse, error) {
	log := logger.FromContext(ctx)

	start := time.Now()
	resp, err := l.inner.Validate(ctx, address)
	duration := time.Since(start)

	if err != nil {
		log.Warn().
			Err(err).
			Int("address_length", utf8.RuneCountInString(address)).
			Dur("duration", duration).
			Msg("address validation failed")
		return resp, err
	}

	log.Info().
		Bool("valid", resp.Valid).
		Int("confidence", resp.Confidence).
		Str("source", resp.Source).
		Bool("matched", isMatch(resp)).
		Dur("duration", duration).
		Msg("address validated")

	return resp, nil
}

func (l *LoggingValidationService) Wrap(wrapped ValidationService) ValidationService {
	l.inner = wrapped
	return l
}
