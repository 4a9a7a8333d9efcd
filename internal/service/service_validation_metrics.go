package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/addrway/internal/adapter"
	"github.com/MKhiriev/addrway/internal/metrics"
	"github.com/MKhiriev/addrway/models"
)

// MetricsValidationService reports the outcome of every validation to a
// ValidationObserver.
type MetricsValidationService struct {
	inner    ValidationService
	observer ValidationObserver
}

func NewMetricsValidationService(observer ValidationObserver) ValidationServiceWrapper {
	return &MetricsValidationService{observer: observer}
}

func (m *MetricsValidationService) Validate(ctx context.Context, address string) (models.ValidationResponse, error) {
	resp, err := m.inner.Validate(ctx, address)
	m.observer.ObserveValidation(ValidationOutcome(resp, err), resp.Confidence)

	return resp, err
}

func (m *MetricsValidationService) Wrap(wrapped ValidationService) ValidationService {
	m.inner = wrapped
	return m
}

// ValidationOutcome classifies a validation result into one of the
// metrics.Outcome* labels.
func ValidationOutcome(resp models.ValidationResponse, err error) string {
	switch {
	case err == nil && !isMatch(resp):
		return metrics.OutcomeNoMatch
	case err == nil && resp.Valid:
		return metrics.OutcomeValid
	case err == nil:
		return metrics.OutcomeInvalid
	case IsBadRequest(err):
		return metrics.OutcomeBadRequest
	case errors.Is(err, adapter.ErrProviderStatus), errors.Is(err, adapter.ErrProviderUnavailable):
		return metrics.OutcomeProviderError
	default:
		return metrics.OutcomeError
	}
}

// IsBadRequest reports whether err was caused by the caller's input.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrAddressRequired) ||
		errors.Is(err, ErrAddressNotString) ||
		errors.Is(err, ErrAddressTooLong) ||
		errors.Is(err, ErrInvalidJSON)
}

func isMatch(resp models.ValidationResponse) bool {
	return resp.Normalized != "" || !resp.Components.IsEmpty() || resp.Lat.Valid || resp.Lon.Valid
}
