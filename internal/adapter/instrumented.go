package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/addrway/models"
)

// Outcome labels reported to a [ProviderObserver].
const (
	OutcomeOK          = "ok"
	OutcomeStatus      = "status_error"
	OutcomeUnavailable = "unavailable"
	OutcomeMalformed   = "malformed"
	OutcomeError       = "error"
)

// ProviderObserver records the outcome and latency of provider calls.
type ProviderObserver interface {
	ObserveProviderRequest(provider, outcome string, duration time.Duration)
}

type instrumentedProvider struct {
	inner    GeocodeProvider
	observer ProviderObserver
}

// WithObserver decorates p so that every Search is reported to observer.
func WithObserver(p GeocodeProvider, observer ProviderObserver) GeocodeProvider {
	return &instrumentedProvider{inner: p, observer: observer}
}

func (i *instrumentedProvider) Name() string {
	return i.inner.Name()
}

func (i *instrumentedProvider) Search(ctx context.Context, address string) ([]models.GeocodeResult, error) {
	start := time.Now()
	results, err := i.inner.Search(ctx, address)
	i.observer.ObserveProviderRequest(i.inner.Name(), outcomeOf(err), time.Since(start))

	return results, err
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrProviderStatus):
		return OutcomeStatus
	case errors.Is(err, ErrProviderUnavailable):
		return OutcomeUnavailable
	case errors.Is(err, ErrMalformedPayload):
		return OutcomeMalformed
	default:
		return OutcomeError
	}
}
