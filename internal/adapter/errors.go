package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderStatus is returned when the provider answers with a
	// non-success HTTP status.
	ErrProviderStatus = errors.New("geocoding provider returned non-success status")

	// ErrProviderUnavailable is returned when the provider cannot be
	// reached or does not answer in time.
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")

	// ErrMalformedPayload is returned when a success response cannot be
	// decoded into search results.
	ErrMalformedPayload = errors.New("malformed geocoding provider payload")

	// ErrInvalidProviderConfig is returned by constructors given an unusable
	// configuration.
	ErrInvalidProviderConfig = errors.New("invalid geocoding provider configuration")
)

// StatusError carries the HTTP status of a failed provider call. It wraps
// [ErrProviderStatus].
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: http %d", ErrProviderStatus, e.StatusCode)
	}
	return fmt.Sprintf("%s: http %d: %s", ErrProviderStatus, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrProviderStatus
}
