package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid service identity settings
	// (for example, an empty service name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, a rate limit without a window).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidGeocoderConfigs indicates invalid geocoding provider
	// settings (for example, a base URL without a host or no User-Agent).
	ErrInvalidGeocoderConfigs = errors.New("invalid geocoder configuration")
)
