// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// external geocoding provider.
//
// The primary abstraction is [GeocodeProvider], which decouples the service
// layer from the provider's wire protocol so that scoring and response
// shaping can be tested with deterministic fixtures. The package ships a
// Nominatim implementation ([NewNominatimProvider]) built on resty.
//
// Transport failures and non-2xx responses are mapped to the sentinel values
// in errors.go so that callers can use [errors.Is] regardless of transport
// details (e.g. [ErrProviderStatus] for a non-success HTTP status).
package adapter

import (
	"context"

	"github.com/MKhiriev/addrway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/geocode_provider_mock.go -package=mock

// GeocodeProvider resolves a free-form address into structured matches.
type GeocodeProvider interface {
	// Name identifies the provider; it is reported as the response source.
	Name() string

	// Search returns the provider's matches for address, best first. An
	// empty slice with a nil error means nothing matched. Implementations
	// issue exactly one outbound request per call and never retry.
	Search(ctx context.Context, address string) ([]models.GeocodeResult, error)
}
