// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// addrway handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies in place of server-side error text, which is only
// ever logged.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve, including an
	// unreachable or misbehaving geocoding provider.
	MsgInternalServerError = "internal server error"

	// MsgProviderError is returned when the geocoding provider answered
	// with a non-success HTTP status.
	MsgProviderError = "geocoding provider returned an error"
)
