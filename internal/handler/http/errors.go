// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Their messages are
// returned to the caller verbatim, so they must not carry internal detail.
var (
	// ErrInvalidAPIKey is returned by the API-key middleware when an API key
	// is configured and the x-api-key header does not match it.
	ErrInvalidAPIKey = errors.New("unauthorized")

	// ErrTooManyRequests is returned when a client exceeds its rate limit.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrRouteNotFound is returned for paths no route is registered for.
	ErrRouteNotFound = errors.New("not found")

	// ErrMethodNotAllowed is returned when the path exists but does not
	// handle the request method.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrRequestBodyTooLarge is returned when the request body exceeds
	// maxRequestBodyBytes.
	ErrRequestBodyTooLarge = errors.New("request body too large")

	// errPanic stands in for a recovered panic; it maps to a generic 500.
	errPanic = errors.New("panic while handling request")
)
