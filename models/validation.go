// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ValidateRequest is the body of POST /validate.
type ValidateRequest struct {
	// Address is the raw, free-form postal address supplied by the caller.
	Address string `json:"address" validate:"required,max=512"`
}

// ValidationResponse is the result of validating a single address.
// It is built per request and never stored.
type ValidationResponse struct {
	// Valid reports whether every required address component was resolved.
	// It depends only on component presence, never on Confidence.
	Valid bool `json:"valid"`

	// Confidence is a deliverability score in [0, 100].
	Confidence int `json:"confidence"`

	// Normalized is the provider's display rendering of the best match, or
	// an empty string when nothing matched.
	Normalized string `json:"normalized"`

	// Components are the structured parts of the best match. Always present
	// in the JSON output, as an empty object when nothing matched.
	Components AddressComponents `json:"components"`

	// Lat and Lon are the coordinates of the best match, null when unknown.
	Lat Coordinate `json:"lat"`
	Lon Coordinate `json:"lon"`

	// Source names the geocoding provider that produced the match.
	Source string `json:"source"`
}

// NoMatchResponse is the response for an address the provider could not
// resolve at all.
func NoMatchResponse(source string) ValidationResponse {
	return ValidationResponse{
		Valid:      false,
		Confidence: 0,
		Normalized: "",
		Components: AddressComponents{},
		Source:     source,
	}
}
