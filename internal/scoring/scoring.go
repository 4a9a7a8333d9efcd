// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scoring derives a deliverability confidence and a validity flag from
// the structured address components returned by a geocoder.
//
// Scoring is component-weighted: every resolved component adds a fixed number
// of points, and an address is valid when house number, road, locality and
// state were all resolved. Validity never depends on the confidence value.
package scoring

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/addrway/models"
)

// Default component weights. They sum to MaxConfidence.
const (
	WeightHouseNumber = 30
	WeightRoad        = 25
	WeightCity        = 20
	WeightState       = 15
	WeightPostcode    = 10

	// PostcodeMismatchPenalty is subtracted when the query names a postal
	// code that differs from the one the provider resolved.
	PostcodeMismatchPenalty = 25

	MinConfidence = 0
	MaxConfidence = 100
)

// postcodePattern matches a US ZIP or ZIP+4 token; only the first five digits
// are captured.
var postcodePattern = regexp.MustCompile(`\b(\d{5})(?:-\d{4})?\b`)

// Weights assigns points to each scored component.
type Weights struct {
	HouseNumber int
	Road        int
	City        int
	State       int
	Postcode    int
}

// Policy is a component-weighted scoring policy.
type Policy struct {
	Weights Weights

	// RequirePostcode makes a resolved postal code part of the validity rule.
	RequirePostcode bool

	// MismatchPenalty is applied when the query's postal code disagrees with
	// the provider's. Zero disables the check.
	MismatchPenalty int
}

// Result is the outcome of scoring one set of components.
type Result struct {
	Confidence int
	Valid      bool
}

// DefaultPolicy returns the 30/25/20/15/10 policy with an optional postal
// code and the standard mismatch penalty.
func DefaultPolicy() Policy {
	return Policy{
		Weights: Weights{
			HouseNumber: WeightHouseNumber,
			Road:        WeightRoad,
			City:        WeightCity,
			State:       WeightState,
			Postcode:    WeightPostcode,
		},
		MismatchPenalty: PostcodeMismatchPenalty,
	}
}

// Score computes confidence and validity for c. query is the raw address the
// caller submitted and may be empty.
func (p Policy) Score(c models.AddressComponents, query string) Result {
	hasHouse := present(c.HouseNumber)
	hasRoad := present(c.Road)
	hasCity := present(c.CityEquivalent())
	hasState := present(c.State)
	hasPostcode := present(c.Postcode)

	confidence := 0
	if hasHouse {
		confidence += p.Weights.HouseNumber
	}
	if hasRoad {
		confidence += p.Weights.Road
	}
	if hasCity {
		confidence += p.Weights.City
	}
	if hasState {
		confidence += p.Weights.State
	}
	if hasPostcode {
		confidence += p.Weights.Postcode
	}

	if p.MismatchPenalty > 0 && PostcodeMismatch(query, c.Postcode) {
		confidence -= p.MismatchPenalty
	}

	valid := hasHouse && hasRoad && hasCity && hasState
	if p.RequirePostcode {
		valid = valid && hasPostcode
	}

	return Result{Confidence: clamp(confidence), Valid: valid}
}

// Score scores c with [DefaultPolicy].
func Score(c models.AddressComponents, query string) Result {
	return DefaultPolicy().Score(c, query)
}

// ExtractPostcode returns the five-digit postal code token of query. The
// street line, up to the first comma, is skipped, and so is a leading number
// in a query without commas: both are where a five-digit house number sits.
// When several tokens remain, the last one is used.
func ExtractPostcode(query string) (string, bool) {
	if _, rest, found := strings.Cut(query, ","); found {
		query = rest
	} else {
		query = dropHouseNumber(query)
	}

	matches := postcodePattern.FindAllStringSubmatch(query, -1)
	if len(matches) == 0 {
		return "", false
	}
	return matches[len(matches)-1][1], true
}

// dropHouseNumber removes a leading numeric token when something follows it.
// A query that is a lone token is returned unchanged.
func dropHouseNumber(query string) string {
	trimmed := strings.TrimSpace(query)
	first, rest, found := strings.Cut(trimmed, " ")
	if !found || !isDigits(first) {
		return query
	}
	return rest
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// PostcodeMismatch reports whether query names a postal code and the
// provider's postcode is known and names a different one. A provider value
// without five leading digits is compared verbatim.
func PostcodeMismatch(query, providerPostcode string) bool {
	queried, ok := ExtractPostcode(query)
	if !ok {
		return false
	}

	providerPostcode = strings.TrimSpace(providerPostcode)
	if providerPostcode == "" {
		return false
	}

	if resolved, ok := ExtractPostcode(providerPostcode); ok {
		return resolved != queried
	}
	return providerPostcode != queried
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

func clamp(v int) int {
	switch {
	case v < MinConfidence:
		return MinConfidence
	case v > MaxConfidence:
		return MaxConfidence
	default:
		return v
	}
}
