// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AddressComponents is the decomposed form of a geocoder match.
//
// The set of fields mirrors the address-details block of a Nominatim search
// result. Every field is optional: the provider omits parts it could not
// resolve, and empty fields are omitted again when the components are echoed
// back to the caller.
type AddressComponents struct {
	HouseNumber string `json:"house_number,omitempty"`
	Road        string `json:"road,omitempty"`
	City        string `json:"city,omitempty"`
	Town        string `json:"town,omitempty"`
	Village     string `json:"village,omitempty"`
	State       string `json:"state,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// CityEquivalent returns the first non-blank of City, Town and Village.
// Small settlements are reported by the provider as a town or a village
// rather than a city, and all three count as the locality of the address.
func (c AddressComponents) CityEquivalent() string {
	for _, v := range []string{c.City, c.Town, c.Village} {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// IsEmpty reports whether none of the scored components carries a
// non-blank value. Country fields alone do not make a match usable.
func (c AddressComponents) IsEmpty() bool {
	return strings.TrimSpace(c.HouseNumber+c.Road+c.City+c.Town+c.Village+c.State+c.Postcode) == ""
}

// GeocodeResult is a single match returned by the geocoding provider.
type GeocodeResult struct {
	// Address holds the structured components of the match.
	Address AddressComponents `json:"address"`

	// DisplayName is the provider's normalized, human-readable rendering of
	// the match (e.g. "123, Main Street, Springfield, Illinois, 62704, United States").
	DisplayName string `json:"display_name"`

	// Lat and Lon are transmitted as strings by Nominatim and as numbers by
	// some compatible providers; Coordinate accepts both.
	Lat Coordinate `json:"lat"`
	Lon Coordinate `json:"lon"`

	// Importance is the provider's relevance signal in [0, 1], when supplied.
	Importance *float64 `json:"importance,omitempty"`
}
