// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/addrway/internal/config"
	"github.com/MKhiriev/addrway/internal/logger"
	"github.com/MKhiriev/addrway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const springfieldPayload = `[{
	"place_id": 297152,
	"lat": "39.7990",
	"lon": "-89.6440",
	"importance": 0.41,
	"display_name": "123, Main Street, Springfield, Sangamon County, Illinois, 62704, United States",
	"address": {
		"house_number": "123",
		"road": "Main Street",
		"city": "Springfield",
		"county": "Sangamon County",
		"state": "Illinois",
		"postcode": "62704",
		"country": "United States",
		"country_code": "us"
	}
}]`

// newTestProvider creates a nominatimProvider pointed at the test server.
func newTestProvider(t *testing.T, serverURL string, mutate ...func(*config.Geocoder)) *nominatimProvider {
	t.Helper()
	cfg := config.Geocoder{
		BaseURL:   serverURL,
		UserAgent: "addrway-test/1.0",
		Timeout:   2 * time.Second,
	}
	for _, m := range mutate {
		m(&cfg)
	}

	p, err := NewNominatimProvider(cfg, logger.Nop())
	require.NoError(t, err)
	return p.(*nominatimProvider)
}

// ── NewNominatimProvider ─────────────────────────────────────────────────────

func TestNewNominatimProvider_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Geocoder
	}{
		{name: "empty base url", cfg: config.Geocoder{UserAgent: "ua"}},
		{name: "empty user agent", cfg: config.Geocoder{BaseURL: "http://localhost"}},
		{name: "unparsable base url", cfg: config.Geocoder{BaseURL: "http://[::1", UserAgent: "ua"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewNominatimProvider(tt.cfg, logger.Nop())
			assert.Nil(t, p)
			assert.ErrorIs(t, err, ErrInvalidProviderConfig)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" nominatim.openstreetmap.org/ ")
	require.NoError(t, err)
	assert.Equal(t, "https://nominatim.openstreetmap.org", got)

	got, err = normalizeBaseURL("http://localhost:8088/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8088", got)
}

func TestNominatimProvider_Name(t *testing.T) {
	p := newTestProvider(t, "http://localhost")
	assert.Equal(t, NominatimSource, p.Name())
}

// ── Search ───────────────────────────────────────────────────────────────────

func TestSearch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/search", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "123 Main St, Springfield, IL 62704", q.Get("q"))
		assert.Equal(t, "jsonv2", q.Get("format"))
		assert.Equal(t, "1", q.Get("addressdetails"))
		assert.Equal(t, "1", q.Get("limit"))
		assert.False(t, q.Has("email"))
		assert.False(t, q.Has("countrycodes"))

		assert.Equal(t, "addrway-test/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(springfieldPayload))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	results, err := p.Search(context.Background(), "123 Main St, Springfield, IL 62704")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "123", results[0].Address.HouseNumber)
	assert.Equal(t, "Main Street", results[0].Address.Road)
	assert.Equal(t, "62704", results[0].Address.Postcode)
	assert.Equal(t, models.NewCoordinate(39.7990), results[0].Lat)
	assert.Equal(t, models.NewCoordinate(-89.6440), results[0].Lon)
	assert.Contains(t, results[0].DisplayName, "Springfield")
}

func TestSearch_OptionalParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "ops@example.com", q.Get("email"))
		assert.Equal(t, "us", q.Get("countrycodes"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, func(c *config.Geocoder) {
		c.Email = "ops@example.com"
		c.CountryCodes = "us"
	})
	_, err := p.Search(context.Background(), "Main St")

	require.NoError(t, err)
}

func TestSearch_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	results, err := p.Search(context.Background(), "nowhere at all")

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusForbidden, http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte("upstream says no"))
			}))
			defer srv.Close()

			p := newTestProvider(t, srv.URL)
			_, err := p.Search(context.Background(), "123 Main St")

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrProviderStatus)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, status, statusErr.StatusCode)
			assert.Equal(t, "upstream says no", statusErr.Body)
		})
	}
}

func TestSearch_MalformedPayload(t *testing.T) {
	for name, body := range map[string]string{
		"object instead of array": `{"error": "Unable to geocode"}`,
		"truncated":               `[{"lat": "39.7"`,
		"bad coordinate":          `[{"lat": "north", "lon": "-89.6"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			p := newTestProvider(t, srv.URL)
			_, err := p.Search(context.Background(), "123 Main St")

			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestSearch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := newTestProvider(t, url)
	_, err := p.Search(context.Background(), "123 Main St")

	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestSearch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	p := newTestProvider(t, srv.URL, func(c *config.Geocoder) { c.Timeout = 50 * time.Millisecond })
	_, err := p.Search(context.Background(), "123 Main St")

	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestSearch_SingleRequestNoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.Search(context.Background(), "123 Main St")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
