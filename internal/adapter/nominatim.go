package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/addrway/internal/config"
	"github.com/MKhiriev/addrway/internal/logger"
	"github.com/MKhiriev/addrway/internal/utils"
	"github.com/MKhiriev/addrway/models"
)

// NominatimSource is the source name reported for Nominatim matches.
const NominatimSource = "nominatim"

const nominatimSearchPath = "/search"

type nominatimProvider struct {
	client *utils.HTTPClient

	email        string
	countryCodes string

	logger *logger.Logger
}

// NewNominatimProvider constructs a [GeocodeProvider] backed by the search
// endpoint of a Nominatim-compatible API. It normalises and validates the base
// URL from cfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL, the request timeout and the identifying User-Agent the
// provider's usage policy asks for.
//
// Returns an error wrapping [ErrInvalidProviderConfig] if the base URL is
// unusable or no User-Agent is configured.
func NewNominatimProvider(cfg config.Geocoder, logger *logger.Logger) (GeocodeProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base url: %w", ErrInvalidProviderConfig, err)
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		return nil, fmt.Errorf("%w: empty user agent", ErrInvalidProviderConfig)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.Timeout),
		utils.WithHeader("User-Agent", userAgent),
		utils.WithHeader("Accept", "application/json"),
	)

	return &nominatimProvider{
		client:       client,
		email:        strings.TrimSpace(cfg.Email),
		countryCodes: strings.TrimSpace(cfg.CountryCodes),
		logger:       logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Name implements [GeocodeProvider].
func (n *nominatimProvider) Name() string {
	return NominatimSource
}

// Search implements [GeocodeProvider]. It GETs /search in single-result,
// address-details mode and decodes the JSON array of matches.
//
// Errors:
//   - [ErrProviderUnavailable] when the request cannot be completed
//     (connection failure, timeout, cancelled context);
//   - [ErrProviderStatus] (as *[StatusError]) on a non-2xx status;
//   - [ErrMalformedPayload] when a 2xx body is not a JSON array of matches.
func (n *nominatimProvider) Search(ctx context.Context, address string) ([]models.GeocodeResult, error) {
	log := logger.FromContext(ctx)

	start := time.Now()
	resp, err := n.client.R().
		SetContext(ctx).
		SetQueryParams(n.searchParams(address)).
		Get(nominatimSearchPath)
	if err != nil {
		return nil, fmt.Errorf("%w: search request: %w", ErrProviderUnavailable, err)
	}

	log.Debug().
		Str("provider", NominatimSource).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("geocoding provider responded")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var results []models.GeocodeResult
	if err = json.Unmarshal(resp.Body(), &results); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %w", ErrMalformedPayload, err)
	}

	return results, nil
}

func (n *nominatimProvider) searchParams(address string) map[string]string {
	params := map[string]string{
		"q":              address,
		"format":         "jsonv2",
		"addressdetails": "1",
		"limit":          "1",
	}
	if n.email != "" {
		params["email"] = n.email
	}
	if n.countryCodes != "" {
		params["countrycodes"] = n.countryCodes
	}
	return params
}
