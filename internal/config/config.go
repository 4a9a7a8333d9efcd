// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the addrway
// service. It aggregates all sub-configurations and is populated by merging
// defaults, an optional .env file, environment variables, command-line flags
// and an optional JSON file.
//
// The config is built once at startup and passed by value to the components
// that need it; nothing reads the environment after startup.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds service identity and logging settings.
	App App `envPrefix:"APP_"`

	// Server holds the inbound HTTP surface settings: listen address,
	// timeouts, CORS, API key and rate limiting.
	Server Server `envPrefix:"SERVER_"`

	// Geocoder holds the outbound geocoding provider settings.
	Geocoder Geocoder `envPrefix:"GEOCODER_"`

	// Scoring holds the confidence scoring policy switches.
	Scoring Scoring `envPrefix:"SCORING_"`

	// Port is the bare listening port set by hosting platforms.
	// When Server.HTTPAddress is empty the server listens on ":<Port>".
	// Env: PORT
	Port string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the service name reported by GET / and used as the logger role.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running service.
	// Falls back to the linker-injected build version when empty.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network, timeout and access settings for the inbound
// transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigin is the CORS origin allowed to call the API.
	// "*" allows any origin.
	// Env: SERVER_ALLOWED_ORIGIN
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`

	// APIKey, when non-empty, must be presented in the x-api-key header of
	// every validation request.
	// Env: SERVER_API_KEY
	APIKey string `env:"API_KEY"`

	// RateLimitWindow and RateLimitMax allow at most RateLimitMax validation
	// requests per client within RateLimitWindow. A negative RateLimitMax
	// disables rate limiting; zero keeps the default.
	// Env: SERVER_RATE_LIMIT_WINDOW, SERVER_RATE_LIMIT_MAX
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX"`

	// TrustProxyHeaders takes the client address from X-Forwarded-For,
	// X-Real-IP or True-Client-IP. Enable it only behind a reverse proxy
	// that overwrites those headers; otherwise callers choose their own
	// rate limit key. Unset means false.
	// Env: SERVER_TRUST_PROXY_HEADERS
	TrustProxyHeaders *bool `env:"TRUST_PROXY_HEADERS"`
}

// Geocoder holds settings for the Nominatim-compatible address search API.
type Geocoder struct {
	// BaseURL is the provider root, e.g. "https://nominatim.openstreetmap.org".
	// Env: GEOCODER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// UserAgent identifies this service to the provider, as its usage
	// policy requires.
	// Env: GEOCODER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// Email is an optional contact address sent with every request.
	// Env: GEOCODER_EMAIL
	Email string `env:"EMAIL"`

	// CountryCodes optionally restricts matches to a comma-separated list of
	// ISO 3166-1 alpha-2 codes (e.g. "us").
	// Env: GEOCODER_COUNTRY_CODES
	CountryCodes string `env:"COUNTRY_CODES"`

	// Timeout bounds a single outbound search request.
	// Env: GEOCODER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Scoring holds confidence scoring switches.
type Scoring struct {
	// RequirePostcode makes a resolved postal code mandatory for an address
	// to be reported valid.
	// Unset means false; a later source may set it back to false.
	// Env: SCORING_REQUIRE_POSTCODE
	RequirePostcode *bool `env:"REQUIRE_POSTCODE"`
}

// GetStructuredConfig loads, merges, and validates the service configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file in the working directory, if present
//  3. Environment variables
//  4. Command-line flags (args, typically os.Args[1:])
//  5. JSON file (path resolved from sources 3 and 4)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
