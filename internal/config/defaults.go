package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultServiceName     = "addrway-api"
	DefaultHTTPAddress     = ":8080"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultAllowedOrigin   = "*"
	DefaultRateLimitWindow = time.Minute
	DefaultRateLimitMax    = 60
	DefaultLogLevel        = "info"

	DefaultGeocoderBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultGeocoderUserAgent = "addrway-api/1.0"
	DefaultGeocoderTimeout   = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     DefaultServiceName,
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			RequestTimeout:  DefaultRequestTimeout,
			AllowedOrigin:   DefaultAllowedOrigin,
			RateLimitWindow: DefaultRateLimitWindow,
			RateLimitMax:    DefaultRateLimitMax,
		},
		Geocoder: Geocoder{
			BaseURL:   DefaultGeocoderBaseURL,
			UserAgent: DefaultGeocoderUserAgent,
			Timeout:   DefaultGeocoderTimeout,
		},
	}
}
