// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// resolveHTTPAddress fills an empty listen address from PORT, falling back
// to [DefaultHTTPAddress].
func (cfg *StructuredConfig) resolveHTTPAddress() {
	if cfg.Server.HTTPAddress != "" {
		return
	}

	if port := strings.TrimSpace(cfg.Port); port != "" {
		cfg.Server.HTTPAddress = ":" + port
		return
	}

	cfg.Server.HTTPAddress = DefaultHTTPAddress
}

// validate checks that the final merged [StructuredConfig] satisfies all
// service invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error wrapping
// one of the sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.Name) == "" {
		return fmt.Errorf("%w: empty service name", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimitMax > 0 && cfg.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("%w: rate limit window must be positive", ErrInvalidServerConfigs)
	}

	u, err := url.Parse(cfg.Geocoder.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q must include scheme and host", ErrInvalidGeocoderConfigs, cfg.Geocoder.BaseURL)
	}
	if strings.TrimSpace(cfg.Geocoder.UserAgent) == "" {
		return fmt.Errorf("%w: user agent is required by the provider usage policy", ErrInvalidGeocoderConfigs)
	}
	if cfg.Geocoder.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidGeocoderConfigs)
	}

	return nil
}

// RateLimitEnabled reports whether inbound validation requests are rate
// limited. A negative RateLimitMax disables the limiter; zero keeps the
// default.
func (s Server) RateLimitEnabled() bool {
	return s.RateLimitMax > 0 && s.RateLimitWindow > 0
}

// ProxyHeadersTrusted reports whether the client address is read from proxy
// headers instead of the connection.
func (s Server) ProxyHeadersTrusted() bool {
	return isSet(s.TrustProxyHeaders)
}

// PostcodeRequired reports whether a resolved postal code is part of the
// validity rule.
func (s Scoring) PostcodeRequired() bool {
	return isSet(s.RequirePostcode)
}

// Bool returns a pointer to v, for filling optional switches.
func Bool(v bool) *bool {
	return &v
}

func isSet(b *bool) bool {
	return b != nil && *b
}
