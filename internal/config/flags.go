package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "15s")
//	-allowed-origin CORS allowed origin
//	-api-key API key required in the x-api-key header
//	-rate-limit-window rate limit window (e.g., "1m")
//	-rate-limit-max maximum validation requests per client per window
//	-geocoder-url geocoding provider base URL
//	-geocoder-user-agent User-Agent sent to the provider
//	-geocoder-email contact email sent to the provider
//	-geocoder-country-codes comma-separated country codes filter
//	-geocoder-timeout outbound request timeout (e.g., "10s")
//	-require-postcode require a postal code for a valid address
//	-trust-proxy-headers read the client address from proxy headers
//	-log-level log level
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("addrway", flag.ContinueOnError)

	var serverAddress NetAddress
	var cfg StructuredConfig

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&cfg.Server.AllowedOrigin, "allowed-origin", "", "CORS allowed origin")
	fs.StringVar(&cfg.Server.APIKey, "api-key", "", "API key required in x-api-key header")
	fs.DurationVar(&cfg.Server.RateLimitWindow, "rate-limit-window", 0, "Rate limit window (e.g., 1m)")
	fs.IntVar(&cfg.Server.RateLimitMax, "rate-limit-max", 0, "Max validation requests per client per window")
	fs.StringVar(&cfg.Geocoder.BaseURL, "geocoder-url", "", "Geocoding provider base URL")
	fs.StringVar(&cfg.Geocoder.UserAgent, "geocoder-user-agent", "", "User-Agent sent to the geocoding provider")
	fs.StringVar(&cfg.Geocoder.Email, "geocoder-email", "", "Contact email sent to the geocoding provider")
	fs.StringVar(&cfg.Geocoder.CountryCodes, "geocoder-country-codes", "", "Comma-separated country codes filter")
	fs.DurationVar(&cfg.Geocoder.Timeout, "geocoder-timeout", 0, "Geocoding request timeout (e.g., 10s)")
	fs.Var(switchFlag{&cfg.Scoring.RequirePostcode}, "require-postcode", "Require a postal code for a valid address")
	fs.Var(switchFlag{&cfg.Server.TrustProxyHeaders}, "trust-proxy-headers", "Read the client address from proxy headers")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host listens on all interfaces. It validates the port
// range, checks IP correctness unless host is empty or "localhost", and
// returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, found := strings.Cut(s, ":")
	if !found || strings.Contains(rawPort, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}


// switchFlag is a boolean flag that leaves its target nil unless the flag is
// given, so "-require-postcode=false" can override an earlier source.
type switchFlag struct {
	target **bool
}

func (f switchFlag) String() string {
	if f.target == nil || *f.target == nil {
		return ""
	}
	return strconv.FormatBool(**f.target)
}

func (f switchFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*f.target = &v
	return nil
}

// IsBoolFlag lets the flag be given without a value.
func (f switchFlag) IsBoolFlag() bool {
	return true
}
