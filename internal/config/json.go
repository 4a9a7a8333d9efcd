package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Name     string `json:"name"`
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		AllowedOrigin     string   `json:"allowed_origin"`
		APIKey            string   `json:"api_key"`
		RateLimitWindow   Duration `json:"rate_limit_window"`
		RateLimitMax      int      `json:"rate_limit_max"`
		TrustProxyHeaders *bool    `json:"trust_proxy_headers"`
	} `json:"server,omitempty"`

	Geocoder struct {
		BaseURL      string   `json:"base_url"`
		UserAgent    string   `json:"user_agent"`
		Email        string   `json:"email"`
		CountryCodes string   `json:"country_codes"`
		Timeout      Duration `json:"timeout"`
	} `json:"geocoder,omitempty"`

	Scoring struct {
		RequirePostcode *bool `json:"require_postcode"`
	} `json:"scoring,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:     jsonCfg.App.Name,
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigin:     jsonCfg.Server.AllowedOrigin,
			APIKey:            jsonCfg.Server.APIKey,
			RateLimitWindow:   time.Duration(jsonCfg.Server.RateLimitWindow),
			RateLimitMax:      jsonCfg.Server.RateLimitMax,
			TrustProxyHeaders: jsonCfg.Server.TrustProxyHeaders,
		},
		Geocoder: Geocoder{
			BaseURL:      jsonCfg.Geocoder.BaseURL,
			UserAgent:    jsonCfg.Geocoder.UserAgent,
			Email:        jsonCfg.Geocoder.Email,
			CountryCodes: jsonCfg.Geocoder.CountryCodes,
			Timeout:      time.Duration(jsonCfg.Geocoder.Timeout),
		},
		Scoring: Scoring{
			RequirePostcode: jsonCfg.Scoring.RequirePostcode,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration type %T", v)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
