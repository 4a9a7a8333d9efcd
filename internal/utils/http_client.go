package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("https://example.com"))
//	resp, err := client.R().Get("/search")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an [HTTPClient] at construction time.
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the URL that relative request paths are resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds every request made by the client, including reading
// the response body. A zero timeout leaves requests bounded only by their
// context.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetTimeout(timeout)
	}
}

// WithHeader sets a header sent with every request.
func WithHeader(key, value string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeader(key, value)
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. Retries are disabled: callers
// that want a retry policy must opt in on the returned client.
//
// Example usage:
//
//	client := utils.NewHTTPClient(
//	    utils.WithTimeout(10*time.Second),
//	    utils.WithHeader("Accept", "application/json"),
//	)
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New().SetRetryCount(0)
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
