package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLen bounds how much of a failed response body is kept for logs.
const maxErrorBodyLen = 256

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen]
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &StatusError{StatusCode: resp.StatusCode(), Body: body}
}
