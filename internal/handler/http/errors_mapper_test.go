package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/addrway/internal/adapter"
	"github.com/MKhiriev/addrway/internal/app"
	"github.com/MKhiriev/addrway/internal/service"
)

func TestPublicError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "address required", err: service.ErrAddressRequired, wantStatus: http.StatusBadRequest, wantMsg: "address is required"},
		{name: "address not string", err: service.ErrAddressNotString, wantStatus: http.StatusBadRequest, wantMsg: "address must be a string"},
		{name: "wrapped address too long", err: fmt.Errorf("checking input: %w", service.ErrAddressTooLong), wantStatus: http.StatusBadRequest, wantMsg: "address is too long"},
		{name: "invalid json", err: service.ErrInvalidJSON, wantStatus: http.StatusBadRequest, wantMsg: "request body is not valid JSON"},
		{name: "unauthorized", err: ErrInvalidAPIKey, wantStatus: http.StatusUnauthorized, wantMsg: "unauthorized"},
		{name: "not found", err: ErrRouteNotFound, wantStatus: http.StatusNotFound, wantMsg: "not found"},
		{name: "method not allowed", err: ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed, wantMsg: "method not allowed"},
		{name: "body too large", err: ErrRequestBodyTooLarge, wantStatus: http.StatusRequestEntityTooLarge, wantMsg: "request body too large"},
		{name: "rate limited", err: ErrTooManyRequests, wantStatus: http.StatusTooManyRequests, wantMsg: "too many requests"},
		{
			name:       "provider status hides upstream detail",
			err:        fmt.Errorf("error searching address with nominatim: %w", &adapter.StatusError{StatusCode: 503}),
			wantStatus: http.StatusBadGateway,
			wantMsg:    app.MsgProviderError,
		},
		{
			name:       "provider unavailable",
			err:        fmt.Errorf("dial tcp 10.0.0.1:443: %w", adapter.ErrProviderUnavailable),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
		{name: "malformed payload", err: adapter.ErrMalformedPayload, wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
		{name: "unknown error", err: errors.New("secret database password"), wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
		{name: "panic", err: errPanic, wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := publicError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}

func TestWriteError_LogsServerErrors(t *testing.T) {
	var logBuf bytes.Buffer
	rr := httptest.NewRecorder()

	writeError(rr, makeRequest(http.MethodPost, "/validate", &logBuf), errors.New("connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"ok":false,"error":"internal server error"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "connection reset")
	assert.Contains(t, logBuf.String(), `"level":"error"`)
	assert.Contains(t, logBuf.String(), "connection reset by peer")
}

func TestWriteError_ClientErrors(t *testing.T) {
	var logBuf bytes.Buffer
	rr := httptest.NewRecorder()

	writeError(rr, makeRequest(http.MethodPost, "/validate", &logBuf), service.ErrAddressRequired)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"ok":false,"error":"address is required"}`, rr.Body.String())
	assert.NotContains(t, logBuf.String(), `"level":"error"`)
}
