package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/addrway/internal/adapter"
	"github.com/MKhiriev/addrway/internal/app"
	"github.com/MKhiriev/addrway/internal/logger"
	"github.com/MKhiriev/addrway/internal/service"
	"github.com/MKhiriev/addrway/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrAddressRequired:  http.StatusBadRequest,
	service.ErrAddressNotString: http.StatusBadRequest,
	service.ErrAddressTooLong:   http.StatusBadRequest,
	service.ErrInvalidJSON:      http.StatusBadRequest,

	ErrInvalidAPIKey:       http.StatusUnauthorized,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrRequestBodyTooLarge: http.StatusRequestEntityTooLarge,
	ErrTooManyRequests:     http.StatusTooManyRequests,

	adapter.ErrProviderStatus:      http.StatusBadGateway,
	adapter.ErrProviderUnavailable: http.StatusInternalServerError,
	adapter.ErrMalformedPayload:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	status, _ := publicError(err)
	return status
}

// publicError maps err to the status code and the message that is safe to
// show to the caller. Server-side failures never expose err's text.
func publicError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if !errors.Is(err, target) {
			continue
		}
		switch {
		case status == http.StatusBadGateway:
			return status, app.MsgProviderError
		case status >= http.StatusInternalServerError:
			return status, app.MsgInternalServerError
		default:
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err with the request-scoped logger and writes the matching
// JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, msg := publicError(err)

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, werr := utils.WriteError(w, msg, status); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}
