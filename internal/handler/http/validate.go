package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/addrway/internal/logger"
	"github.com/MKhiriev/addrway/internal/metrics"
	"github.com/MKhiriev/addrway/internal/service"
	"github.com/MKhiriev/addrway/internal/utils"
)

const maxRequestBodyBytes = 64 << 10

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	address, err := decodeAddress(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		if h.metrics != nil {
			h.metrics.ObserveValidation(metrics.OutcomeBadRequest, 0)
		}
		writeError(w, r, err)
		return
	}

	resp, err := h.services.ValidationService.Validate(ctx, address)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing validation response")
	}
}

// validateRequestBody keeps the address undecoded so that a missing field,
// a null and a non-string value can be told apart.
type validateRequestBody struct {
	Address json.RawMessage `json:"address"`
}

// decodeAddress reads a {"address": "..."} document from body and returns
// the address as sent. Blank and over-long addresses are left to the
// service layer.
func decodeAddress(body io.Reader) (string, error) {
	dec := json.NewDecoder(body)

	var req validateRequestBody
	if err := dec.Decode(&req); err != nil {
		return "", decodeError(err)
	}

	// the body must hold exactly one JSON value
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return "", fmt.Errorf("%w: unexpected data after the JSON object", service.ErrInvalidJSON)
		}
		return "", decodeError(err)
	}

	raw := bytes.TrimSpace(req.Address)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", service.ErrAddressRequired
	}
	if raw[0] != '"' {
		return "", service.ErrAddressNotString
	}

	var address string
	if err := json.Unmarshal(raw, &address); err != nil {
		return "", fmt.Errorf("%w: %w", service.ErrInvalidJSON, err)
	}

	return address, nil
}

func decodeError(err error) error {
	var maxBytesErr *http.MaxBytesError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return service.ErrAddressRequired
	case errors.As(err, &maxBytesErr):
		return ErrRequestBodyTooLarge
	case errors.As(err, &typeErr):
		return fmt.Errorf("%w: body must be a JSON object", service.ErrInvalidJSON)
	default:
		return fmt.Errorf("%w: %w", service.ErrInvalidJSON, err)
	}
}
