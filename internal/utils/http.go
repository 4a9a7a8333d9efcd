package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/addrway/models"
)

// fallbackErrorBody is written when a response cannot be marshaled, so the
// client still receives a JSON document.
const fallbackErrorBody = `{"ok":false,"error":"internal server error"}`

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error and a
// generic JSON error body, and returns a wrapped error.
//
// Returns the number of bytes written to the response body.
//
// Example usage:
//
//	WriteJSON(w, models.StatusResponse{OK: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(fallbackErrorBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a [models.ErrorResponse] carrying msg with the given
// status code.
func WriteError(w http.ResponseWriter, msg string, statusCode int) (int, error) {
	return WriteJSON(w, models.NewErrorResponse(msg), statusCode)
}
