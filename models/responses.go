package models

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// NewErrorResponse builds an ErrorResponse carrying msg.
func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{OK: false, Error: msg}
}

// StatusResponse is returned by the service info and health endpoints.
type StatusResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service,omitempty"`
	Version string `json:"version,omitempty"`
}
