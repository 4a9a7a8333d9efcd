package http

import (
	"crypto/subtle"
	"net/http"
)

// withAPIKey rejects requests whose x-api-key header does not match the
// configured key. Without a configured key every request passes.
func (h *Handler) withAPIKey(next http.Handler) http.Handler {
	if h.cfg.APIKey == "" {
		return next
	}

	expected := []byte(h.cfg.APIKey)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provided := []byte(r.Header.Get(apiKeyHeader))
		if subtle.ConstantTimeCompare(provided, expected) != 1 {
			writeError(w, r, ErrInvalidAPIKey)
			return
		}

		next.ServeHTTP(w, r)
	})
}
