package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/addrway/internal/utils"
)

// withRateLimit enforces the per-client request budget, keyed by the
// connection's client IP.
// Rejected requests get a JSON 429 with a Retry-After header.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.allow(utils.ClientIP(r)) {
			if h.metrics != nil {
				h.metrics.ObserveRateLimited()
			}
			w.Header().Set("Retry-After", strconv.Itoa(h.limiter.retryAfterSeconds()))
			writeError(w, r, ErrTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
