package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/addrway/internal/logger"
)

// withRecover turns a panic in a downstream handler into a JSON 500
// response. http.ErrAbortHandler is re-panicked so net/http can abort the
// connection as intended.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			writeError(w, r, errPanic)
		}()

		next.ServeHTTP(w, r)
	})
}
