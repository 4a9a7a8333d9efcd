package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/addrway/internal/logger"
	"github.com/MKhiriev/addrway/internal/utils"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Str("client_ip", utils.ClientIP(r)).
			Int("status", lw.statusOrOK()).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
