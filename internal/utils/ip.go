package utils

import (
	"net"
	"net/http"
)

// ClientIP returns the address used to identify the caller of r for rate
// limiting: the host part of RemoteAddr. Proxy headers are not consulted
// here; behind a trusted proxy chi's middleware.RealIP rewrites RemoteAddr
// first.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
