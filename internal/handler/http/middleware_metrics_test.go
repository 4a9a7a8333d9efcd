package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/addrway/internal/metrics"
)

func TestWithMetrics_NilMetricsPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rr := httptest.NewRecorder()
	newTestHandler().withMetrics(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	h := newTestHandler()
	h.metrics = metrics.NewMetrics("mw")

	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("item"))
	})

	for _, path := range []string{"/items/1", "/items/2", "/items/3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	expected := `
# HELP mw_http_requests_total Total number of HTTP requests
# TYPE mw_http_requests_total counter
mw_http_requests_total{method="GET",path="/items/{id}",status="200"} 3
mw_http_requests_total{method="GET",path="unmatched",status="404"} 1
`
	err := testutil.GatherAndCompare(h.metrics.Registry(), strings.NewReader(expected), "mw_http_requests_total")
	assert.NoError(t, err)
}

func TestRoutePattern_NoRouteContext(t *testing.T) {
	assert.Equal(t, unmatchedRoute, routePattern(httptest.NewRequest(http.MethodGet, "/", nil)))
}
