// Package metrics holds the Prometheus collectors of the service.
//
// Collectors are registered on a private registry so that several instances
// (one per test) can coexist; [Metrics.Handler] exposes that registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "addrway"

// Validation outcome labels.
const (
	OutcomeValid         = "valid"
	OutcomeInvalid       = "invalid"
	OutcomeNoMatch       = "no_match"
	OutcomeBadRequest    = "bad_request"
	OutcomeProviderError = "provider_error"
	OutcomeError         = "error"
)

// Metrics holds Prometheus metrics collectors
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	responseSize     *prometheus.HistogramVec

	validationsTotal     *prometheus.CounterVec
	validationConfidence prometheus.Histogram

	providerRequestsTotal   *prometheus.CounterVec
	providerRequestDuration *prometheus.HistogramVec

	rateLimitedTotal prometheus.Counter
}

// NewMetrics creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path", "status"},
		),
		requestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),
		responseSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_size_bytes",
				Help:      "HTTP response size in bytes",
				Buckets:   []float64{100, 1000, 10000, 100000},
			},
			[]string{"method", "path", "status"},
		),
		validationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validations_total",
				Help:      "Total number of address validations by outcome",
			},
			[]string{"outcome"},
		),
		validationConfidence: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "validation_confidence",
				Help:      "Confidence of matched addresses",
				Buckets:   prometheus.LinearBuckets(10, 10, 10),
			},
		),
		providerRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "geocoder_requests_total",
				Help:      "Total number of geocoding provider requests by outcome",
			},
			[]string{"provider", "outcome"},
		),
		providerRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "geocoder_request_duration_seconds",
				Help:      "Geocoding provider request duration in seconds",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"provider"},
		),
		rateLimitedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_requests_total",
				Help:      "Total number of requests rejected by the rate limiter",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.requestDuration,
		m.requestsInFlight,
		m.responseSize,
		m.validationsTotal,
		m.validationConfidence,
		m.providerRequestsTotal,
		m.providerRequestDuration,
		m.rateLimitedTotal,
	)

	return m
}

// Handler returns the Prometheus exposition handler for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RequestStarted marks a request as in flight and returns a function that
// records it as finished.
func (m *Metrics) RequestStarted() func() {
	m.requestsInFlight.Inc()
	return m.requestsInFlight.Dec
}

// ObserveRequest records a finished HTTP request. path must be a route
// pattern, not a raw URL path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, path, status string, duration time.Duration, size int) {
	m.requestsTotal.WithLabelValues(method, path, status).Inc()
	m.requestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	m.responseSize.WithLabelValues(method, path, status).Observe(float64(size))
}

// ObserveValidation records the outcome of one validation. confidence is
// only observed for outcomes that produced a match.
func (m *Metrics) ObserveValidation(outcome string, confidence int) {
	m.validationsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeValid || outcome == OutcomeInvalid {
		m.validationConfidence.Observe(float64(confidence))
	}
}

// ObserveProviderRequest records one geocoding provider call.
func (m *Metrics) ObserveProviderRequest(provider, outcome string, duration time.Duration) {
	m.providerRequestsTotal.WithLabelValues(provider, outcome).Inc()
	m.providerRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// ObserveRateLimited records a request rejected by the rate limiter.
func (m *Metrics) ObserveRateLimited() {
	m.rateLimitedTotal.Inc()
}
