package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/addrway/internal/config"
	"github.com/MKhiriev/addrway/internal/logger"
	"github.com/MKhiriev/addrway/internal/metrics"
	"github.com/MKhiriev/addrway/internal/mock"
	"github.com/MKhiriev/addrway/internal/service"
	"github.com/MKhiriev/addrway/internal/utils"
)

// newTestHandler creates a Handler with a nop logger and no services, for
// middleware tests that never reach a route.
func newTestHandler() *Handler {
	return &Handler{
		logger:   logger.Nop(),
		traceIDs: utils.NewTraceIDGenerator(),
	}
}

func testServerConfig() config.Server {
	return config.Server{
		RequestTimeout:  5 * time.Second,
		AllowedOrigin:   "*",
		RateLimitWindow: time.Minute,
		RateLimitMax:    -1,
	}
}

type testEnv struct {
	router   http.Handler
	provider *mock.MockGeocodeProvider
	metrics  *metrics.Metrics
}

// newTestEnv wires the real service layer around a mocked geocoding
// provider, so tests can assert on outbound call counts.
func newTestEnv(t *testing.T, cfg config.Server) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	provider := mock.NewMockGeocodeProvider(ctrl)
	provider.EXPECT().Name().Return("nominatim").AnyTimes()

	m := metrics.NewMetrics("test")

	services, err := service.NewServices(provider, config.StructuredConfig{
		App:    config.App{Name: "addrway-api", Version: "1.2.3"},
		Server: cfg,
	}, m, logger.Nop())
	if err != nil {
		t.Fatalf("building services: %v", err)
	}

	return &testEnv{
		router:   NewHandler(services, cfg, m, logger.Nop()).Init(),
		provider: provider,
		metrics:  m,
	}
}

func (e *testEnv) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// makeRequest creates a test request with a buffer-backed logger in context,
// the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func newBufferLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf)
}
