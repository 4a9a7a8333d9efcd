package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/addrway/internal/config"
	"github.com/MKhiriev/addrway/internal/logger"
	"github.com/MKhiriev/addrway/internal/metrics"
	"github.com/MKhiriev/addrway/internal/service"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	m := metrics.NewMetrics("test")
	cfg := testServerConfig()

	h := NewHandler(svc, cfg, m, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, m, h.metrics)
	assert.Same(t, log, h.logger)
	assert.Equal(t, cfg, h.cfg)
	assert.NotNil(t, h.traceIDs)
}

func TestNewHandler_RateLimiter(t *testing.T) {
	tests := []struct {
		name        string
		window      time.Duration
		max         int
		wantLimiter bool
	}{
		{name: "enabled", window: time.Minute, max: 60, wantLimiter: true},
		{name: "disabled by negative max", window: time.Minute, max: -1},
		{name: "disabled by zero window", window: 0, max: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Server{RateLimitWindow: tt.window, RateLimitMax: tt.max}
			h := NewHandler(&service.Services{}, cfg, nil, logger.Nop())
			assert.Equal(t, tt.wantLimiter, h.limiter != nil)
		})
	}
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, testServerConfig(), nil, logger.Nop())
	h2 := NewHandler(&service.Services{}, testServerConfig(), nil, logger.Nop())

	assert.NotSame(t, h1, h2)
}
