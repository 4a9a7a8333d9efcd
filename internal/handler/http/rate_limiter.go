package http

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientRateLimiter keeps one token bucket per client key. A bucket holds
// max tokens and refills at max per window, so a client may burst up to max
// requests and then sustain max requests per window.
//
// Buckets idle for longer than two windows are swept on access, which keeps
// the table bounded by the number of recently active clients.
type clientRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter

	limit      rate.Limit
	burst      int
	idleTTL    time.Duration
	retryAfter time.Duration
	lastSweep  time.Time

	now func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientRateLimiter(window time.Duration, maxRequests int) *clientRateLimiter {
	interval := window / time.Duration(maxRequests)

	return &clientRateLimiter{
		limiters:   make(map[string]*clientLimiter),
		limit:      rate.Every(interval),
		burst:      maxRequests,
		idleTTL:    2 * window,
		retryAfter: interval,
		now:        time.Now,
	}
}

// allow reports whether the client identified by key may make a request now.
func (l *clientRateLimiter) allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	c, ok := l.limiters[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// retryAfterSeconds is the Retry-After value for a rejected request: the
// time until the next token, rounded up to whole seconds.
func (l *clientRateLimiter) retryAfterSeconds() int {
	return int(math.Max(1, math.Ceil(l.retryAfter.Seconds())))
}

func (l *clientRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *clientRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	for key, c := range l.limiters {
		if now.Sub(c.lastSeen) >= l.idleTTL {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}
