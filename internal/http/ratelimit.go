package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"appointment-intake-service/internal/apperrors"
	"appointment-intake-service/internal/observability/metrics"
)

// staleAfter is how long an idle client keeps its token bucket.
const staleAfter = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter tracks one token bucket per client key.
type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*limiterEntry
	rate    rate.Limit
	burst   int
}

func newClientLimiter(perMinute int) *clientLimiter {
	l := &clientLimiter{
		clients: make(map[string]*limiterEntry),
		rate:    rate.Limit(float64(perMinute) / 60.0),
		burst:   perMinute,
	}
	go l.cleanup()
	return l
}

func (l *clientLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.clients[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter.Allow()
}

func (l *clientLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		l.mu.Lock()
		for key, entry := range l.clients {
			if time.Since(entry.lastSeen) > staleAfter {
				delete(l.clients, key)
			}
		}
		l.mu.Unlock()
	}
}

// clientKey identifies the caller for rate limiting. RealIP middleware has
// already resolved forwarding headers into RemoteAddr.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit returns middleware enforcing a per-client request budget.
// Zero perMinute disables the limit.
func RateLimit(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	limiter := newClientLimiter(perMinute)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.allow(clientKey(r)) {
				metrics.DefaultMetrics.RecordRateLimited()
				writeError(w, apperrors.RateLimited("Too many requests, please try again later."), "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
