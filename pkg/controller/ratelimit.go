package controller

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"domainsuggest/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimitOptions configure a RateLimiter.
type RateLimitOptions struct {
	// RPS is the sustained rate per client. Zero or less disables limiting.
	RPS float64
	// Burst is the token bucket size per client.
	Burst int
	// IdleTTL is how long a quiet client's bucket is kept.
	IdleTTL time.Duration
	// TrustForwardedFor keys clients by X-Forwarded-For and X-Real-IP. Only
	// enable it behind a proxy that overwrites those headers.
	TrustForwardedFor bool
	// Key extracts the client key. Defaults to RemoteIP, or GetClientIP when
	// TrustForwardedFor is set.
	Key func(r *http.Request) string
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client key.
type RateLimiter struct {
	opts RateLimitOptions

	mu      sync.Mutex
	entries map[string]*limiterEntry
	now     func() time.Time
}

// NewRateLimiter creates a RateLimiter.
func NewRateLimiter(opts RateLimitOptions) *RateLimiter {
	if opts.Key == nil {
		opts.Key = RemoteIP
		if opts.TrustForwardedFor {
			opts.Key = GetClientIP
		}
	}
	if opts.Burst <= 0 {
		opts.Burst = max(1, int(math.Ceil(opts.RPS)))
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 10 * time.Minute
	}

	return &RateLimiter{
		opts:    opts,
		entries: make(map[string]*limiterEntry),
		now:     time.Now,
	}
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if ent, ok := l.entries[key]; ok {
		ent.lastSeen = now

		return ent.lim
	}

	lim := rate.NewLimiter(rate.Limit(l.opts.RPS), l.opts.Burst)
	l.entries[key] = &limiterEntry{lim: lim, lastSeen: now}

	return lim
}

// Cleanup drops the buckets of clients idle for longer than IdleTTL.
func (l *RateLimiter) Cleanup() {
	cutoff := l.now().Add(-l.opts.IdleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()

	for k, ent := range l.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(l.entries, k)
		}
	}
}

// Len returns the number of tracked clients.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// StartJanitor runs Cleanup every IdleTTL until ctx is done.
func (l *RateLimiter) StartJanitor(ctx context.Context) {
	t := time.NewTicker(l.opts.IdleTTL)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				l.Cleanup()
			}
		}
	}()
}

// Middleware rejects requests above the client's rate with 429 and a
// Retry-After header.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	if l.opts.RPS <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := l.opts.Key(r)
		res := l.limiter(key).ReserveN(l.now(), 1)
		if delay := res.DelayFrom(l.now()); delay > 0 {
			res.CancelAt(l.now())
			logger.Debug(r.Context(), "rate limited", zap.String("client", key), zap.Duration("retryAfter", delay))

			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"code":"RATE_LIMITED","message":"too many requests"}`))

			return
		}

		next.ServeHTTP(w, r)
	})
}
