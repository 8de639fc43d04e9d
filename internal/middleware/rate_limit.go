package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"visionmines/internal/shared/apperror"
	"visionmines/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter keeps one token bucket per key.
type KeyedRateLimiter struct {
	limiters map[string]*limiterEntry
	mu       sync.Mutex
	r        rate.Limit // tokens per second
	b        int        // burst
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*limiterEntry),
		r:        r,
		b:        b,
	}
}

func (k *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	entry, exists := k.limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(k.r, k.b)}
		k.limiters[key] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter
}

// Sweep drops the buckets not used for at least idle and returns how many
// were dropped.
func (k *KeyedRateLimiter) Sweep(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)

	k.mu.Lock()
	defer k.mu.Unlock()

	n := 0
	for key, entry := range k.limiters {
		if !entry.lastSeen.After(cutoff) {
			delete(k.limiters, key)
			n++
		}
	}
	return n
}

func (k *KeyedRateLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}

// ipLimiters holds every limiter built by RateLimitByIP so one sweeper can
// evict idle clients across all routes.
var ipLimiters struct {
	mu   sync.Mutex
	list []*KeyedRateLimiter
}

// SweepIdleLimiters runs Sweep on every limiter built by RateLimitByIP.
func SweepIdleLimiters(idle time.Duration) int {
	ipLimiters.mu.Lock()
	list := append([]*KeyedRateLimiter(nil), ipLimiters.list...)
	ipLimiters.mu.Unlock()

	n := 0
	for _, k := range list {
		n += k.Sweep(idle)
	}
	return n
}

// RunLimiterSweep calls SweepIdleLimiters every interval until ctx is done.
func RunLimiterSweep(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			SweepIdleLimiters(idle)
		}
	}
}

// RateLimitByIP rejects requests beyond r per second (burst b) per client IP.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)

	ipLimiters.mu.Lock()
	ipLimiters.list = append(ipLimiters.list, limiter)
	ipLimiters.mu.Unlock()

	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			response.Abort(c, http.StatusTooManyRequests, apperror.CodeTooManyRequests, "Too many requests from this IP")
			return
		}
		c.Next()
	}
}
