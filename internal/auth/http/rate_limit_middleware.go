// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/allisson/catalog/internal/errors"
	"github.com/allisson/catalog/internal/httputil"
)

// rateLimiterStore holds keyed rate limiters with automatic cleanup.
type rateLimiterStore struct {
	limiters sync.Map // map[string]*rateLimiterEntry
	rps      float64
	burst    int
}

// rateLimiterEntry holds a rate limiter and last access time for cleanup.
type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

func newRateLimiterStore(rps float64, burst int) *rateLimiterStore {
	store := &rateLimiterStore{
		rps:   rps,
		burst: burst,
	}

	// Start cleanup goroutine for stale limiters (every 5 minutes)
	go store.cleanupStale(context.Background(), 5*time.Minute)

	return store
}

// RateLimitMiddleware enforces per-principal rate limiting.
//
// MUST be used after AuthenticationMiddleware. Requests are keyed by the principal's
// identity; anonymous requests that a route still admits fall back to the client IP.
//
// Returns:
//   - 429 Too Many Requests: Rate limit exceeded (includes Retry-After header)
//   - Continues: Request allowed within rate limit
func RateLimitMiddleware(rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newRateLimiterStore(rps, burst)

	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if principal, ok := GetPrincipal(c.Request.Context()); ok {
			key = "principal:" + principal.Identity
		}

		store.enforce(c, key, logger)
	}
}

// AuthRateLimitMiddleware enforces per-IP rate limiting on the unauthenticated
// register and login endpoints, slowing credential stuffing.
//
// Uses c.ClientIP() which honors X-Forwarded-For and X-Real-IP from trusted proxies.
func AuthRateLimitMiddleware(rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newRateLimiterStore(rps, burst)

	return func(c *gin.Context) {
		store.enforce(c, c.ClientIP(), logger)
	}
}

// enforce lets the request continue or writes a 429 envelope with Retry-After.
func (s *rateLimiterStore) enforce(c *gin.Context, key string, logger *slog.Logger) {
	limiter := s.getLimiter(key)

	if limiter.Allow() {
		c.Next()
		return
	}

	reservation := limiter.Reserve()
	retryAfter := int(math.Ceil(reservation.Delay().Seconds()))
	reservation.Cancel()
	if retryAfter < 1 {
		retryAfter = 1
	}

	logger.DebugContext(c.Request.Context(), "rate limit exceeded",
		slog.String("key", key),
		slog.Int("retry_after", retryAfter))

	c.Header("Retry-After", strconv.Itoa(retryAfter))
	httputil.HandleErrorGin(c, apperrors.ErrTooManyRequests, logger)
}

// getLimiter retrieves or creates the rate limiter for key.
func (s *rateLimiterStore) getLimiter(key string) *rate.Limiter {
	if val, ok := s.limiters.Load(key); ok {
		entry := val.(*rateLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = time.Now()
		entry.mu.Unlock()
		return entry.limiter
	}

	entry := &rateLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: time.Now(),
	}

	// LoadOrStore keeps concurrent first requests for one key on the same limiter.
	actual, _ := s.limiters.LoadOrStore(key, entry)
	return actual.(*rateLimiterEntry).limiter
}

// cleanupStale removes rate limiters that haven't been accessed recently.
func (s *rateLimiterStore) cleanupStale(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.removeIdleSince(time.Now().Add(-1 * time.Hour))
		}
	}
}

// removeIdleSince drops limiters last used before threshold.
func (s *rateLimiterStore) removeIdleSince(threshold time.Time) {
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*rateLimiterEntry)
		entry.mu.Lock()
		shouldDelete := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if shouldDelete {
			s.limiters.Delete(key)
		}
		return true
	})
}
