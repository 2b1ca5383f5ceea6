// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	domainerror "github.com/finai/backend/internal/domain/error"
	"github.com/finai/backend/internal/integration/entrypoint/dto"
)

const (
	defaultMaxRequests = 20
	defaultWindow      = time.Minute
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles advisor calls per client IP. Each client gets a token
// bucket holding maxRequests tokens that refills completely once per window.
type RateLimiter struct {
	mu          sync.Mutex
	clients     map[string]*clientBucket
	maxRequests int
	window      time.Duration
	disabled    bool
	now         func() time.Time
}

// NewRateLimiter creates a new rate limiter with default settings.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultMaxRequests, defaultWindow)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
// A non-positive maxRequests disables limiting.
func NewRateLimiterWithConfig(maxRequests int, window time.Duration) *RateLimiter {
	if window <= 0 {
		window = defaultWindow
	}
	return &RateLimiter{
		clients:     make(map[string]*clientBucket),
		maxRequests: maxRequests,
		window:      window,
		disabled:    maxRequests <= 0,
		now:         time.Now,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.disabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(clientIP) {
			c.Header("Retry-After", rl.retryAfter())
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// retryAfter renders the window as whole delay-seconds, at least 1.
func (rl *RateLimiter) retryAfter() string {
	seconds := int(rl.window.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	bucket, ok := rl.clients[key]
	if !ok {
		every := rl.window / time.Duration(rl.maxRequests)
		bucket = &clientBucket{limiter: rate.NewLimiter(rate.Every(every), rl.maxRequests)}
		rl.clients[key] = bucket
	}
	bucket.lastSeen = now

	return bucket.limiter.AllowN(now, 1)
}

// Reset clears the rate limiter state.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.clients = make(map[string]*clientBucket)
}

// Cleanup drops clients idle for longer than one window; their buckets are full again anyway.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.window)
	for key, bucket := range rl.clients {
		if bucket.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

// RunCleanup calls Cleanup once per window until ctx is cancelled. It blocks.
func (rl *RateLimiter) RunCleanup(ctx context.Context) {
	if rl.disabled {
		return
	}

	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Rate limiter cleanup stopped")
			return
		case <-ticker.C:
			rl.Cleanup()
		}
	}
}
