package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

const (
	defaultMaxAttempts    = 5
	defaultWindowDuration = time.Minute
)

// window counts the hits of one client IP until expiresAt.
type window struct {
	hits      int
	expiresAt time.Time
}

// RateLimiter is a fixed-window, per-client-IP limiter for credential endpoints.
type RateLimiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int
	length   time.Duration
	disabled bool
	now      func() time.Time
}

// NewRateLimiterWithConfig creates a limiter allowing maxAttempts requests per windowDuration.
// Non-positive values fall back to 5 attempts per minute. A disabled limiter lets everything through.
func NewRateLimiterWithConfig(maxAttempts int, windowDuration time.Duration, enabled bool) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &RateLimiter{
		windows:  make(map[string]*window),
		limit:    maxAttempts,
		length:   windowDuration,
		disabled: !enabled,
		now:      time.Now,
	}
}

// Middleware answers 429 once a client exhausted its window.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.disabled || rl.allow(c.ClientIP()) {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
			Error: "Too many requests. Please try again later.",
			Code:  string(domainerror.ErrCodeRateLimited),
		})
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || !now.Before(w.expiresAt) {
		rl.windows[key] = &window{hits: 1, expiresAt: now.Add(rl.length)}
		return true
	}
	if w.hits >= rl.limit {
		return false
	}
	w.hits++
	return true
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, w := range rl.windows {
		if !now.Before(w.expiresAt) {
			delete(rl.windows, key)
		}
	}
}

// StartCleanup drops expired windows every interval until ctx is cancelled.
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rl.sweep()
		}
	}
}
