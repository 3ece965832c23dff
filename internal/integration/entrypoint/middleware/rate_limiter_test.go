package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedEngine(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func hit(engine *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_BlocksAfterMaxAttempts(t *testing.T) {
	engine := newLimitedEngine(NewRateLimiterWithConfig(2, time.Minute, true))

	assert.Equal(t, http.StatusOK, hit(engine, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(engine, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(engine, "10.0.0.1"))

	// Other clients keep their own window.
	assert.Equal(t, http.StatusOK, hit(engine, "10.0.0.2"))
}

func TestRateLimiter_Disabled(t *testing.T) {
	engine := newLimitedEngine(NewRateLimiterWithConfig(1, time.Minute, false))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(engine, "10.0.0.1"))
	}
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	current := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(1, time.Minute, true)
	rl.now = func() time.Time { return current }

	assert.True(t, rl.allow("key"))
	assert.False(t, rl.allow("key"))

	current = current.Add(time.Minute)
	assert.True(t, rl.allow("key"))
}

func TestRateLimiter_DefaultsForNonPositiveValues(t *testing.T) {
	rl := NewRateLimiterWithConfig(0, 0, true)

	assert.Equal(t, defaultMaxAttempts, rl.limit)
	assert.Equal(t, defaultWindowDuration, rl.length)
}

func TestRateLimiter_CleanupDropsExpiredEntries(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, 10*time.Millisecond, true)
	rl.allow("a")
	rl.allow("b")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rl.StartCleanup(ctx, 5*time.Millisecond) }()

	assert.Eventually(t, func() bool {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		return len(rl.windows) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
