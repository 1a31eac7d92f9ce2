//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"loyalty-engine/internal/handler/middleware"
	"loyalty-engine/internal/pkg/clock"
	"loyalty-engine/internal/pkg/config"
	"loyalty-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

var limiterEpoch = time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)

func newLimiter(rps float64, burst int, clk clock.Clock) *middleware.IPRateLimiter {
	return middleware.NewIPRateLimiter(config.RateLimitConfig{
		RequestsPerSecond: rps,
		Burst:             burst,
		IdleTTL:           10 * time.Minute,
		CleanupInterval:   time.Minute,
	}, clk)
}

func TestIPRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("burst is allowed then 429", func(t *testing.T) {
		limiter := newLimiter(0.001, 3, clock.NewMockClock(limiterEpoch))
		router := gin.New()
		router.POST("/orders", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

		for i := 0; i < 3; i++ {
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/orders", nil, "")
			assert.Equal(t, http.StatusCreated, rec.Code, "request %d", i+1)
		}

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/orders", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
	})

	t.Run("buckets are per IP", func(t *testing.T) {
		limiter := newLimiter(0.001, 1, clock.NewMockClock(limiterEpoch))

		a := limiter.GetLimiter("10.0.0.1")
		b := limiter.GetLimiter("10.0.0.2")
		assert.NotSame(t, a, b)
		assert.Same(t, a, limiter.GetLimiter("10.0.0.1"))

		assert.True(t, a.Allow())
		assert.False(t, a.Allow())
		assert.True(t, b.Allow())
	})

	t.Run("idle buckets are evicted and recent ones kept", func(t *testing.T) {
		clk := clock.NewMockClock(limiterEpoch)
		limiter := newLimiter(1, 1, clk)

		limiter.GetLimiter("10.0.0.1")
		clk.Add(6 * time.Minute)
		limiter.GetLimiter("10.0.0.2")
		assert.Equal(t, 2, limiter.Size())

		clk.Add(5 * time.Minute)
		assert.Equal(t, 1, limiter.Cleanup())
		assert.Equal(t, 1, limiter.Size())

		clk.Add(11 * time.Minute)
		assert.Equal(t, 1, limiter.Cleanup())
		assert.Equal(t, 0, limiter.Size())
	})

	t.Run("a returning client refreshes its bucket", func(t *testing.T) {
		clk := clock.NewMockClock(limiterEpoch)
		limiter := newLimiter(1, 1, clk)

		first := limiter.GetLimiter("10.0.0.1")
		clk.Add(9 * time.Minute)
		assert.Same(t, first, limiter.GetLimiter("10.0.0.1"))

		clk.Add(9 * time.Minute)
		assert.Equal(t, 0, limiter.Cleanup())
		assert.Same(t, first, limiter.GetLimiter("10.0.0.1"))
	})
}
