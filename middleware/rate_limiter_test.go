package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"api/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllow(t *testing.T) {
	cfg := config.RateLimitConfig{
		Window:      time.Hour,
		MaxRequests: 3,
		Message:     "slow down",
	}

	rl := NewRateLimiter()

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("registration:1.2.3.4", cfg)
		require.True(t, allowed, "request %d should pass", i+1)
	}

	allowed, retryAfter := rl.Allow("registration:1.2.3.4", cfg)
	require.False(t, allowed)
	require.Greater(t, retryAfter, time.Duration(0))

	// Other keys have their own window
	allowed, _ = rl.Allow("registration:5.6.7.8", cfg)
	require.True(t, allowed)
	allowed, _ = rl.Allow("contact:1.2.3.4", cfg)
	require.True(t, allowed)
}

func TestRateLimiterWindowReset(t *testing.T) {
	cfg := config.RateLimitConfig{
		Window:      10 * time.Millisecond,
		MaxRequests: 1,
		Message:     "slow down",
	}

	rl := NewRateLimiter()

	allowed, _ := rl.Allow("k", cfg)
	require.True(t, allowed)
	allowed, _ = rl.Allow("k", cfg)
	require.False(t, allowed)

	time.Sleep(20 * time.Millisecond)

	allowed, _ = rl.Allow("k", cfg)
	require.True(t, allowed, "expired window should reset the count")
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.RateLimitConfig{
		Window:      time.Hour,
		MaxRequests: 2,
		Message:     "Too many registration attempts, please try again later.",
	}

	r := gin.New()
	r.POST("/registration", RateLimit(NewRateLimiter(), "registration", cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/registration", nil)
		req.RemoteAddr = "10.0.0.1:4444"
		r.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusOK, do().Code)
	require.Equal(t, http.StatusOK, do().Code)

	w := do()
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.NotEmpty(t, w.Header().Get("Retry-After"))
	require.Contains(t, w.Body.String(), cfg.Message)
}
