package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"api/config"
	"api/metrics"

	"github.com/gin-gonic/gin"
)

const sweepInterval = 10 * time.Minute

// RateLimiter tracks fixed-window request counts keyed by endpoint class and
// client IP. Entries past their window are dropped by a periodic sweep.
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
}

type windowEntry struct {
	count     int
	resetTime time.Time
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		entries: make(map[string]*windowEntry),
	}
	go rl.sweep()
	return rl
}

func (rl *RateLimiter) sweep() {
	for {
		time.Sleep(sweepInterval)

		rl.mu.Lock()
		now := time.Now()
		for key, entry := range rl.entries {
			if entry.resetTime.Before(now) {
				delete(rl.entries, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Allow counts one request against the window for key. When the limit is
// exceeded it returns false along with the time remaining until reset.
func (rl *RateLimiter) Allow(key string, cfg config.RateLimitConfig) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, exists := rl.entries[key]
	if !exists || entry.resetTime.Before(now) {
		rl.entries[key] = &windowEntry{count: 1, resetTime: now.Add(cfg.Window)}
		return true, 0
	}

	if entry.count >= cfg.MaxRequests {
		return false, time.Until(entry.resetTime)
	}

	entry.count++
	return true, 0
}

// RateLimit limits requests per client IP for one endpoint class. Rejected
// requests get a 429 with a Retry-After header in seconds.
func RateLimit(rl *RateLimiter, class string, cfg config.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := class + ":" + c.ClientIP()

		allowed, retryAfter := rl.Allow(key, cfg)
		if !allowed {
			metrics.RateLimiterRejections.WithLabelValues(class).Inc()

			seconds := int(retryAfter.Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": cfg.Message,
			})
			return
		}
		c.Next()
	}
}
