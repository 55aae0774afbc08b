package config

import "time"

// Rate limit configuration for a class of endpoints
type RateLimitConfig struct {
	Window      time.Duration // Time window for counting requests
	MaxRequests int           // Maximum requests per window per client IP
	Message     string        // Error message returned once the limit is hit
}

// Per-route-class limits. Public routes get strict limits; admin routes rely
// on token auth instead and are not rate limited, except the AI analysis
// endpoint which is expensive.
var (
	RegistrationRateLimit = RateLimitConfig{
		Window:      time.Hour,
		MaxRequests: 5,
		Message:     "Too many registration attempts. Please try again later.",
	}

	ContactRateLimit = RateLimitConfig{
		Window:      15 * time.Minute,
		MaxRequests: 3,
		Message:     "Too many contact form submissions. Please try again later.",
	}

	TeamAccessRateLimit = RateLimitConfig{
		Window:      15 * time.Minute,
		MaxRequests: 30,
		Message:     "Too many requests. Please try again later.",
	}

	TeamSubmissionRateLimit = RateLimitConfig{
		Window:      time.Hour,
		MaxRequests: 10,
		Message:     "Too many submission attempts. Please try again later.",
	}

	AnalysisRateLimit = RateLimitConfig{
		Window:      time.Hour,
		MaxRequests: 50,
		Message:     "Too many analysis requests. Please try again later.",
	}
)
