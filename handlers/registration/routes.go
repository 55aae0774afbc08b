package registration

import (
	"api/config"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the public registration endpoint
// r: the RouterGroup to which routes are added
// rl: the shared rate limiter
func RegisterRoutes(r *gin.RouterGroup, rl *middleware.RateLimiter) {
	r.POST("/registration",
		middleware.RateLimit(rl, "registration", config.RegistrationRateLimit),
		CreateRegistration)
}
