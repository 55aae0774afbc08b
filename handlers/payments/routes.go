package payments

import (
	"api/config"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the public payment form endpoint
func RegisterRoutes(r *gin.RouterGroup, rl *middleware.RateLimiter) {
	r.POST("/payment",
		middleware.RateLimit(rl, "contact", config.ContactRateLimit),
		SubmitPaymentForm)
}
