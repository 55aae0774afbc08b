package admin

import (
	"api/config"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all admin routes behind bearer-token auth
// r: the RouterGroup to which routes are added
// rl: the shared rate limiter
func RegisterRoutes(r *gin.RouterGroup, rl *middleware.RateLimiter) {
	admin := r.Group("/admin", middleware.AdminAuth())
	{
		admin.GET("/registrations", ListRegistrations)
		admin.GET("/registrations/export", ExportRegistrations)
		admin.GET("/registrations/live", LiveFeed)
		admin.PUT("/registrations/:id", UpdateRegistration)
		admin.DELETE("/registrations/:id", DeleteRegistration)
		admin.PUT("/registrations/:id/payment", VerifyPayment)

		admin.GET("/team/:teamCode", GetTeamByCode)
		admin.PUT("/team/:teamCode", UpdateTeamByCode)

		admin.POST("/analyze/:teamCode",
			middleware.RateLimit(rl, "analysis", config.AnalysisRateLimit),
			AnalyzeTeam)

		admin.GET("/payments", ListPayments)
		admin.GET("/payments/:id/image", GetPaymentImage)
	}

	// Selection transitions require the dedicated selection token
	r.PUT("/admin/registrations/:id/selection", middleware.SelectAuth(), UpdateSelection)
}
