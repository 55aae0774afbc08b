package team

import (
	"api/config"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all team self-service routes
// r: the RouterGroup to which routes are added
// rl: the shared rate limiter
func RegisterRoutes(r *gin.RouterGroup, rl *middleware.RateLimiter) {
	access := middleware.RateLimit(rl, "teamAccess", config.TeamAccessRateLimit)
	submit := middleware.RateLimit(rl, "teamSubmission", config.TeamSubmissionRateLimit)

	teams := r.Group("/team")
	{
		teams.GET("/lead", access, GetTeamByLead)
		teams.GET("/payment", access, GetPaymentInfo)
		teams.POST("/payment", submit, UploadPaymentProof)
		teams.GET("/:teamCode", access, GetTeam)
		teams.PUT("/:teamCode", access, UpdateTeam)
		teams.POST("/:teamCode/submit", submit, SubmitProject)
	}
}
