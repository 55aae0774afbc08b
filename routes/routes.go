package routes

import (
	"api/handlers/admin"
	"api/handlers/payments"
	"api/handlers/registration"
	"api/handlers/team"
	"api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Register the endpoints for the API
func Register(r *gin.Engine) {
	api := r.Group("/api")

	// Add metrics middleware to all routes
	api.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter()

	RegisterPingRoutes(api)
	RegisterContactRoutes(api, rateLimiter)
	registration.RegisterRoutes(api, rateLimiter)
	team.RegisterRoutes(api, rateLimiter)
	payments.RegisterRoutes(api, rateLimiter)
	admin.RegisterRoutes(api, rateLimiter)

	// Register metrics endpoint
	RegisterMetricsRoutes(api)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// RegisterMetricsRoutes registers routes for the metrics API
func RegisterMetricsRoutes(r *gin.RouterGroup) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
