package routes

import (
	"net/http"

	"api/config"
	"api/middleware"
	"api/services"
	"api/utils"

	"github.com/gin-gonic/gin"
)

const maxContactMessageLength = 2000

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// @Summary Submit a contact message
// @Description Sends the message to the organizing team's inbox
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact message details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /contact [post]
func submitContactMessage(c *gin.Context) {
	var request ContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format: " + err.Error(),
		})
		return
	}

	request.Name = utils.SanitizeString(request.Name)
	request.Message = utils.SanitizeString(request.Message)
	if len(request.Message) > maxContactMessageLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is too long"})
		return
	}

	emailService := services.NewEmailService()
	if err := emailService.SendContactEmail(request.Name, request.Email, request.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to send contact email",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Message sent successfully",
	})
}

// RegisterContactRoutes registers the public contact endpoint
func RegisterContactRoutes(r *gin.RouterGroup, rl *middleware.RateLimiter) {
	r.POST("/contact",
		middleware.RateLimit(rl, "contact", config.ContactRateLimit),
		submitContactMessage)
}
