package payments

import (
	"context"
	"io"
	"net/http"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultQueryTimeout = 5 * time.Second
	maxMessageLength    = 2000
)

// SubmitPaymentForm saves a generic payment-proof record
// @Summary Submit the public payment form
// @Description Stores name, email, message and an optional proof image as a standalone payment record
// @Tags Payments
// @Accept mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param message formData string true "Message"
// @Param image formData file false "Proof image"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /payment [post]
func SubmitPaymentForm(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	message := c.PostForm("message")

	if name == "" || email == "" || message == "" {
		response.Error(c, http.StatusBadRequest, "Please fill all fields.")
		return
	}
	if !utils.IsValidEmail(email) {
		response.Error(c, http.StatusBadRequest, "Invalid email address.")
		return
	}
	if len(message) > maxMessageLength {
		response.Error(c, http.StatusBadRequest, "Message is too long. Maximum 2000 characters.")
		return
	}

	now := time.Now().UTC()
	payment := models.Payment{
		ID:        primitive.NewObjectID(),
		Name:      utils.Truncate(utils.SanitizeString(name), 100),
		Email:     email,
		Message:   utils.Truncate(utils.SanitizeString(message), maxMessageLength),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to read image.")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to read image.")
			return
		}
		payment.Image = &models.PaymentImage{
			Data:        data,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Filename:    fileHeader.Filename,
		}
	}

	collection, err := database.Payments()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Database unavailable")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultQueryTimeout)
	defer cancel()

	start := time.Now()
	_, err = collection.InsertOne(ctx, payment)
	metrics.RecordDBOperation("insert", database.PaymentsCollection, start)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to save data.")
		return
	}

	response.Message(c, http.StatusOK, "Payment data saved successfully!")
}
