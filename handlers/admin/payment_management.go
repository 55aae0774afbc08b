package admin

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/realtime"
	"api/services"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VerifyPayment marks a team's payment as verified and notifies the team
// @Summary Verify a team's payment
// @Description Sets paymentStatus to verified. On the unverified-to-verified edge the team gets the payment-confirmation email; the email never fails the update.
// @Tags Admin
// @Produce json
// @Param id path string true "Registration ObjectId"
// @Success 200 {object} models.Registration
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/registrations/{id}/payment [put]
// @Security Bearer
func VerifyPayment(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidObjectID(id) {
		response.Message(c, http.StatusBadRequest, ErrInvalidID)
		return
	}

	registrations, err := database.Registrations()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDatabaseUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultQueryTimeout)
	defer cancel()

	objID, _ := primitive.ObjectIDFromHex(id)

	var before models.Registration
	start := time.Now()
	err = registrations.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"paymentStatus": models.PaymentVerified,
			"updatedAt":     time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&before)
	metrics.RecordDBOperation("update", database.RegistrationsCollection, start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Message(c, http.StatusNotFound, ErrNotFound)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to verify payment")
		return
	}

	// Same fire-and-forget contract as the selection email
	if before.PaymentStatus != models.PaymentVerified {
		emailService := services.NewEmailService()
		if err := emailService.SendPaymentVerifiedEmail(before.TeamName, before.TeamCode, before.MemberEmails()); err != nil {
			log.Printf("Failed to send payment verification email for team %s: %v", before.TeamCode, err)
		}
	}

	realtime.BroadcastUpdate(realtime.RegistrationUpdate{
		UpdateType:     realtime.UpdatePayment,
		RegistrationID: before.ID.Hex(),
		TeamName:       before.TeamName,
		TeamCode:       before.TeamCode,
		PaymentStatus:  models.PaymentVerified,
	})

	after := before
	after.PaymentStatus = models.PaymentVerified
	response.Success(c, http.StatusOK, after)
}

// ListPayments returns every standalone payment record, newest first
// @Summary List payment form records
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Payment
// @Failure 401 {object} map[string]string
// @Router /admin/payments [get]
// @Security Bearer
func ListPayments(c *gin.Context) {
	payments, err := database.Payments()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDatabaseUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultQueryTimeout)
	defer cancel()

	start := time.Now()
	cursor, err := payments.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	metrics.RecordDBOperation("find", database.PaymentsCollection, start)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error fetching payments")
		return
	}
	defer cursor.Close(ctx)

	docs := make([]models.Payment, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		response.Error(c, http.StatusInternalServerError, "Error fetching payments")
		return
	}

	response.Success(c, http.StatusOK, docs)
}

// GetPaymentImage streams the stored proof image
// @Summary Get a payment record's proof image
// @Tags Admin
// @Produce png
// @Param id path string true "Payment ObjectId"
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/payments/{id}/image [get]
// @Security Bearer
func GetPaymentImage(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidObjectID(id) {
		response.Message(c, http.StatusBadRequest, ErrInvalidID)
		return
	}

	payments, err := database.Payments()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDatabaseUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultQueryTimeout)
	defer cancel()

	objID, _ := primitive.ObjectIDFromHex(id)

	var payment models.Payment
	start := time.Now()
	err = payments.FindOne(ctx, bson.M{"_id": objID}).Decode(&payment)
	metrics.RecordDBOperation("find", database.PaymentsCollection, start)

	if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && payment.Image == nil) {
		response.Message(c, http.StatusNotFound, "Image not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error fetching payment image")
		return
	}

	contentType := payment.Image.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}
	c.Header("Cache-Control", "public, max-age=31536000")
	c.Data(http.StatusOK, contentType, payment.Image.Data)
}
