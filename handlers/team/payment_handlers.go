package team

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"api/config"
	"api/database"
	"api/metrics"
	"api/models"
	"api/realtime"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// 5MB cap on the payment proof image
const maxProofSize = 5 * 1024 * 1024

// UploadPaymentProof stores a team's payment proof image inline
// @Summary Upload payment proof
// @Description Accepts a multipart form with teamId, paymentDate and an image up to 5MB, stores it as a data URL on the registration and marks paymentStatus paid.
// @Tags Team
// @Accept mpfd
// @Produce json
// @Param teamId formData string true "Registration ObjectId"
// @Param paymentDate formData string true "Payment date"
// @Param paymentProof formData file true "Proof image"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /team/payment [post]
func UploadPaymentProof(c *gin.Context) {
	teamID := c.PostForm("teamId")
	paymentDate := c.PostForm("paymentDate")

	if teamID == "" || paymentDate == "" {
		response.Error(c, http.StatusBadRequest, "Team ID and payment date are required.")
		return
	}
	if !utils.IsValidObjectID(teamID) {
		response.Error(c, http.StatusBadRequest, "Invalid team ID format.")
		return
	}

	fileHeader, err := c.FormFile("paymentProof")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Payment proof image is required.")
		return
	}
	if fileHeader.Size > maxProofSize {
		response.Error(c, http.StatusBadRequest, "File size must be less than 5MB.")
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.Error(c, http.StatusBadRequest, "Only image files are allowed.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to read payment proof.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to read payment proof.")
		return
	}

	date, err := parsePaymentDate(paymentDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid payment date.")
		return
	}

	registrations, err := database.Registrations()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDatabaseUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultQueryTimeout)
	defer cancel()

	objID, _ := primitive.ObjectIDFromHex(teamID)
	proof := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))

	// paid is idempotently re-settable: a second upload just replaces the
	// proof, no prior-status check.
	var updated models.Registration
	start := time.Now()
	err = registrations.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"paymentStatus": models.PaymentPaid,
			"paymentProof":  proof,
			"paymentDate":   date,
			"updatedAt":     time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	metrics.RecordDBOperation("update", database.RegistrationsCollection, start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Error(c, http.StatusNotFound, "Team not found.")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to submit payment proof.")
		return
	}

	realtime.BroadcastUpdate(realtime.RegistrationUpdate{
		UpdateType:     realtime.UpdatePayment,
		RegistrationID: updated.ID.Hex(),
		TeamName:       updated.TeamName,
		TeamCode:       updated.TeamCode,
		PaymentStatus:  updated.PaymentStatus,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment proof submitted successfully!",
		"team": gin.H{
			"_id":           updated.ID.Hex(),
			"paymentStatus": updated.PaymentStatus,
			"paymentDate":   updated.PaymentDate,
		},
	})
}

// GetPaymentInfo returns a team's payment status, proof and date
// @Summary Get payment info
// @Tags Team
// @Produce json
// @Param teamId query string true "Registration ObjectId"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /team/payment [get]
func GetPaymentInfo(c *gin.Context) {
	teamID := c.Query("teamId")
	if teamID == "" {
		response.Error(c, http.StatusBadRequest, "Team ID is required.")
		return
	}
	if !utils.IsValidObjectID(teamID) {
		response.Error(c, http.StatusBadRequest, "Invalid team ID format.")
		return
	}

	registrations, err := database.Registrations()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDatabaseUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultQueryTimeout)
	defer cancel()

	objID, _ := primitive.ObjectIDFromHex(teamID)

	var team models.Registration
	start := time.Now()
	err = registrations.FindOne(ctx, bson.M{"_id": objID},
		options.FindOne().SetProjection(bson.M{
			"paymentStatus": 1,
			"paymentProof":  1,
			"paymentDate":   1,
		}),
	).Decode(&team)
	metrics.RecordDBOperation("find", database.RegistrationsCollection, start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Error(c, http.StatusNotFound, "Team not found.")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch payment information.")
		return
	}

	status := team.PaymentStatus
	if status == "" {
		status = models.PaymentUnpaid
	}
	c.JSON(http.StatusOK, gin.H{
		"paymentStatus": status,
		"paymentProof":  team.PaymentProof,
		"paymentDate":   team.PaymentDate,
		"amount":        config.RegistrationFee,
		"upiId":         config.UpiID,
	})
}

// parsePaymentDate accepts the date formats the dashboard sends
func parsePaymentDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", value)
}
