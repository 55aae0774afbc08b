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

// transitionedToSelected is the edge that triggers the selection email: the
// new status is selected and the old one was anything else. Re-confirming an
// already selected team must not mail again.
func transitionedToSelected(oldStatus, newStatus string) bool {
	return newStatus == models.SelectionSelected && oldStatus != models.SelectionSelected
}

// UpdateSelection applies the selection transition and notifies the team
// @Summary Set a team's selection status
// @Description Updates selectionStatus (plus optional review comments and final score). Moving onto "selected" sends the selection email to every member; the email is fire-and-forget and never fails the update.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Registration ObjectId"
// @Param selection body SelectionRequest true "Selection transition"
// @Success 200 {object} models.Registration
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/registrations/{id}/selection [put]
// @Security Bearer
func UpdateSelection(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidObjectID(id) {
		response.Message(c, http.StatusBadRequest, ErrInvalidID)
		return
	}

	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}
	if !models.ValidSelectionStatus(req.SelectionStatus) {
		response.Message(c, http.StatusBadRequest, ErrInvalidSelection)
		return
	}

	update := bson.M{
		"selectionStatus": req.SelectionStatus,
		"updatedAt":       time.Now().UTC(),
	}
	if req.ReviewComments != nil {
		update["reviewComments"] = *req.ReviewComments
	}
	if req.FinalScore != nil {
		update["finalScore"] = *req.FinalScore
	}

	registrations, err := database.Registrations()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDatabaseUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultQueryTimeout)
	defer cancel()

	objID, _ := primitive.ObjectIDFromHex(id)

	// Return the pre-update document so the transition edge can be computed
	var before models.Registration
	start := time.Now()
	err = registrations.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&before)
	metrics.RecordDBOperation("update", database.RegistrationsCollection, start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Message(c, http.StatusNotFound, ErrNotFound)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update selection")
		return
	}

	// Post-commit notification: the update already succeeded, so a mail
	// failure is only logged.
	if transitionedToSelected(before.SelectionStatus, req.SelectionStatus) {
		emailService := services.NewEmailService()
		if err := emailService.SendSelectionEmail(before.TeamName, before.TeamCode, before.MemberEmails()); err != nil {
			log.Printf("Failed to send selection email for team %s: %v", before.TeamCode, err)
		}
	}

	realtime.BroadcastUpdate(realtime.RegistrationUpdate{
		UpdateType:      realtime.UpdateSelection,
		RegistrationID:  before.ID.Hex(),
		TeamName:        before.TeamName,
		TeamCode:        before.TeamCode,
		SelectionStatus: req.SelectionStatus,
	})

	after := before
	after.SelectionStatus = req.SelectionStatus
	if req.ReviewComments != nil {
		after.ReviewComments = *req.ReviewComments
	}
	if req.FinalScore != nil {
		after.FinalScore = req.FinalScore
	}
	response.Success(c, http.StatusOK, after)
}
