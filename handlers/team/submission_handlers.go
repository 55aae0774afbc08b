package team

import (
	"context"
	"errors"
	"net/http"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/realtime"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubmitProject records a team's project deliverable
// @Summary Submit a project
// @Description One-shot submission: sets the submission details with a server-side timestamp and advances submissionStatus to submitted. Resubmission is rejected once the status is submitted or under_review.
// @Tags Team
// @Accept json
// @Produce json
// @Param teamCode path string true "Identifying token"
// @Param projectName query string true "Project title"
// @Param submission body SubmissionRequest true "Submission details"
// @Success 200 {object} models.Registration
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /team/{teamCode}/submit [post]
func SubmitProject(c *gin.Context) {
	token := utils.SanitizeString(c.Param("teamCode"))
	projectName := c.Query("projectName")

	if token == "" {
		response.Message(c, http.StatusBadRequest, ErrTeamCodeRequired)
		return
	}
	if projectName == "" {
		response.Message(c, http.StatusBadRequest, "Project title is required")
		return
	}

	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(c, errs)
		return
	}

	registrations, err := database.Registrations()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDatabaseUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultQueryTimeout)
	defer cancel()

	// Composite lookup: project title plus the first member's phone number,
	// which the dashboard sends as the identifying token.
	filter := bson.M{
		"projectTitle":    projectTitleFilter(projectName),
		"members.0.phone": token,
	}

	var team models.Registration
	start := time.Now()
	err = registrations.FindOne(ctx, filter).Decode(&team)
	metrics.RecordDBOperation("find", database.RegistrationsCollection, start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Message(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchFailed)
		return
	}

	// No resubmission once the project entered the review pipeline
	if team.SubmissionStatus == models.SubmissionSubmitted ||
		team.SubmissionStatus == models.SubmissionUnderReview {
		response.Message(c, http.StatusBadRequest, ErrAlreadySubmitted)
		return
	}

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"submissionDetails": models.SubmissionDetails{
				GithubRepo:       req.GithubRepo,
				LiveDemo:         req.LiveDemo,
				PresentationLink: req.PresentationLink,
				AdditionalNotes:  utils.SanitizeString(req.AdditionalNotes),
				SubmittedAt:      &now,
			},
			"submissionStatus": models.SubmissionSubmitted,
			"updatedAt":        now,
		},
	}

	var updated models.Registration
	start = time.Now()
	err = registrations.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	metrics.RecordDBOperation("update", database.RegistrationsCollection, start)

	// The team can be deleted between the guard read and the update
	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Message(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrUpdateFailed)
		return
	}

	realtime.BroadcastUpdate(realtime.RegistrationUpdate{
		UpdateType:       realtime.UpdateSubmitted,
		RegistrationID:   updated.ID.Hex(),
		TeamName:         updated.TeamName,
		TeamCode:         updated.TeamCode,
		SubmissionStatus: updated.SubmissionStatus,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Project submitted successfully!",
		"team":    updated,
	})
}
