package registration

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
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
)

const defaultQueryTimeout = 5 * time.Second

// CreateRegistration registers a new team
// @Summary Register a team
// @Description Validates the team and its 2-4 members, generates a unique team code and creates the registration. Every member gets a confirmation email, best effort.
// @Tags Registration
// @Accept json
// @Produce json
// @Param registration body RegistrationRequest true "Team registration"
// @Success 201 {object} models.Registration
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /registration [post]
func CreateRegistration(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidFormat+": "+err.Error())
		return
	}

	req.Sanitize()
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

	// Emails are globally unique across teams; checked here rather than by a
	// database constraint because members are an embedded array.
	emails := make([]string, 0, len(req.Members))
	for _, m := range req.Members {
		emails = append(emails, strings.ToLower(m.Email))
	}

	start := time.Now()
	taken, err := registrations.CountDocuments(ctx, bson.M{"members.email": bson.M{"$in": emails}})
	metrics.RecordDBOperation("count", database.RegistrationsCollection, start)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCreateFailed)
		return
	}
	if taken > 0 {
		response.Error(c, http.StatusBadRequest, ErrEmailExists)
		return
	}

	code, err := utils.GenerateTeamCode(func(code string) (bool, error) {
		err := registrations.FindOne(ctx, bson.M{"teamCode": code}).Err()
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		log.Printf("Team code generation failed: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrCodeGeneration)
		return
	}

	now := time.Now().UTC()
	reg := models.Registration{
		ID:                 primitive.NewObjectID(),
		TeamName:           req.TeamName,
		CollegeName:        req.CollegeName,
		ProjectTitle:       req.ProjectTitle,
		ProjectDescription: req.ProjectDescription,
		TeamLeadID:         req.TeamLeadID,
		TeamCode:           code,
		SubmissionStatus:   models.SubmissionNotSubmitted,
		SelectionStatus:    models.SelectionPending,
		PaymentStatus:      models.PaymentUnpaid,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, m := range req.Members {
		reg.Members = append(reg.Members, models.Member{
			Name:     m.Name,
			Email:    strings.ToLower(m.Email),
			Phone:    m.Phone,
			USN:      m.USN,
			LinkedIn: m.LinkedIn,
			GitHub:   m.GitHub,
		})
	}

	start = time.Now()
	_, err = registrations.InsertOne(ctx, reg)
	metrics.RecordDBOperation("insert", database.RegistrationsCollection, start)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost a race on the teamCode unique index
			response.Error(c, http.StatusBadRequest, "Team code already exists. Please try registering again.")
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrCreateFailed)
		return
	}
	metrics.RegistrationsCreated.Inc()

	// Confirmation mail is best effort: a failure is logged and the
	// registration still succeeds.
	emailService := services.NewEmailService()
	for _, member := range reg.Members {
		if err := emailService.SendRegistrationConfirmation(member.Email, reg.TeamName, reg.TeamCode); err != nil {
			log.Printf("Failed to send confirmation email to %s: %v", member.Email, err)
		}
	}

	realtime.BroadcastUpdate(realtime.RegistrationUpdate{
		UpdateType:     realtime.UpdateRegistered,
		RegistrationID: reg.ID.Hex(),
		TeamName:       reg.TeamName,
		TeamCode:       reg.TeamCode,
	})

	response.Success(c, http.StatusCreated, reg)
}
