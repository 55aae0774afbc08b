package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListRegistrations returns every registration, newest first
// @Summary List all registrations
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Registration
// @Failure 401 {object} map[string]string
// @Router /admin/registrations [get]
// @Security Bearer
func ListRegistrations(c *gin.Context) {
	registrations, err := database.Registrations()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDatabaseUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultQueryTimeout)
	defer cancel()

	start := time.Now()
	cursor, err := registrations.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	metrics.RecordDBOperation("find", database.RegistrationsCollection, start)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchRegistrations)
		return
	}
	defer cursor.Close(ctx)

	docs := make([]models.Registration, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchRegistrations)
		return
	}

	response.Success(c, http.StatusOK, docs)
}

// UpdateRegistration applies a whitelisted admin edit to a registration
// @Summary Update a registration
// @Description Whitelisted field edit, including direct status assignment. Status values are validated against their enums.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Registration ObjectId"
// @Success 200 {object} models.Registration
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/registrations/{id} [put]
// @Security Bearer
func UpdateRegistration(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidObjectID(id) {
		response.Message(c, http.StatusBadRequest, ErrInvalidID)
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	update := bson.M{}
	for _, key := range allowedUpdateFields {
		if value, ok := body[key]; ok {
			update[key] = value
		}
	}

	if status, ok := update["submissionStatus"].(string); ok && !models.ValidSubmissionStatus(status) {
		response.Error(c, http.StatusBadRequest, "Invalid submissionStatus")
		return
	}
	if status, ok := update["selectionStatus"].(string); ok && !models.ValidSelectionStatus(status) {
		response.Error(c, http.StatusBadRequest, ErrInvalidSelection)
		return
	}
	if status, ok := update["paymentStatus"].(string); ok && !models.ValidPaymentStatus(status) {
		response.Error(c, http.StatusBadRequest, "Invalid paymentStatus")
		return
	}

	if details, ok := body["submissionDetails"].(map[string]interface{}); ok {
		update["submissionDetails"] = bson.M{
			"githubRepo":       stringOr(details["githubRepo"], ""),
			"liveDemo":         stringOr(details["liveDemo"], ""),
			"presentationLink": stringOr(details["presentationLink"], ""),
			"additionalNotes":  stringOr(details["additionalNotes"], ""),
			"submittedAt":      details["submittedAt"],
		}
	}

	if members, ok := body["members"].([]interface{}); ok {
		cleaned := make([]bson.M, 0, len(members))
		for _, raw := range members {
			m, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			cleaned = append(cleaned, bson.M{
				"name":     stringOr(m["name"], ""),
				"email":    stringOr(m["email"], ""),
				"phone":    stringOr(m["phone"], ""),
				"usn":      stringOr(m["usn"], ""),
				"linkedin": stringOr(m["linkedin"], ""),
				"github":   stringOr(m["github"], ""),
			})
		}
		update["members"] = cleaned
	}

	update["updatedAt"] = time.Now().UTC()

	registrations, err := database.Registrations()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDatabaseUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultQueryTimeout)
	defer cancel()

	objID, _ := primitive.ObjectIDFromHex(id)

	var doc models.Registration
	start := time.Now()
	err = registrations.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	metrics.RecordDBOperation("update", database.RegistrationsCollection, start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Message(c, http.StatusNotFound, ErrNotFound)
		return
	}
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrUpdateFailed)
		return
	}

	response.Success(c, http.StatusOK, doc)
}

// DeleteRegistration removes a registration permanently
// @Summary Delete a registration
// @Tags Admin
// @Produce json
// @Param id path string true "Registration ObjectId"
// @Success 200 {object} models.Registration
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/registrations/{id} [delete]
// @Security Bearer
func DeleteRegistration(c *gin.Context) {
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

	var doc models.Registration
	start := time.Now()
	err = registrations.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&doc)
	metrics.RecordDBOperation("delete", database.RegistrationsCollection, start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Message(c, http.StatusNotFound, ErrNotFound)
		return
	}
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrDeleteFailed)
		return
	}

	response.Success(c, http.StatusOK, doc)
}

// GetTeamByCode returns a single registration by team code
// @Summary Get a team by code
// @Tags Admin
// @Produce json
// @Param teamCode path string true "Team code"
// @Success 200 {object} models.Registration
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/team/{teamCode} [get]
// @Security Bearer
func GetTeamByCode(c *gin.Context) {
	teamCode := utils.Truncate(utils.SanitizeString(c.Param("teamCode")), 20)

	registrations, err := database.Registrations()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDatabaseUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultQueryTimeout)
	defer cancel()

	var team models.Registration
	start := time.Now()
	err = registrations.FindOne(ctx, bson.M{"teamCode": strings.ToUpper(teamCode)}).Decode(&team)
	metrics.RecordDBOperation("find", database.RegistrationsCollection, start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Message(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchTeam)
		return
	}

	response.Success(c, http.StatusOK, team)
}

// UpdateTeamByCode applies a review edit (selection status, comments, score)
// @Summary Update a team's review fields by code
// @Tags Admin
// @Accept json
// @Produce json
// @Param teamCode path string true "Team code"
// @Param review body TeamReviewRequest true "Review fields"
// @Success 200 {object} models.Registration
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/team/{teamCode} [put]
// @Security Bearer
func UpdateTeamByCode(c *gin.Context) {
	teamCode := utils.Truncate(utils.SanitizeString(c.Param("teamCode")), 20)

	var req TeamReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}
	if req.SelectionStatus != "" && !models.ValidSelectionStatus(req.SelectionStatus) {
		response.Message(c, http.StatusBadRequest, ErrInvalidSelection)
		return
	}

	update := bson.M{"updatedAt": time.Now().UTC()}
	if req.SelectionStatus != "" {
		update["selectionStatus"] = req.SelectionStatus
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

	var team models.Registration
	start := time.Now()
	err = registrations.FindOneAndUpdate(ctx,
		bson.M{"teamCode": strings.ToUpper(teamCode)},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&team)
	metrics.RecordDBOperation("update", database.RegistrationsCollection, start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Message(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrUpdateFailed)
		return
	}

	response.Success(c, http.StatusOK, team)
}

func stringOr(value interface{}, fallback string) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fallback
}
