package team

import (
	"context"
	"errors"
	"net/http"
	"regexp"
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

const defaultQueryTimeout = 5 * time.Second

// projectTitleFilter matches projectTitle exactly, case-insensitive
func projectTitleFilter(projectName string) primitive.Regex {
	return primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(strings.TrimSpace(projectName)) + "$",
		Options: "i",
	}
}

// GetTeam fetches a team's registration for the dashboard
// @Summary Get a team by code and project name
// @Description The team code plus the exact project title (case-insensitive) act as the dashboard credential
// @Tags Team
// @Produce json
// @Param teamCode path string true "Team code"
// @Param projectName query string true "Project title"
// @Success 200 {object} models.Registration
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /team/{teamCode} [get]
func GetTeam(c *gin.Context) {
	teamCode := utils.SanitizeString(c.Param("teamCode"))
	projectName := c.Query("projectName")

	if teamCode == "" {
		response.Message(c, http.StatusBadRequest, ErrTeamCodeRequired)
		return
	}
	if projectName == "" {
		response.Message(c, http.StatusBadRequest, ErrProjectNameRequired)
		return
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
	err = registrations.FindOne(ctx, bson.M{
		"teamCode":     strings.ToUpper(teamCode),
		"projectTitle": projectTitleFilter(projectName),
	}).Decode(&team)
	metrics.RecordDBOperation("find", database.RegistrationsCollection, start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Message(c, http.StatusNotFound, ErrInvalidCredentials)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchFailed)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam lets a team edit its project details before submission
// @Summary Update a team's project details
// @Description Whitelisted self-service edit of project title, description and submission links
// @Tags Team
// @Accept json
// @Produce json
// @Param teamCode path string true "Team code"
// @Param projectName query string true "Project title"
// @Param update body UpdateTeamRequest true "Fields to update"
// @Success 200 {object} models.Registration
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /team/{teamCode} [put]
func UpdateTeam(c *gin.Context) {
	teamCode := utils.SanitizeString(c.Param("teamCode"))
	projectName := c.Query("projectName")

	if teamCode == "" {
		response.Message(c, http.StatusBadRequest, ErrTeamCodeRequired)
		return
	}
	if projectName == "" {
		response.Message(c, http.StatusBadRequest, ErrProjectNameRequired)
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	update := bson.M{"updatedAt": time.Now().UTC()}
	if req.ProjectTitle != "" {
		update["projectTitle"] = utils.Truncate(utils.SanitizeString(req.ProjectTitle), 200)
	}
	if req.ProjectDescription != "" {
		update["projectDescription"] = utils.Truncate(utils.SanitizeString(req.ProjectDescription), 5000)
	}
	if req.SubmissionDetails != nil {
		update["submissionDetails.githubRepo"] = utils.SanitizeString(req.SubmissionDetails.GithubRepo)
		update["submissionDetails.liveDemo"] = utils.SanitizeString(req.SubmissionDetails.LiveDemo)
		update["submissionDetails.presentationLink"] = utils.SanitizeString(req.SubmissionDetails.PresentationLink)
		update["submissionDetails.additionalNotes"] = utils.Truncate(utils.SanitizeString(req.SubmissionDetails.AdditionalNotes), maxNotesLength)
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
		bson.M{
			"teamCode":     strings.ToUpper(teamCode),
			"projectTitle": projectTitleFilter(projectName),
		},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&team)
	metrics.RecordDBOperation("update", database.RegistrationsCollection, start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Message(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrUpdateFailed)
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetTeamByLead resolves a team from the team lead's email and phone
// @Summary Find a team by its lead's credentials
// @Description Matches the member at index teamLeadId against the given email and phone
// @Tags Team
// @Produce json
// @Param email query string true "Team lead email"
// @Param phone query string true "Team lead phone"
// @Success 200 {object} models.Registration
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /team/lead [get]
func GetTeamByLead(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	phone := strings.TrimSpace(c.Query("phone"))

	if email == "" {
		response.Message(c, http.StatusBadRequest, "Team lead email is required")
		return
	}
	if phone == "" {
		response.Message(c, http.StatusBadRequest, "Team lead phone number is required")
		return
	}

	registrations, err := database.Registrations()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDatabaseUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultQueryTimeout)
	defer cancel()

	// The lead is the member at index teamLeadId; both credentials must match
	// that exact entry.
	filter := bson.M{
		"$expr": bson.M{
			"$and": bson.A{
				bson.M{"$eq": bson.A{
					bson.M{"$arrayElemAt": bson.A{"$members.email", "$teamLeadId"}},
					strings.ToLower(email),
				}},
				bson.M{"$eq": bson.A{
					bson.M{"$arrayElemAt": bson.A{"$members.phone", "$teamLeadId"}},
					phone,
				}},
			},
		},
	}

	var team models.Registration
	start := time.Now()
	err = registrations.FindOne(ctx, filter).Decode(&team)
	metrics.RecordDBOperation("find", database.RegistrationsCollection, start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Message(c, http.StatusNotFound, ErrLeadCredentials)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchFailed)
		return
	}

	c.JSON(http.StatusOK, team)
}
