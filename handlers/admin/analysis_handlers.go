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
	"api/services"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The AI round trip dwarfs the usual query timeout
const analysisTimeout = 2 * time.Minute

// AnalyzeTeam scores a team's submission with Gemini and stores the result
// @Summary Run AI analysis on a submission
// @Description Scores AI-content likelihood, uniqueness, complexity and quality; optionally compares the project against all other registrations for duplicates. The result is persisted on the registration.
// @Tags Admin
// @Accept json
// @Produce json
// @Param teamCode path string true "Team code"
// @Param options body AnalyzeRequest false "Analysis options"
// @Success 200 {object} models.AIAnalysis
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/analyze/{teamCode} [post]
// @Security Bearer
func AnalyzeTeam(c *gin.Context) {
	teamCode := strings.ToUpper(utils.SanitizeString(c.Param("teamCode")))

	analysisService := services.NewAnalysisService()
	if !analysisService.Configured() {
		response.Message(c, http.StatusInternalServerError,
			"Gemini API key not configured. Please add GEMINI_API_KEY to your environment variables.")
		return
	}

	registrations, err := database.Registrations()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDatabaseUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), analysisTimeout)
	defer cancel()

	var team models.Registration
	start := time.Now()
	err = registrations.FindOne(ctx, bson.M{"teamCode": teamCode}).Decode(&team)
	metrics.RecordDBOperation("find", database.RegistrationsCollection, start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Message(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchTeam)
		return
	}

	// Body is optional; absent or malformed means no duplicate check
	var req AnalyzeRequest
	_ = c.ShouldBindJSON(&req)

	var others []models.Registration
	if req.CheckDuplicacy {
		cursor, err := registrations.Find(ctx,
			bson.M{"_id": bson.M{"$ne": team.ID}},
			options.Find().SetProjection(bson.M{
				"teamName":           1,
				"projectTitle":       1,
				"projectDescription": 1,
			}))
		if err == nil {
			defer cursor.Close(ctx)
			_ = cursor.All(ctx, &others)
		}
	}

	analysis, err := analysisService.AnalyzeSubmission(ctx, &team, others, req.CheckDuplicacy)
	if err != nil {
		metrics.AnalysisRequests.WithLabelValues("error").Inc()
		response.Message(c, http.StatusInternalServerError, "Failed to analyze team submission: "+err.Error())
		return
	}
	metrics.AnalysisRequests.WithLabelValues("ok").Inc()

	start = time.Now()
	_, err = registrations.UpdateOne(ctx,
		bson.M{"_id": team.ID},
		bson.M{"$set": bson.M{
			"aiAnalysis": analysis,
			"updatedAt":  time.Now().UTC(),
		}})
	metrics.RecordDBOperation("update", database.RegistrationsCollection, start)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to store analysis")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    analysis,
	})
}
