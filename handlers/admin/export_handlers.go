package admin

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"api/database"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var exportHeaders = []string{
	"Team Code", "Team Name", "College", "Project Title", "Team Lead",
	"Members", "Member Emails", "Submission Status", "Selection Status",
	"Payment Status", "Final Score", "Registered At",
}

// ExportRegistrations streams all registrations as an Excel workbook
// @Summary Export registrations to XLSX
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Router /admin/registrations/export [get]
// @Security Bearer
func ExportRegistrations(c *gin.Context) {
	registrations, err := database.Registrations()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDatabaseUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultQueryTimeout)
	defer cancel()

	cursor, err := registrations.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchRegistrations)
		return
	}
	defer cursor.Close(ctx)

	var docs []models.Registration
	if err := cursor.All(ctx, &docs); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchRegistrations)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, reg := range docs {
		lead := ""
		if reg.TeamLeadID >= 0 && reg.TeamLeadID < len(reg.Members) {
			lead = reg.Members[reg.TeamLeadID].Name
		}

		names := make([]string, 0, len(reg.Members))
		for _, m := range reg.Members {
			names = append(names, m.Name)
		}

		score := ""
		if reg.FinalScore != nil {
			score = fmt.Sprintf("%.2f", *reg.FinalScore)
		}

		values := []interface{}{
			reg.TeamCode, reg.TeamName, reg.CollegeName, reg.ProjectTitle, lead,
			strings.Join(names, ", "), strings.Join(reg.MemberEmails(), ", "),
			reg.SubmissionStatus, reg.SelectionStatus, reg.PaymentStatus,
			score, reg.CreatedAt.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("registrations-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to write export")
	}
}
