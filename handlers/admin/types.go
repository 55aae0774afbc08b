package admin

import "time"

// Constants for error messages
const (
	ErrNotFound            = "Not found"
	ErrTeamNotFound        = "Team not found"
	ErrInvalidID           = "Invalid ID format"
	ErrInvalidSelection    = "Invalid selectionStatus"
	ErrFetchRegistrations  = "Error fetching registrations"
	ErrFetchTeam           = "Error fetching team"
	ErrUpdateFailed        = "Failed to update registration"
	ErrDeleteFailed        = "Failed to delete registration"
	ErrDatabaseUnavailable = "Database unavailable"

	defaultQueryTimeout = 5 * time.Second
)

// Root fields an admin edit may touch; everything else in the body is dropped
var allowedUpdateFields = []string{
	"teamName",
	"collegeName",
	"projectTitle",
	"projectDescription",
	"teamLeadId",
	"teamCode",
	"submissionStatus",
	"selectionStatus",
	"paymentStatus",
	"reviewComments",
	"finalScore",
}

// SelectionRequest model for the selection transition endpoint
type SelectionRequest struct {
	SelectionStatus string   `json:"selectionStatus"`
	ReviewComments  *string  `json:"reviewComments"`
	FinalScore      *float64 `json:"finalScore"`
}

// TeamReviewRequest model for the per-team admin review endpoint
type TeamReviewRequest struct {
	SelectionStatus string   `json:"selectionStatus"`
	ReviewComments  *string  `json:"reviewComments"`
	FinalScore      *float64 `json:"finalScore"`
}

// AnalyzeRequest model for the AI analysis endpoint
type AnalyzeRequest struct {
	CheckDuplicacy bool `json:"checkDuplicacy"`
}
