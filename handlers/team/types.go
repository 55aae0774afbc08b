package team

import "api/utils"

// Constants for error messages
const (
	ErrTeamCodeRequired    = "Team code is required"
	ErrProjectNameRequired = "Project name is required"
	ErrInvalidCredentials  = "Invalid credentials. Please check your project name and team code."
	ErrLeadCredentials     = "Invalid credentials. Please check your team lead email and phone number."
	ErrTeamNotFound        = "Team not found"
	ErrAlreadySubmitted    = "Project has already been submitted"
	ErrFetchFailed         = "Error fetching team"
	ErrUpdateFailed        = "Failed to update team"
	ErrDatabaseUnavailable = "Database unavailable"

	maxNotesLength = 1000
)

// SubmissionRequest model for the one-shot project submission
type SubmissionRequest struct {
	GithubRepo       string `json:"githubRepo"`
	LiveDemo         string `json:"liveDemo"`
	PresentationLink string `json:"presentationLink"`
	AdditionalNotes  string `json:"additionalNotes"`
}

// Validate checks URL shapes and the notes length bound. Optional links may
// be empty but must be URLs when present.
func (r *SubmissionRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if !utils.IsValidURL(r.GithubRepo) {
		errs["githubRepo"] = "GitHub repository must be a valid URL"
	}
	if r.LiveDemo != "" && !utils.IsValidURL(r.LiveDemo) {
		errs["liveDemo"] = "Live demo must be a valid URL"
	}
	if r.PresentationLink != "" && !utils.IsValidURL(r.PresentationLink) {
		errs["presentationLink"] = "Presentation link must be a valid URL"
	}
	if len(r.AdditionalNotes) > maxNotesLength {
		errs["additionalNotes"] = "Additional notes must be at most 1000 characters"
	}

	return errs
}

// UpdateTeamRequest model for team self-service edits
type UpdateTeamRequest struct {
	ProjectTitle       string                    `json:"projectTitle"`
	ProjectDescription string                    `json:"projectDescription"`
	SubmissionDetails  *SubmissionDetailsPayload `json:"submissionDetails"`
}

// SubmissionDetailsPayload mirrors the nested submissionDetails document
type SubmissionDetailsPayload struct {
	GithubRepo       string `json:"githubRepo"`
	LiveDemo         string `json:"liveDemo"`
	PresentationLink string `json:"presentationLink"`
	AdditionalNotes  string `json:"additionalNotes"`
}
