package registration

import (
	"strconv"
	"strings"

	"api/utils"
)

// Constants for error messages
const (
	ErrInvalidFormat       = "Invalid request format"
	ErrEmailExists         = "A member email is already registered with another team"
	ErrCodeGeneration      = "Could not allocate a team code. Please try again."
	ErrCreateFailed        = "Failed to create registration"
	ErrDatabaseUnavailable = "Database unavailable"
)

// MemberRequest is one member entry of the registration payload
type MemberRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	USN      string `json:"usn"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// RegistrationRequest model for creating a registration
type RegistrationRequest struct {
	TeamName           string          `json:"teamName"`
	CollegeName        string          `json:"collegeName"`
	ProjectTitle       string          `json:"projectTitle"`
	ProjectDescription string          `json:"projectDescription"`
	TeamLeadID         int             `json:"teamLeadId"`
	Members            []MemberRequest `json:"members"`
}

// Sanitize trims and strips control characters from every string field
func (r *RegistrationRequest) Sanitize() {
	r.TeamName = utils.Truncate(utils.SanitizeString(r.TeamName), 100)
	r.CollegeName = utils.Truncate(utils.SanitizeString(r.CollegeName), 200)
	r.ProjectTitle = utils.Truncate(utils.SanitizeString(r.ProjectTitle), 200)
	r.ProjectDescription = utils.Truncate(utils.SanitizeString(r.ProjectDescription), 5000)
	for i := range r.Members {
		m := &r.Members[i]
		m.Name = utils.Truncate(utils.SanitizeString(m.Name), 100)
		m.Email = strings.ToLower(utils.SanitizeString(m.Email))
		m.Phone = utils.SanitizeString(m.Phone)
		m.USN = utils.SanitizeString(m.USN)
		m.LinkedIn = utils.SanitizeString(m.LinkedIn)
		m.GitHub = utils.SanitizeString(m.GitHub)
	}
}

// Validate runs the schema-level and cross-field checks, returning field-level
// errors keyed the way the admin dashboard expects them.
func (r *RegistrationRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if r.TeamName == "" {
		errs["teamName"] = "Please provide a team name."
	}
	if r.CollegeName == "" {
		errs["collegeName"] = "Please provide a college name."
	}
	if r.ProjectTitle == "" {
		errs["projectTitle"] = "Please provide a project title."
	}
	if r.ProjectDescription == "" {
		errs["projectDescription"] = "Please provide a project description."
	}

	if len(r.Members) < 2 || len(r.Members) > 4 {
		errs["members"] = "Team must have between 2 and 4 members."
		return errs
	}

	seen := make(map[string]bool, len(r.Members))
	for i, m := range r.Members {
		field := func(name string) string { return "members." + strconv.Itoa(i) + "." + name }

		if m.Name == "" {
			errs[field("name")] = "Please provide the member's name."
		}
		if !utils.IsValidEmail(m.Email) {
			errs[field("email")] = "Please fill a valid email address"
		}
		if !utils.IsValidPhone(m.Phone) {
			errs[field("phone")] = "Phone must contain exactly 10 digits"
		}
		if m.USN != "" && !utils.IsValidUSN(m.USN) {
			errs[field("usn")] = "USN must match 1 + 2 letters + 21-25 + 2 letters + 3 digits"
		}
		if !utils.IsLinkedInURL(m.LinkedIn) {
			errs[field("linkedin")] = "LinkedIn URL must be from linkedin.com"
		}
		if !utils.IsGitHubURL(m.GitHub) {
			errs[field("github")] = "GitHub URL must be from github.com"
		}

		// Emails are stored lowercased, so uniqueness is case-insensitive
		email := strings.ToLower(m.Email)
		if seen[email] {
			errs[field("email")] = "Member emails must be unique within the team"
		}
		seen[email] = true
	}

	if r.TeamLeadID < 0 || r.TeamLeadID >= len(r.Members) {
		errs["teamLeadId"] = "Team lead must reference an existing member"
	}

	return errs
}
