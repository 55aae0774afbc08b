package registration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func validRequest() RegistrationRequest {
	return RegistrationRequest{
		TeamName:           "Hack Squad",
		CollegeName:        "DSCE",
		ProjectTitle:       "Smart Parking",
		ProjectDescription: "Realtime parking availability tracker",
		TeamLeadID:         0,
		Members: []MemberRequest{
			{
				Name:     "Asha",
				Email:    "asha@example.com",
				Phone:    "9876543210",
				USN:      "1DS23CS042",
				LinkedIn: "https://linkedin.com/in/asha",
				GitHub:   "https://github.com/asha",
			},
			{
				Name:     "Ravi",
				Email:    "ravi@example.com",
				Phone:    "9876543211",
				USN:      "1DS23IS007",
				LinkedIn: "https://linkedin.com/in/ravi",
				GitHub:   "https://github.com/ravi",
			},
		},
	}
}

func TestValidateAcceptsValidRequest(t *testing.T) {
	req := validRequest()
	require.Empty(t, req.Validate())
}

func TestValidateRequiredFields(t *testing.T) {
	req := validRequest()
	req.TeamName = ""
	req.ProjectDescription = ""

	errs := req.Validate()
	require.Contains(t, errs, "teamName")
	require.Contains(t, errs, "projectDescription")
	require.NotContains(t, errs, "collegeName")
}

func TestValidateMemberCount(t *testing.T) {
	req := validRequest()
	req.Members = req.Members[:1]
	require.Contains(t, req.Validate(), "members")

	req = validRequest()
	five := make([]MemberRequest, 5)
	for i := range five {
		five[i] = req.Members[0]
	}
	req.Members = five
	require.Contains(t, req.Validate(), "members")
}

func TestValidateMemberFields(t *testing.T) {
	req := validRequest()
	req.Members[1].Email = "not-an-email"
	req.Members[1].Phone = "12345"
	req.Members[1].USN = "XYZ"
	req.Members[1].LinkedIn = "https://example.com/profile"

	errs := req.Validate()
	require.Contains(t, errs, "members.1.email")
	require.Contains(t, errs, "members.1.phone")
	require.Contains(t, errs, "members.1.usn")
	require.Contains(t, errs, "members.1.linkedin")
	require.NotContains(t, errs, "members.0.email")
}

func TestValidateUSNOptional(t *testing.T) {
	req := validRequest()
	req.Members[0].USN = ""
	require.Empty(t, req.Validate())
}

func TestValidateDuplicateEmailWithinTeam(t *testing.T) {
	req := validRequest()
	req.Members[1].Email = req.Members[0].Email
	require.Contains(t, req.Validate(), "members.1.email")
}

func TestValidateDuplicateEmailCaseInsensitive(t *testing.T) {
	req := validRequest()
	req.Members[1].Email = strings.ToUpper(req.Members[0].Email)
	require.Contains(t, req.Validate(), "members.1.email")
}

func TestValidateTeamLeadBounds(t *testing.T) {
	req := validRequest()
	req.TeamLeadID = 2
	require.Contains(t, req.Validate(), "teamLeadId")

	req.TeamLeadID = -1
	require.Contains(t, req.Validate(), "teamLeadId")
}

func TestSanitize(t *testing.T) {
	req := validRequest()
	req.TeamName = "  Hack\x00 Squad  "
	req.Members[0].Email = " Asha@Example.COM "

	req.Sanitize()
	require.Equal(t, "Hack Squad", req.TeamName)
	require.Equal(t, "asha@example.com", req.Members[0].Email)
}
