package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission status values for a team's project deliverable
const (
	SubmissionNotSubmitted = "not_submitted"
	SubmissionSubmitted    = "submitted"
	SubmissionUnderReview  = "under_review"
	SubmissionAccepted     = "accepted"
	SubmissionRejected     = "rejected"
)

// Selection status values, set by admins during review
const (
	SelectionPending    = "pending"
	SelectionSelected   = "selected"
	SelectionWaitlisted = "waitlisted"
	SelectionRejected   = "rejected"
)

// Payment status values. "pending" appears in the admin UI filter set but no
// transition produces it; it is accepted on admin edits only.
const (
	PaymentUnpaid   = "unpaid"
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentVerified = "verified"
)

// Member is one entry of a team's 2-4 member roster
type Member struct {
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	USN      string `bson:"usn,omitempty" json:"usn,omitempty"`
	LinkedIn string `bson:"linkedin" json:"linkedin"`
	GitHub   string `bson:"github" json:"github"`
}

// SubmissionDetails holds the project deliverable links; SubmittedAt stays
// nil until the first submission
type SubmissionDetails struct {
	GithubRepo       string     `bson:"githubRepo" json:"githubRepo"`
	LiveDemo         string     `bson:"liveDemo" json:"liveDemo"`
	PresentationLink string     `bson:"presentationLink" json:"presentationLink"`
	AdditionalNotes  string     `bson:"additionalNotes" json:"additionalNotes"`
	SubmittedAt      *time.Time `bson:"submittedAt" json:"submittedAt"`
}

// Registration represents one competing team
type Registration struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	TeamName           string             `bson:"teamName" json:"teamName"`
	CollegeName        string             `bson:"collegeName" json:"collegeName"`
	ProjectTitle       string             `bson:"projectTitle" json:"projectTitle"`
	ProjectDescription string             `bson:"projectDescription" json:"projectDescription"`
	TeamLeadID         int                `bson:"teamLeadId" json:"teamLeadId"`
	Members            []Member           `bson:"members" json:"members"`
	TeamCode           string             `bson:"teamCode" json:"teamCode"`
	SubmissionStatus   string             `bson:"submissionStatus" json:"submissionStatus"`
	SelectionStatus    string             `bson:"selectionStatus" json:"selectionStatus"`
	PaymentStatus      string             `bson:"paymentStatus" json:"paymentStatus"`
	SubmissionDetails  SubmissionDetails  `bson:"submissionDetails" json:"submissionDetails"`
	ReviewComments     string             `bson:"reviewComments" json:"reviewComments"`
	FinalScore         *float64           `bson:"finalScore" json:"finalScore"`
	AIAnalysis         *AIAnalysis        `bson:"aiAnalysis,omitempty" json:"aiAnalysis,omitempty"`
	PaymentProof       string             `bson:"paymentProof,omitempty" json:"paymentProof,omitempty"`
	PaymentDate        *time.Time         `bson:"paymentDate,omitempty" json:"paymentDate,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MemberEmails collects every member address, used for notification fan-out
func (r *Registration) MemberEmails() []string {
	emails := make([]string, 0, len(r.Members))
	for _, m := range r.Members {
		if m.Email != "" {
			emails = append(emails, m.Email)
		}
	}
	return emails
}

// ValidSelectionStatus reports whether s is one of the four selection values
func ValidSelectionStatus(s string) bool {
	switch s {
	case SelectionPending, SelectionSelected, SelectionWaitlisted, SelectionRejected:
		return true
	}
	return false
}

// ValidSubmissionStatus reports whether s is one of the submission values
func ValidSubmissionStatus(s string) bool {
	switch s {
	case SubmissionNotSubmitted, SubmissionSubmitted, SubmissionUnderReview,
		SubmissionAccepted, SubmissionRejected:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is one of the payment values
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentUnpaid, PaymentPending, PaymentPaid, PaymentVerified:
		return true
	}
	return false
}
