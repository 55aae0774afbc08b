package team

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmissionRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SubmissionRequest
		wantErr []string
	}{
		{
			name: "valid full submission",
			req: SubmissionRequest{
				GithubRepo:       "https://github.com/org/repo",
				LiveDemo:         "https://demo.example.com",
				PresentationLink: "https://slides.example.com/deck",
				AdditionalNotes:  "Built during the event",
			},
		},
		{
			name: "optional links may be empty",
			req:  SubmissionRequest{GithubRepo: "https://github.com/org/repo"},
		},
		{
			name:    "github repo required",
			req:     SubmissionRequest{},
			wantErr: []string{"githubRepo"},
		},
		{
			name:    "github repo must be a URL",
			req:     SubmissionRequest{GithubRepo: "org/repo"},
			wantErr: []string{"githubRepo"},
		},
		{
			name: "present optional links must be URLs",
			req: SubmissionRequest{
				GithubRepo:       "https://github.com/org/repo",
				LiveDemo:         "not a url",
				PresentationLink: "also not",
			},
			wantErr: []string{"liveDemo", "presentationLink"},
		},
		{
			name: "notes length bound",
			req: SubmissionRequest{
				GithubRepo:      "https://github.com/org/repo",
				AdditionalNotes: strings.Repeat("x", maxNotesLength+1),
			},
			wantErr: []string{"additionalNotes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if len(tt.wantErr) == 0 {
				require.Empty(t, errs)
				return
			}
			require.Len(t, errs, len(tt.wantErr))
			for _, field := range tt.wantErr {
				require.Contains(t, errs, field)
			}
		})
	}
}
