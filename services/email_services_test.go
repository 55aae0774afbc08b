package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmailTemplatesRenderHeadersAndBody(t *testing.T) {
	tests := []struct {
		name     string
		rendered string
		subject  string
	}{
		{
			name:     "confirmation",
			rendered: fmt.Sprintf(confirmationTemplate, "lead@example.com", "Hack Squad", "A1B2C3"),
			subject:  "Subject: Registration Confirmed | HackmanV8",
		},
		{
			name:     "selection",
			rendered: fmt.Sprintf(selectionTemplate, "lead@example.com", "Hack Squad", "A1B2C3"),
			subject:  "Subject: 🎉 Congratulations! You're in!",
		},
		{
			name:     "payment verified",
			rendered: fmt.Sprintf(paymentVerifiedTemplate, "lead@example.com", "Hack Squad", "A1B2C3"),
			subject:  "Subject: Payment Verified | HackmanV8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, strings.HasPrefix(tt.rendered, "To: lead@example.com\n"),
				"message must start with the To header")
			require.Contains(t, tt.rendered, "Content-Type: text/html")
			require.Contains(t, tt.rendered, tt.subject)
			require.Contains(t, tt.rendered, "Hello Hack Squad!")
			require.Contains(t, tt.rendered, "<code>A1B2C3</code>")
		})
	}
}

func TestContactTemplateSetsReplyTo(t *testing.T) {
	rendered := strings.TrimSpace(fmt.Sprintf(contactTemplate,
		"inbox@example.com", "sender@example.com", "Asha", "Asha", "sender@example.com", "Hi there"))

	require.True(t, strings.HasPrefix(rendered, "To: inbox@example.com\n"))
	require.Contains(t, rendered, "Reply-To: sender@example.com")
	require.Contains(t, rendered, "Subject: New Contact Form Submission from Asha")
	require.Contains(t, rendered, "<p>Hi there</p>")
}
