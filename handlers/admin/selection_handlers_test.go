package admin

import (
	"testing"

	"api/models"

	"github.com/stretchr/testify/require"
)

func TestTransitionedToSelected(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "pending to selected fires", from: models.SelectionPending, to: models.SelectionSelected, want: true},
		{name: "waitlisted to selected fires", from: models.SelectionWaitlisted, to: models.SelectionSelected, want: true},
		{name: "rejected to selected fires", from: models.SelectionRejected, to: models.SelectionSelected, want: true},
		{name: "selected to selected is idempotent", from: models.SelectionSelected, to: models.SelectionSelected, want: false},
		{name: "selected to waitlisted does not fire", from: models.SelectionSelected, to: models.SelectionWaitlisted, want: false},
		{name: "pending to rejected does not fire", from: models.SelectionPending, to: models.SelectionRejected, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, transitionedToSelected(tt.from, tt.to))
		})
	}
}

func TestValidSelectionStatus(t *testing.T) {
	for _, s := range []string{
		models.SelectionPending,
		models.SelectionSelected,
		models.SelectionWaitlisted,
		models.SelectionRejected,
	} {
		require.True(t, models.ValidSelectionStatus(s), "status %q", s)
	}
	require.False(t, models.ValidSelectionStatus("approved"))
	require.False(t, models.ValidSelectionStatus(""))
}
