package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActionStatus(t *testing.T) {
	for _, valid := range []string{"open", "in_progress", "resolved", "verified", "canceled"} {
		got, err := NewActionStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, ActionStatus(valid), got)
	}

	for _, invalid := range []string{"", "closed", "done", "Open"} {
		_, err := NewActionStatus(invalid)
		require.Error(t, err, "input %q", invalid)
	}
}

func TestActionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ActionStatus
		to   ActionStatus
		want bool
	}{
		{name: "open to in_progress", from: ActionStatusOpen, to: ActionStatusInProgress, want: true},
		{name: "open to canceled", from: ActionStatusOpen, to: ActionStatusCanceled, want: true},
		{name: "open cannot jump to verified", from: ActionStatusOpen, to: ActionStatusVerified, want: false},
		{name: "open cannot jump to resolved", from: ActionStatusOpen, to: ActionStatusResolved, want: false},
		{name: "in_progress to resolved", from: ActionStatusInProgress, to: ActionStatusResolved, want: true},
		{name: "in_progress to canceled", from: ActionStatusInProgress, to: ActionStatusCanceled, want: true},
		{name: "in_progress cannot verify", from: ActionStatusInProgress, to: ActionStatusVerified, want: false},
		{name: "resolved to verified", from: ActionStatusResolved, to: ActionStatusVerified, want: true},
		{name: "resolved reopens", from: ActionStatusResolved, to: ActionStatusOpen, want: true},
		{name: "resolved to canceled", from: ActionStatusResolved, to: ActionStatusCanceled, want: true},
		{name: "verified reopens", from: ActionStatusVerified, to: ActionStatusOpen, want: true},
		{name: "verified cannot cancel", from: ActionStatusVerified, to: ActionStatusCanceled, want: false},
		{name: "canceled reopens", from: ActionStatusCanceled, to: ActionStatusOpen, want: true},
		{name: "canceled cannot resolve", from: ActionStatusCanceled, to: ActionStatusResolved, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
