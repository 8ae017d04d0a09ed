package inspection

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "luster/internal/domain/inspection/valueobjects"
)

func newTestAction(t *testing.T) *CorrectiveAction {
	t.Helper()
	action, err := NewCorrectiveAction(100, nil, "Restock soap dispensers", "All restroom dispensers empty", vo.SeverityMinor, nil, 20)
	require.NoError(t, err)
	return action
}

func TestNewCorrectiveAction(t *testing.T) {
	itemID := uint(2)
	due := time.Now().AddDate(0, 0, 7)

	tests := []struct {
		name    string
		mutate  func() (*CorrectiveAction, error)
		wantErr string
	}{
		{
			name: "valid with item and due date",
			mutate: func() (*CorrectiveAction, error) {
				return NewCorrectiveAction(100, &itemID, "Degrease kitchen floor", "", vo.SeverityMajor, &due, 20)
			},
		},
		{
			name: "missing inspection",
			mutate: func() (*CorrectiveAction, error) {
				return NewCorrectiveAction(0, nil, "Title", "", vo.SeverityMinor, nil, 20)
			},
			wantErr: "inspection ID is required",
		},
		{
			name: "blank title",
			mutate: func() (*CorrectiveAction, error) {
				return NewCorrectiveAction(100, nil, "   ", "", vo.SeverityMinor, nil, 20)
			},
			wantErr: "title is required",
		},
		{
			name: "title too long",
			mutate: func() (*CorrectiveAction, error) {
				return NewCorrectiveAction(100, nil, strings.Repeat("x", 201), "", vo.SeverityMinor, nil, 20)
			},
			wantErr: "title exceeds",
		},
		{
			name: "invalid severity",
			mutate: func() (*CorrectiveAction, error) {
				return NewCorrectiveAction(100, nil, "Title", "", vo.Severity("urgent"), nil, 20)
			},
			wantErr: "invalid severity",
		},
		{
			name: "missing creator",
			mutate: func() (*CorrectiveAction, error) {
				return NewCorrectiveAction(100, nil, "Title", "", vo.SeverityMinor, nil, 0)
			},
			wantErr: "creator ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := tt.mutate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.ActionStatusOpen, action.Status())
			assert.Nil(t, action.VerifiedBy())
		})
	}
}

func TestCorrectiveAction_ChangeStatus(t *testing.T) {
	t.Run("happy path through resolution", func(t *testing.T) {
		action := newTestAction(t)
		require.NoError(t, action.ChangeStatus(vo.ActionStatusInProgress))
		require.NoError(t, action.ChangeStatus(vo.ActionStatusResolved))
		assert.Equal(t, vo.ActionStatusResolved, action.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		action := newTestAction(t)
		assert.NoError(t, action.ChangeStatus(vo.ActionStatusOpen))
	})

	t.Run("open cannot jump to resolved", func(t *testing.T) {
		action := newTestAction(t)
		err := action.ChangeStatus(vo.ActionStatusResolved)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot transition")
	})

	t.Run("reopen clears verification stamp", func(t *testing.T) {
		action := newTestAction(t)
		require.NoError(t, action.ChangeStatus(vo.ActionStatusInProgress))
		require.NoError(t, action.ChangeStatus(vo.ActionStatusResolved))
		require.NoError(t, action.Verify(33))
		require.NotNil(t, action.VerifiedBy())

		require.NoError(t, action.ChangeStatus(vo.ActionStatusOpen))
		assert.Nil(t, action.VerifiedBy())
		assert.Nil(t, action.VerifiedAt())
	})

	t.Run("canceled can only reopen", func(t *testing.T) {
		action := newTestAction(t)
		require.NoError(t, action.ChangeStatus(vo.ActionStatusCanceled))
		assert.Error(t, action.ChangeStatus(vo.ActionStatusInProgress))
		assert.NoError(t, action.ChangeStatus(vo.ActionStatusOpen))
	})
}

func TestCorrectiveAction_Verify(t *testing.T) {
	action := newTestAction(t)
	require.NoError(t, action.ChangeStatus(vo.ActionStatusInProgress))
	require.NoError(t, action.ChangeStatus(vo.ActionStatusResolved))

	require.NoError(t, action.Verify(33))
	assert.Equal(t, vo.ActionStatusVerified, action.Status())
	require.NotNil(t, action.VerifiedBy())
	assert.Equal(t, uint(33), *action.VerifiedBy())
	assert.NotNil(t, action.VerifiedAt())
}

func TestCorrectiveAction_Verify_RequiresResolved(t *testing.T) {
	action := newTestAction(t)
	err := action.Verify(33)
	require.Error(t, err)
	assert.Nil(t, action.VerifiedBy())
}

func TestCorrectiveAction_Verify_RequiresVerifier(t *testing.T) {
	action := newTestAction(t)
	require.NoError(t, action.ChangeStatus(vo.ActionStatusInProgress))
	require.NoError(t, action.ChangeStatus(vo.ActionStatusResolved))
	assert.Error(t, action.Verify(0))
}

func TestCorrectiveAction_UpdateDetails(t *testing.T) {
	action := newTestAction(t)

	title := "Restock all dispensers"
	severity := vo.SeverityMajor
	due := time.Now().AddDate(0, 0, 2)
	require.NoError(t, action.UpdateDetails(&title, nil, &severity, &due, false))
	assert.Equal(t, title, action.Title())
	assert.Equal(t, vo.SeverityMajor, action.Severity())
	require.NotNil(t, action.DueDate())

	require.NoError(t, action.UpdateDetails(nil, nil, nil, nil, true))
	assert.Nil(t, action.DueDate())
	assert.Equal(t, title, action.Title(), "nil fields are left unchanged")

	blank := "  "
	assert.Error(t, action.UpdateDetails(&blank, nil, nil, nil, false))
}
