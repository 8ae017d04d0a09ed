package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/shared/errors"
)

func storedAction(t *testing.T, status vo.ActionStatus) *inspection.CorrectiveAction {
	t.Helper()
	now := time.Now()
	action, err := inspection.ReconstructCorrectiveAction(
		50, 100, nil,
		"Restock soap dispensers", "All restroom dispensers empty",
		vo.SeverityMinor, status,
		nil, 20, nil, nil,
		now, now,
	)
	require.NoError(t, err)
	return action
}

func TestCreateCorrectiveActionUseCase_Execute(t *testing.T) {
	existing := storedInspection(t, vo.StatusCompleted)

	mockRepo := &mockInspectionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inspection.Inspection, error) {
			return existing, nil
		},
	}
	mockActions := &mockCorrectiveActionRepository{
		SaveFunc: func(ctx context.Context, action *inspection.CorrectiveAction) error {
			return action.SetID(50)
		},
	}
	mockActivities := &mockActivityRepository{}

	useCase := NewCreateCorrectiveActionUseCase(mockRepo, mockActions, mockActivities, &mockTxManager{}, &mockLogger{})

	itemID := uint(2)
	result, err := useCase.Execute(context.Background(), CreateCorrectiveActionCommand{
		InspectionID: 100,
		ItemID:       &itemID,
		Title:        "Restock soap dispensers",
		Severity:     "minor",
		CreatedBy:    20,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(50), result.ActionID)
	assert.Equal(t, "open", result.Status)

	require.Len(t, mockActivities.appended, 1)
	activity := mockActivities.appended[0]
	assert.Equal(t, vo.ActivityCorrectiveActionCreated, activity.Action())
	assert.Equal(t, "minor", activity.Metadata()["severity"])
	assert.Equal(t, itemID, activity.Metadata()["item_id"])
}

func TestCreateCorrectiveActionUseCase_Execute_CanceledInspection(t *testing.T) {
	existing := storedInspection(t, vo.StatusCanceled)

	mockRepo := &mockInspectionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inspection.Inspection, error) {
			return existing, nil
		},
	}

	useCase := NewCreateCorrectiveActionUseCase(mockRepo, &mockCorrectiveActionRepository{}, &mockActivityRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), CreateCorrectiveActionCommand{
		InspectionID: 100,
		Title:        "Restock soap dispensers",
		Severity:     "minor",
		CreatedBy:    20,
	})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidStateError(err))
}

func TestCreateCorrectiveActionUseCase_Execute_ForeignItem(t *testing.T) {
	existing := storedInspection(t, vo.StatusCompleted)

	mockRepo := &mockInspectionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inspection.Inspection, error) {
			return existing, nil
		},
	}

	useCase := NewCreateCorrectiveActionUseCase(mockRepo, &mockCorrectiveActionRepository{}, &mockActivityRepository{}, &mockTxManager{}, &mockLogger{})

	foreignItem := uint(999)
	_, err := useCase.Execute(context.Background(), CreateCorrectiveActionCommand{
		InspectionID: 100,
		ItemID:       &foreignItem,
		Title:        "Restock soap dispensers",
		Severity:     "minor",
		CreatedBy:    20,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateCorrectiveActionUseCase_Execute_StatusChange(t *testing.T) {
	existing := storedAction(t, vo.ActionStatusOpen)

	mockActions := &mockCorrectiveActionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inspection.CorrectiveAction, error) {
			return existing, nil
		},
	}
	mockActivities := &mockActivityRepository{}

	useCase := NewUpdateCorrectiveActionUseCase(mockActions, mockActivities, &mockTxManager{}, &mockLogger{})

	status := "in_progress"
	result, err := useCase.Execute(context.Background(), UpdateCorrectiveActionCommand{
		InspectionID: 100,
		ActionID:     50,
		Status:       &status,
	})

	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)

	require.Len(t, mockActivities.appended, 1)
	activity := mockActivities.appended[0]
	assert.Equal(t, vo.ActivityCorrectiveActionStatus, activity.Action())
	assert.Equal(t, "open", activity.Metadata()["from"])
	assert.Equal(t, "in_progress", activity.Metadata()["to"])
}

func TestUpdateCorrectiveActionUseCase_Execute_IllegalJump(t *testing.T) {
	existing := storedAction(t, vo.ActionStatusOpen)

	mockActions := &mockCorrectiveActionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inspection.CorrectiveAction, error) {
			return existing, nil
		},
	}
	mockActivities := &mockActivityRepository{}

	useCase := NewUpdateCorrectiveActionUseCase(mockActions, mockActivities, &mockTxManager{}, &mockLogger{})

	status := "verified"
	_, err := useCase.Execute(context.Background(), UpdateCorrectiveActionCommand{
		InspectionID: 100,
		ActionID:     50,
		Status:       &status,
	})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidStateError(err))
	assert.Empty(t, mockActivities.appended)
}

func TestUpdateCorrectiveActionUseCase_Execute_DetailsOnly(t *testing.T) {
	existing := storedAction(t, vo.ActionStatusOpen)

	mockActions := &mockCorrectiveActionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inspection.CorrectiveAction, error) {
			return existing, nil
		},
	}
	mockActivities := &mockActivityRepository{}

	useCase := NewUpdateCorrectiveActionUseCase(mockActions, mockActivities, &mockTxManager{}, &mockLogger{})

	title := "Restock all dispensers"
	severity := "major"
	result, err := useCase.Execute(context.Background(), UpdateCorrectiveActionCommand{
		InspectionID: 100,
		ActionID:     50,
		Title:        &title,
		Severity:     &severity,
	})

	require.NoError(t, err)
	assert.Equal(t, title, result.Title)
	assert.Equal(t, "major", result.Severity)
	assert.Empty(t, mockActivities.appended, "detail-only edits do not log a status activity")
}

func TestUpdateCorrectiveActionUseCase_Execute_WrongInspection(t *testing.T) {
	existing := storedAction(t, vo.ActionStatusOpen)

	mockActions := &mockCorrectiveActionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inspection.CorrectiveAction, error) {
			return existing, nil
		},
	}

	useCase := NewUpdateCorrectiveActionUseCase(mockActions, &mockActivityRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), UpdateCorrectiveActionCommand{
		InspectionID: 777,
		ActionID:     50,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestVerifyCorrectiveActionUseCase_Execute(t *testing.T) {
	existing := storedAction(t, vo.ActionStatusResolved)

	mockActions := &mockCorrectiveActionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inspection.CorrectiveAction, error) {
			return existing, nil
		},
	}
	mockActivities := &mockActivityRepository{}

	useCase := NewVerifyCorrectiveActionUseCase(mockActions, mockActivities, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), VerifyCorrectiveActionCommand{
		InspectionID: 100,
		ActionID:     50,
		VerifierID:   33,
		Notes:        "confirmed on site",
	})

	require.NoError(t, err)
	assert.Equal(t, "verified", result.Status)
	require.NotNil(t, result.VerifiedBy)
	assert.Equal(t, uint(33), *result.VerifiedBy)
	assert.NotNil(t, result.VerifiedAt)

	require.Len(t, mockActivities.appended, 1)
	activity := mockActivities.appended[0]
	assert.Equal(t, vo.ActivityCorrectiveActionVerified, activity.Action())
	assert.Equal(t, "confirmed on site", activity.Metadata()["notes"])
}

func TestVerifyCorrectiveActionUseCase_Execute_NotResolved(t *testing.T) {
	existing := storedAction(t, vo.ActionStatusOpen)

	mockActions := &mockCorrectiveActionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inspection.CorrectiveAction, error) {
			return existing, nil
		},
	}

	useCase := NewVerifyCorrectiveActionUseCase(mockActions, &mockActivityRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), VerifyCorrectiveActionCommand{
		InspectionID: 100,
		ActionID:     50,
		VerifierID:   33,
	})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidStateError(err))
}
