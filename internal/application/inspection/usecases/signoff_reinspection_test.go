package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/shared/errors"
)

func TestCreateSignoffUseCase_Execute(t *testing.T) {
	existing := storedInspection(t, vo.StatusCompleted)

	mockRepo := &mockInspectionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inspection.Inspection, error) {
			return existing, nil
		},
	}
	mockSignoffs := &mockSignoffRepository{
		SaveFunc: func(ctx context.Context, signoff *inspection.Signoff) error {
			return signoff.SetID(70)
		},
	}
	mockActivities := &mockActivityRepository{}

	useCase := NewCreateSignoffUseCase(mockRepo, mockSignoffs, mockActivities, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreateSignoffCommand{
		InspectionID: 100,
		SignerType:   "client",
		SignerName:   "M. Okafor",
		SignerTitle:  "Facility Manager",
		Comments:     "Lobby looks great",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(70), result.SignoffID)
	assert.False(t, result.SignedAt.IsZero())

	require.Len(t, mockActivities.appended, 1)
	activity := mockActivities.appended[0]
	assert.Equal(t, vo.ActivitySignoffCreated, activity.Action())
	assert.Equal(t, "client", activity.Metadata()["signer_type"])
}

func TestCreateSignoffUseCase_Execute_NotCompleted(t *testing.T) {
	for _, status := range []vo.InspectionStatus{vo.StatusScheduled, vo.StatusInProgress, vo.StatusCanceled} {
		t.Run(status.String(), func(t *testing.T) {
			existing := storedInspection(t, status)
			mockRepo := &mockInspectionRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*inspection.Inspection, error) {
					return existing, nil
				},
			}

			useCase := NewCreateSignoffUseCase(mockRepo, &mockSignoffRepository{}, &mockActivityRepository{}, &mockTxManager{}, &mockLogger{})

			_, err := useCase.Execute(context.Background(), CreateSignoffCommand{
				InspectionID: 100,
				SignerType:   "supervisor",
				SignerName:   "Dana Reyes",
			})

			require.Error(t, err)
			assert.True(t, errors.IsInvalidStateError(err))
		})
	}
}

func TestCreateSignoffUseCase_Execute_InvalidSignerType(t *testing.T) {
	useCase := NewCreateSignoffUseCase(&mockInspectionRepository{}, &mockSignoffRepository{}, &mockActivityRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), CreateSignoffCommand{
		InspectionID: 100,
		SignerType:   "janitor",
		SignerName:   "Dana Reyes",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateReinspectionUseCase_Execute(t *testing.T) {
	source := storedInspection(t, vo.StatusCompleted) // restroom item failed

	var saved *inspection.Inspection
	mockRepo := &mockInspectionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inspection.Inspection, error) {
			return source, nil
		},
		SaveFunc: func(ctx context.Context, insp *inspection.Inspection) error {
			saved = insp
			return insp.SetID(200)
		},
	}
	mockActivities := &mockActivityRepository{}
	mockNumbers := &mockNumberGenerator{
		GenerateFunc: func(ctx context.Context) (string, error) {
			return "INS-20260831-0002", nil
		},
	}

	useCase := NewCreateReinspectionUseCase(mockRepo, mockActivities, mockNumbers, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreateReinspectionCommand{
		SourceInspectionID: 100,
		ScheduledDate:      time.Now().AddDate(0, 0, 3),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(200), result.InspectionID)
	assert.Equal(t, "INS-20260831-0002", result.Number)
	assert.Equal(t, 1, result.ItemCount)

	require.NotNil(t, saved)
	require.NotNil(t, saved.ReinspectionOfID())
	assert.Equal(t, uint(100), *saved.ReinspectionOfID())
	require.Len(t, saved.Items(), 1)
	assert.Equal(t, "Restroom", saved.Items()[0].Category())

	require.Len(t, mockActivities.appended, 2)

	sourceActivity := mockActivities.appended[0]
	assert.Equal(t, vo.ActivityReinspectionCreated, sourceActivity.Action())
	assert.Equal(t, uint(100), sourceActivity.InspectionID(), "first activity belongs to the source inspection")
	assert.Equal(t, uint(200), sourceActivity.Metadata()["reinspection_id"])

	createdActivity := mockActivities.appended[1]
	assert.Equal(t, vo.ActivityCreated, createdActivity.Action())
	assert.Equal(t, uint(200), createdActivity.InspectionID(), "spawned inspection starts its own trail")
	assert.Equal(t, uint(100), createdActivity.Metadata()["reinspection_of_id"])
	assert.Equal(t, 1, createdActivity.Metadata()["item_count"])
}

func TestCreateReinspectionUseCase_Execute_InvalidSource(t *testing.T) {
	t.Run("not completed", func(t *testing.T) {
		source := storedInspection(t, vo.StatusInProgress)
		mockRepo := &mockInspectionRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*inspection.Inspection, error) {
				return source, nil
			},
		}

		useCase := NewCreateReinspectionUseCase(mockRepo, &mockActivityRepository{}, &mockNumberGenerator{}, &mockTxManager{}, &mockLogger{})

		_, err := useCase.Execute(context.Background(), CreateReinspectionCommand{SourceInspectionID: 100})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidStateError(err))
	})

	t.Run("no failed items", func(t *testing.T) {
		kitchen, err := inspection.ReconstructItem(1, 100, "Kitchen", "Floors", 2, vo.ScorePass, nil, "")
		require.NoError(t, err)
		now := time.Now()
		score := 100
		rating := vo.RatingExcellent
		source, err := inspection.ReconstructInspection(
			100, "INS-20260831-0001", vo.StatusCompleted,
			10, 20, now, nil, nil, nil, nil, "", "",
			&score, &rating, []*inspection.Item{kitchen},
			1, now, now, nil, &now, nil,
		)
		require.NoError(t, err)

		mockRepo := &mockInspectionRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*inspection.Inspection, error) {
				return source, nil
			},
		}

		useCase := NewCreateReinspectionUseCase(mockRepo, &mockActivityRepository{}, &mockNumberGenerator{}, &mockTxManager{}, &mockLogger{})

		_, err = useCase.Execute(context.Background(), CreateReinspectionCommand{SourceInspectionID: 100})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidStateError(err))
	})
}

func TestGetInspectionUseCase_Execute(t *testing.T) {
	existing := storedInspection(t, vo.StatusCompleted)

	mockRepo := &mockInspectionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inspection.Inspection, error) {
			return existing, nil
		},
	}
	mockActions := &mockCorrectiveActionRepository{
		GetByInspectionIDFunc: func(ctx context.Context, inspectionID uint) ([]*inspection.CorrectiveAction, error) {
			return []*inspection.CorrectiveAction{storedAction(t, vo.ActionStatusOpen)}, nil
		},
	}
	mockFacilities := &mockFacilityDirectory{
		GetFacilityFunc: func(ctx context.Context, facilityID uint) (*FacilityInfo, error) {
			return &FacilityInfo{ID: facilityID, Name: "Northside Medical Plaza"}, nil
		},
	}
	mockUsers := &mockUserDirectory{
		GetUserFunc: func(ctx context.Context, userID uint) (*UserInfo, error) {
			return &UserInfo{ID: userID, Name: "Dana Reyes"}, nil
		},
	}
	mockGuidance := &mockGuidanceProvider{
		ForCategoriesFunc: func(ctx context.Context, categories []string) (map[string][]string, error) {
			assert.ElementsMatch(t, []string{"Kitchen", "Restroom"}, categories)
			return map[string][]string{"Restroom": {"Check dispensers weekly"}}, nil
		},
	}

	useCase := NewGetInspectionUseCase(mockRepo, mockActions, &mockSignoffRepository{}, mockFacilities, mockUsers, mockGuidance, &mockLogger{})

	result, err := useCase.Execute(context.Background(), GetInspectionQuery{InspectionID: 100, IncludeGuidance: true})

	require.NoError(t, err)
	assert.Equal(t, "INS-20260831-0001", result.Number)
	assert.Equal(t, "Northside Medical Plaza", result.FacilityName)
	assert.Equal(t, "Dana Reyes", result.InspectorName)
	require.Len(t, result.CorrectiveActions, 1)
	assert.Len(t, result.Items, 2)
	assert.Len(t, result.Categories, 2)
	assert.Equal(t, []string{"Check dispensers weekly"}, result.Guidance["Restroom"])
}

func TestGetInspectionUseCase_Execute_GuidanceFailureIgnored(t *testing.T) {
	existing := storedInspection(t, vo.StatusCompleted)

	mockRepo := &mockInspectionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inspection.Inspection, error) {
			return existing, nil
		},
	}
	mockGuidance := &mockGuidanceProvider{
		ForCategoriesFunc: func(ctx context.Context, categories []string) (map[string][]string, error) {
			return nil, fmt.Errorf("guidance backend unavailable")
		},
	}

	useCase := NewGetInspectionUseCase(mockRepo, &mockCorrectiveActionRepository{}, &mockSignoffRepository{}, nil, nil, mockGuidance, &mockLogger{})

	result, err := useCase.Execute(context.Background(), GetInspectionQuery{InspectionID: 100, IncludeGuidance: true})

	require.NoError(t, err, "guidance failure must not fail the read")
	assert.Nil(t, result.Guidance)
}
