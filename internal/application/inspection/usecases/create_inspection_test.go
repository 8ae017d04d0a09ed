package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/domain/template"
	"luster/internal/shared/errors"
)

func TestCreateInspectionUseCase_Execute_AdHocItems(t *testing.T) {
	var saved *inspection.Inspection
	mockRepo := &mockInspectionRepository{
		SaveFunc: func(ctx context.Context, insp *inspection.Inspection) error {
			saved = insp
			return insp.SetID(100)
		},
	}
	mockActivities := &mockActivityRepository{}

	useCase := NewCreateInspectionUseCase(mockRepo, mockActivities, &mockTemplateRepository{}, &mockNumberGenerator{}, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreateInspectionCommand{
		FacilityID:    10,
		InspectorID:   20,
		ScheduledDate: time.Now().AddDate(0, 0, 1),
		Items: []InspectionItemInput{
			{Category: "Kitchen", Text: "Floors mopped", Weight: 2},
			{Category: "Restroom", Text: "Fixtures sanitized", Weight: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(100), result.InspectionID)
	assert.Equal(t, "INS-20260831-0001", result.Number)
	assert.Equal(t, "scheduled", result.Status)
	assert.Equal(t, 2, result.ItemCount)

	require.NotNil(t, saved)
	require.Len(t, mockActivities.appended, 1)
	assert.Equal(t, vo.ActivityCreated, mockActivities.appended[0].Action())
	assert.Equal(t, 2, mockActivities.appended[0].Metadata()["item_count"])
}

func TestCreateInspectionUseCase_Execute_FromTemplate(t *testing.T) {
	templateID := uint(7)
	tpl, err := template.ReconstructTemplate(
		templateID, "tpl_xK9mP2vL3nQs", "Office Standard", "", nil,
		[]template.TemplateItem{
			{Category: "Kitchen", Text: "Floors mopped", Weight: 2},
			{Category: "Lobby", Text: "Glass streak-free", Weight: 1},
		},
		false, time.Now(), time.Now(),
	)
	require.NoError(t, err)

	mockTemplates := &mockTemplateRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*template.Template, error) {
			assert.Equal(t, templateID, id)
			return tpl, nil
		},
	}
	mockRepo := &mockInspectionRepository{
		SaveFunc: func(ctx context.Context, insp *inspection.Inspection) error {
			return insp.SetID(101)
		},
	}
	mockActivities := &mockActivityRepository{}

	useCase := NewCreateInspectionUseCase(mockRepo, mockActivities, mockTemplates, &mockNumberGenerator{}, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreateInspectionCommand{
		FacilityID:    10,
		InspectorID:   20,
		ScheduledDate: time.Now().AddDate(0, 0, 1),
		TemplateID:    &templateID,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.ItemCount)
	require.Len(t, mockActivities.appended, 1)
	assert.Equal(t, templateID, mockActivities.appended[0].Metadata()["template_id"])
}

func TestCreateInspectionUseCase_Execute_ArchivedTemplate(t *testing.T) {
	templateID := uint(7)
	tpl, err := template.ReconstructTemplate(
		templateID, "tpl_xK9mP2vL3nQs", "Office Standard", "", nil,
		[]template.TemplateItem{{Category: "Kitchen", Text: "Floors mopped", Weight: 2}},
		true, time.Now(), time.Now(),
	)
	require.NoError(t, err)

	mockTemplates := &mockTemplateRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*template.Template, error) {
			return tpl, nil
		},
	}

	useCase := NewCreateInspectionUseCase(&mockInspectionRepository{}, &mockActivityRepository{}, mockTemplates, &mockNumberGenerator{}, &mockTxManager{}, &mockLogger{})

	_, err = useCase.Execute(context.Background(), CreateInspectionCommand{
		FacilityID:    10,
		InspectorID:   20,
		ScheduledDate: time.Now(),
		TemplateID:    &templateID,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateInspectionUseCase_Execute_ValidationErrors(t *testing.T) {
	templateID := uint(7)

	tests := []struct {
		name string
		cmd  CreateInspectionCommand
	}{
		{
			name: "missing facility",
			cmd: CreateInspectionCommand{
				InspectorID:   20,
				ScheduledDate: time.Now(),
				Items:         []InspectionItemInput{{Category: "Kitchen", Text: "Floors", Weight: 1}},
			},
		},
		{
			name: "missing inspector",
			cmd: CreateInspectionCommand{
				FacilityID:    10,
				ScheduledDate: time.Now(),
				Items:         []InspectionItemInput{{Category: "Kitchen", Text: "Floors", Weight: 1}},
			},
		},
		{
			name: "neither template nor items",
			cmd: CreateInspectionCommand{
				FacilityID:    10,
				InspectorID:   20,
				ScheduledDate: time.Now(),
			},
		},
		{
			name: "template and items are exclusive",
			cmd: CreateInspectionCommand{
				FacilityID:    10,
				InspectorID:   20,
				ScheduledDate: time.Now(),
				TemplateID:    &templateID,
				Items:         []InspectionItemInput{{Category: "Kitchen", Text: "Floors", Weight: 1}},
			},
		},
	}

	useCase := NewCreateInspectionUseCase(&mockInspectionRepository{}, &mockActivityRepository{}, &mockTemplateRepository{}, &mockNumberGenerator{}, &mockTxManager{}, &mockLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := useCase.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
