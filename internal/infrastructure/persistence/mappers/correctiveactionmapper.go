package mappers

import (
	"fmt"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/infrastructure/persistence/models"
)

type CorrectiveActionMapper interface {
	ToModel(action *inspection.CorrectiveAction) *models.CorrectiveActionModel
	ToDomain(model *models.CorrectiveActionModel) (*inspection.CorrectiveAction, error)
}

type CorrectiveActionMapperImpl struct{}

func NewCorrectiveActionMapper() CorrectiveActionMapper {
	return &CorrectiveActionMapperImpl{}
}

func (m *CorrectiveActionMapperImpl) ToModel(action *inspection.CorrectiveAction) *models.CorrectiveActionModel {
	model := &models.CorrectiveActionModel{
		ID:           action.ID(),
		InspectionID: action.InspectionID(),
		ItemID:       action.ItemID(),
		Title:        action.Title(),
		Description:  action.Description(),
		Severity:     action.Severity().String(),
		Status:       action.Status().String(),
		CreatedBy:    action.CreatedBy(),
		VerifiedBy:   action.VerifiedBy(),
		CreatedAt:    action.CreatedAt().UnixMilli(),
		UpdatedAt:    action.UpdatedAt().UnixMilli(),
	}

	if action.DueDate() != nil {
		due := action.DueDate().UnixMilli()
		model.DueDate = &due
	}
	if action.VerifiedAt() != nil {
		verified := action.VerifiedAt().UnixMilli()
		model.VerifiedAt = &verified
	}

	return model
}

func (m *CorrectiveActionMapperImpl) ToDomain(model *models.CorrectiveActionModel) (*inspection.CorrectiveAction, error) {
	severity, err := vo.NewSeverity(model.Severity)
	if err != nil {
		return nil, fmt.Errorf("failed to map corrective action severity (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewActionStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map corrective action status (id=%d): %w", model.ID, err)
	}

	return inspection.ReconstructCorrectiveAction(
		model.ID,
		model.InspectionID,
		model.ItemID,
		model.Title,
		model.Description,
		severity,
		status,
		millisPtrToTime(model.DueDate),
		model.CreatedBy,
		model.VerifiedBy,
		millisPtrToTime(model.VerifiedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
