package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/infrastructure/persistence/models"
)

type ActivityMapper interface {
	ToModel(activity *inspection.Activity) *models.ActivityModel
	ToDomain(model *models.ActivityModel) (*inspection.Activity, error)
}

type ActivityMapperImpl struct{}

func NewActivityMapper() ActivityMapper {
	return &ActivityMapperImpl{}
}

func (m *ActivityMapperImpl) ToModel(activity *inspection.Activity) *models.ActivityModel {
	return &models.ActivityModel{
		ID:           activity.ID(),
		InspectionID: activity.InspectionID(),
		Action:       activity.Action().String(),
		ActorID:      activity.ActorID(),
		Metadata:     datatypes.JSONMap(activity.Metadata()),
		CreatedAt:    activity.CreatedAt().UnixMilli(),
	}
}

func (m *ActivityMapperImpl) ToDomain(model *models.ActivityModel) (*inspection.Activity, error) {
	action, err := vo.NewActivityAction(model.Action)
	if err != nil {
		return nil, fmt.Errorf("failed to map activity action (id=%d): %w", model.ID, err)
	}

	return inspection.ReconstructActivity(
		model.ID,
		model.InspectionID,
		action,
		model.ActorID,
		map[string]any(model.Metadata),
		millisToTime(model.CreatedAt),
	)
}
