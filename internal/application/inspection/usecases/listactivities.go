package usecases

import (
	"context"

	"luster/internal/application/inspection/dto"
	"luster/internal/domain/inspection"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
)

type ListActivitiesQuery struct {
	InspectionID uint
}

type ListActivitiesUseCase struct {
	inspectionRepo inspection.InspectionRepository
	activityRepo   inspection.ActivityRepository
	logger         logger.Interface
}

func NewListActivitiesUseCase(
	inspectionRepo inspection.InspectionRepository,
	activityRepo inspection.ActivityRepository,
	logger logger.Interface,
) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{
		inspectionRepo: inspectionRepo,
		activityRepo:   activityRepo,
		logger:         logger,
	}
}

func (uc *ListActivitiesUseCase) Execute(ctx context.Context, query ListActivitiesQuery) ([]dto.ActivityDTO, error) {
	if query.InspectionID == 0 {
		return nil, errors.NewValidationError("inspection ID is required")
	}

	insp, err := uc.inspectionRepo.GetByID(ctx, query.InspectionID)
	if err != nil {
		uc.logger.Errorw("failed to load inspection", "inspection_id", query.InspectionID, "error", err)
		return nil, err
	}
	if insp == nil {
		return nil, errors.NewNotFoundError("inspection not found")
	}

	activities, err := uc.activityRepo.GetByInspectionID(ctx, query.InspectionID)
	if err != nil {
		uc.logger.Errorw("failed to load activities", "inspection_id", query.InspectionID, "error", err)
		return nil, err
	}

	result := make([]dto.ActivityDTO, 0, len(activities))
	for _, activity := range activities {
		result = append(result, dto.ToActivityDTO(activity))
	}
	return result, nil
}
