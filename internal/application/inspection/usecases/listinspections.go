package usecases

import (
	"context"
	"time"

	"luster/internal/application/inspection/dto"
	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
)

type ListInspectionsQuery struct {
	Status           string
	FacilityID       *uint
	InspectorID      *uint
	TemplateID       *uint
	ReinspectionOfID *uint
	ScheduledFrom    *time.Time
	ScheduledTo      *time.Time
	Page             int
	PageSize         int
	SortBy           string
	SortOrder        string
}

type ListInspectionsResult struct {
	Inspections []dto.InspectionListItemDTO
	Total       int64
	Page        int
	PageSize    int
}

type ListInspectionsUseCase struct {
	inspectionRepo inspection.InspectionRepository
	logger         logger.Interface
}

func NewListInspectionsUseCase(
	inspectionRepo inspection.InspectionRepository,
	logger logger.Interface,
) *ListInspectionsUseCase {
	return &ListInspectionsUseCase{
		inspectionRepo: inspectionRepo,
		logger:         logger,
	}
}

func (uc *ListInspectionsUseCase) Execute(ctx context.Context, query ListInspectionsQuery) (*ListInspectionsResult, error) {
	filter := inspection.Filter{
		FacilityID:       query.FacilityID,
		InspectorID:      query.InspectorID,
		TemplateID:       query.TemplateID,
		ReinspectionOfID: query.ReinspectionOfID,
		ScheduledFrom:    query.ScheduledFrom,
		ScheduledTo:      query.ScheduledTo,
		Page:             query.Page,
		PageSize:         query.PageSize,
		SortBy:           query.SortBy,
		SortOrder:        query.SortOrder,
	}

	if query.Status != "" {
		status, err := vo.NewInspectionStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	inspections, total, err := uc.inspectionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list inspections", "error", err)
		return nil, err
	}

	items := make([]dto.InspectionListItemDTO, 0, len(inspections))
	for _, insp := range inspections {
		items = append(items, dto.ToInspectionListItemDTO(insp))
	}

	return &ListInspectionsResult{
		Inspections: items,
		Total:       total,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
	}, nil
}
