package usecases

import (
	"context"

	"luster/internal/application/template/dto"
	"luster/internal/domain/template"
	"luster/internal/shared/logger"
)

type ListTemplatesQuery struct {
	Name            string
	ContractID      *uint
	IncludeArchived bool
	Page            int
	PageSize        int
}

type ListTemplatesResult struct {
	Templates []dto.TemplateListItemDTO
	Total     int64
	Page      int
	PageSize  int
}

type ListTemplatesUseCase struct {
	templateRepo template.Repository
	logger       logger.Interface
}

func NewListTemplatesUseCase(
	templateRepo template.Repository,
	logger logger.Interface,
) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

func (uc *ListTemplatesUseCase) Execute(ctx context.Context, query ListTemplatesQuery) (*ListTemplatesResult, error) {
	filter := template.Filter{
		Name:            query.Name,
		ContractID:      query.ContractID,
		IncludeArchived: query.IncludeArchived,
		Page:            query.Page,
		PageSize:        query.PageSize,
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	templates, total, err := uc.templateRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list templates", "error", err)
		return nil, err
	}

	items := make([]dto.TemplateListItemDTO, 0, len(templates))
	for _, tpl := range templates {
		items = append(items, dto.ToTemplateListItemDTO(tpl))
	}

	return &ListTemplatesResult{
		Templates: items,
		Total:     total,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	}, nil
}
