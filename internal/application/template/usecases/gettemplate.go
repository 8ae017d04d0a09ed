package usecases

import (
	"context"

	"luster/internal/application/template/dto"
	"luster/internal/domain/template"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
)

// GetTemplateQuery fetches by numeric ID or by the external SID; exactly one
// must be set.
type GetTemplateQuery struct {
	TemplateID uint
	SID        string
}

type GetTemplateUseCase struct {
	templateRepo template.Repository
	logger       logger.Interface
}

func NewGetTemplateUseCase(
	templateRepo template.Repository,
	logger logger.Interface,
) *GetTemplateUseCase {
	return &GetTemplateUseCase{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

func (uc *GetTemplateUseCase) Execute(ctx context.Context, query GetTemplateQuery) (*dto.TemplateDTO, error) {
	var (
		tpl *template.Template
		err error
	)

	switch {
	case query.TemplateID != 0:
		tpl, err = uc.templateRepo.GetByID(ctx, query.TemplateID)
	case query.SID != "":
		tpl, err = uc.templateRepo.GetBySID(ctx, query.SID)
	default:
		return nil, errors.NewValidationError("template ID or SID is required")
	}

	if err != nil {
		uc.logger.Errorw("failed to load template", "template_id", query.TemplateID, "sid", query.SID, "error", err)
		return nil, err
	}
	if tpl == nil {
		return nil, errors.NewNotFoundError("template not found")
	}

	return dto.ToTemplateDTO(tpl), nil
}
