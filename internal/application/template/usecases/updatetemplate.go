package usecases

import (
	"context"

	"luster/internal/application/template/dto"
	"luster/internal/domain/template"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
)

// UpdateTemplateCommand patches a template. Nil fields are left unchanged;
// Items, when present, replaces the whole checklist. Inspections instantiated
// earlier keep their copied items.
type UpdateTemplateCommand struct {
	TemplateID  uint
	Name        *string
	Description *string
	Items       []TemplateItemInput
}

type UpdateTemplateUseCase struct {
	templateRepo template.Repository
	logger       logger.Interface
}

func NewUpdateTemplateUseCase(
	templateRepo template.Repository,
	logger logger.Interface,
) *UpdateTemplateUseCase {
	return &UpdateTemplateUseCase{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

func (uc *UpdateTemplateUseCase) Execute(ctx context.Context, cmd UpdateTemplateCommand) (*dto.TemplateDTO, error) {
	uc.logger.Infow("executing update template use case", "template_id", cmd.TemplateID)

	if cmd.TemplateID == 0 {
		return nil, errors.NewValidationError("template ID is required")
	}

	tpl, err := uc.templateRepo.GetByID(ctx, cmd.TemplateID)
	if err != nil {
		uc.logger.Errorw("failed to load template", "template_id", cmd.TemplateID, "error", err)
		return nil, err
	}
	if tpl == nil {
		return nil, errors.NewNotFoundError("template not found")
	}

	var items []template.TemplateItem
	if cmd.Items != nil {
		items = make([]template.TemplateItem, 0, len(cmd.Items))
		for _, input := range cmd.Items {
			items = append(items, template.TemplateItem{
				Category: input.Category,
				Text:     input.Text,
				Weight:   input.Weight,
			})
		}
	}

	if err := tpl.Update(cmd.Name, cmd.Description, items); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.templateRepo.Update(ctx, tpl); err != nil {
		uc.logger.Errorw("failed to update template", "template_id", cmd.TemplateID, "error", err)
		return nil, err
	}

	uc.logger.Infow("template updated successfully", "template_id", tpl.ID())
	return dto.ToTemplateDTO(tpl), nil
}
