package usecases

import (
	"context"

	"luster/internal/application/template/dto"
	"luster/internal/domain/template"
	"luster/internal/shared/errors"
	"luster/internal/shared/id"
	"luster/internal/shared/logger"
)

type TemplateItemInput struct {
	Category string
	Text     string
	Weight   int
}

type CreateTemplateCommand struct {
	Name        string
	Description string
	ContractID  *uint
	Items       []TemplateItemInput
}

type CreateTemplateUseCase struct {
	templateRepo template.Repository
	logger       logger.Interface
}

func NewCreateTemplateUseCase(
	templateRepo template.Repository,
	logger logger.Interface,
) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

func (uc *CreateTemplateUseCase) Execute(ctx context.Context, cmd CreateTemplateCommand) (*dto.TemplateDTO, error) {
	uc.logger.Infow("executing create template use case", "name", cmd.Name, "item_count", len(cmd.Items))

	items := make([]template.TemplateItem, 0, len(cmd.Items))
	for _, input := range cmd.Items {
		items = append(items, template.TemplateItem{
			Category: input.Category,
			Text:     input.Text,
			Weight:   input.Weight,
		})
	}

	tpl, err := template.NewTemplate(cmd.Name, cmd.Description, cmd.ContractID, items)
	if err != nil {
		uc.logger.Errorw("failed to create template entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	sid, err := id.NewTemplateID()
	if err != nil {
		uc.logger.Errorw("failed to generate template SID", "error", err)
		return nil, err
	}
	if err := tpl.SetSID(sid); err != nil {
		return nil, err
	}

	if err := uc.templateRepo.Save(ctx, tpl); err != nil {
		uc.logger.Errorw("failed to save template", "error", err)
		return nil, err
	}

	uc.logger.Infow("template created successfully", "template_id", tpl.ID(), "sid", tpl.SID())
	return dto.ToTemplateDTO(tpl), nil
}
