package usecases

import (
	"context"

	"luster/internal/domain/template"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
)

type ArchiveTemplateCommand struct {
	TemplateID uint
}

type RestoreTemplateCommand struct {
	TemplateID uint
}

type ArchiveTemplateUseCase struct {
	templateRepo template.Repository
	logger       logger.Interface
}

func NewArchiveTemplateUseCase(
	templateRepo template.Repository,
	logger logger.Interface,
) *ArchiveTemplateUseCase {
	return &ArchiveTemplateUseCase{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

// Execute archives the template. Archiving an already archived template is a
// no-op, not an error.
func (uc *ArchiveTemplateUseCase) Execute(ctx context.Context, cmd ArchiveTemplateCommand) error {
	uc.logger.Infow("executing archive template use case", "template_id", cmd.TemplateID)

	if cmd.TemplateID == 0 {
		return errors.NewValidationError("template ID is required")
	}

	tpl, err := uc.templateRepo.GetByID(ctx, cmd.TemplateID)
	if err != nil {
		uc.logger.Errorw("failed to load template", "template_id", cmd.TemplateID, "error", err)
		return err
	}
	if tpl == nil {
		return errors.NewNotFoundError("template not found")
	}

	if tpl.IsArchived() {
		return nil
	}

	tpl.Archive()
	if err := uc.templateRepo.Update(ctx, tpl); err != nil {
		uc.logger.Errorw("failed to archive template", "template_id", cmd.TemplateID, "error", err)
		return err
	}

	uc.logger.Infow("template archived", "template_id", tpl.ID())
	return nil
}

type RestoreTemplateUseCase struct {
	templateRepo template.Repository
	logger       logger.Interface
}

func NewRestoreTemplateUseCase(
	templateRepo template.Repository,
	logger logger.Interface,
) *RestoreTemplateUseCase {
	return &RestoreTemplateUseCase{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

func (uc *RestoreTemplateUseCase) Execute(ctx context.Context, cmd RestoreTemplateCommand) error {
	uc.logger.Infow("executing restore template use case", "template_id", cmd.TemplateID)

	if cmd.TemplateID == 0 {
		return errors.NewValidationError("template ID is required")
	}

	tpl, err := uc.templateRepo.GetByID(ctx, cmd.TemplateID)
	if err != nil {
		uc.logger.Errorw("failed to load template", "template_id", cmd.TemplateID, "error", err)
		return err
	}
	if tpl == nil {
		return errors.NewNotFoundError("template not found")
	}

	if !tpl.IsArchived() {
		return nil
	}

	tpl.Restore()
	if err := uc.templateRepo.Update(ctx, tpl); err != nil {
		uc.logger.Errorw("failed to restore template", "template_id", cmd.TemplateID, "error", err)
		return err
	}

	uc.logger.Infow("template restored", "template_id", tpl.ID())
	return nil
}
