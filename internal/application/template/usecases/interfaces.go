package usecases

import (
	"context"

	"luster/internal/application/template/dto"
)

type CreateTemplateExecutor interface {
	Execute(ctx context.Context, cmd CreateTemplateCommand) (*dto.TemplateDTO, error)
}

type UpdateTemplateExecutor interface {
	Execute(ctx context.Context, cmd UpdateTemplateCommand) (*dto.TemplateDTO, error)
}

type ArchiveTemplateExecutor interface {
	Execute(ctx context.Context, cmd ArchiveTemplateCommand) error
}

type RestoreTemplateExecutor interface {
	Execute(ctx context.Context, cmd RestoreTemplateCommand) error
}

type GetTemplateExecutor interface {
	Execute(ctx context.Context, query GetTemplateQuery) (*dto.TemplateDTO, error)
}

type ListTemplatesExecutor interface {
	Execute(ctx context.Context, query ListTemplatesQuery) (*ListTemplatesResult, error)
}
