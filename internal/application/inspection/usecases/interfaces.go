package usecases

import (
	"context"

	"luster/internal/application/inspection/dto"
)

type CreateInspectionExecutor interface {
	Execute(ctx context.Context, cmd CreateInspectionCommand) (*CreateInspectionResult, error)
}

type GetInspectionExecutor interface {
	Execute(ctx context.Context, query GetInspectionQuery) (*dto.InspectionDTO, error)
}

type ListInspectionsExecutor interface {
	Execute(ctx context.Context, query ListInspectionsQuery) (*ListInspectionsResult, error)
}

type StartInspectionExecutor interface {
	Execute(ctx context.Context, cmd StartInspectionCommand) (*StartInspectionResult, error)
}

type CompleteInspectionExecutor interface {
	Execute(ctx context.Context, cmd CompleteInspectionCommand) (*CompleteInspectionResult, error)
}

type CancelInspectionExecutor interface {
	Execute(ctx context.Context, cmd CancelInspectionCommand) (*CancelInspectionResult, error)
}

type DeleteInspectionExecutor interface {
	Execute(ctx context.Context, cmd DeleteInspectionCommand) error
}

type CreateCorrectiveActionExecutor interface {
	Execute(ctx context.Context, cmd CreateCorrectiveActionCommand) (*CreateCorrectiveActionResult, error)
}

type UpdateCorrectiveActionExecutor interface {
	Execute(ctx context.Context, cmd UpdateCorrectiveActionCommand) (*dto.CorrectiveActionDTO, error)
}

type VerifyCorrectiveActionExecutor interface {
	Execute(ctx context.Context, cmd VerifyCorrectiveActionCommand) (*dto.CorrectiveActionDTO, error)
}

type CreateSignoffExecutor interface {
	Execute(ctx context.Context, cmd CreateSignoffCommand) (*CreateSignoffResult, error)
}

type CreateReinspectionExecutor interface {
	Execute(ctx context.Context, cmd CreateReinspectionCommand) (*CreateReinspectionResult, error)
}

type ListActivitiesExecutor interface {
	Execute(ctx context.Context, query ListActivitiesQuery) ([]dto.ActivityDTO, error)
}

type RenderReportExecutor interface {
	Execute(ctx context.Context, query RenderReportQuery) (*RenderReportResult, error)
}

// TransactionManager runs a function inside a storage transaction; the
// repositories pick the transaction up from the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
