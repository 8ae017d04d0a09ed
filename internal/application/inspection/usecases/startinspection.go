package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
)

type StartInspectionCommand struct {
	InspectionID uint
	ActorID      *uint
}

type StartInspectionResult struct {
	InspectionID uint
	Status       string
	StartedAt    time.Time
}

type StartInspectionUseCase struct {
	inspectionRepo inspection.InspectionRepository
	activityRepo   inspection.ActivityRepository
	txMgr          TransactionManager
	logger         logger.Interface
}

func NewStartInspectionUseCase(
	inspectionRepo inspection.InspectionRepository,
	activityRepo inspection.ActivityRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *StartInspectionUseCase {
	return &StartInspectionUseCase{
		inspectionRepo: inspectionRepo,
		activityRepo:   activityRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *StartInspectionUseCase) Execute(ctx context.Context, cmd StartInspectionCommand) (*StartInspectionResult, error) {
	uc.logger.Infow("executing start inspection use case", "inspection_id", cmd.InspectionID)

	if cmd.InspectionID == 0 {
		return nil, errors.NewValidationError("inspection ID is required")
	}

	var insp *inspection.Inspection

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		insp, err = uc.inspectionRepo.GetByID(txCtx, cmd.InspectionID)
		if err != nil {
			uc.logger.Errorw("failed to load inspection", "inspection_id", cmd.InspectionID, "error", err)
			return err
		}
		if insp == nil {
			return errors.NewNotFoundError("inspection not found")
		}

		if err := insp.Start(); err != nil {
			if stderrors.Is(err, inspection.ErrInvalidTransition) {
				return errors.NewInvalidStateError(err.Error())
			}
			return err
		}

		if err := uc.inspectionRepo.Update(txCtx, insp); err != nil {
			uc.logger.Errorw("failed to update inspection", "inspection_id", cmd.InspectionID, "error", err)
			return err
		}

		return appendActivity(txCtx, uc.activityRepo, insp.ID(), vo.ActivityStarted, cmd.ActorID, nil)
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("inspection started", "inspection_id", insp.ID(), "number", insp.Number())

	return &StartInspectionResult{
		InspectionID: insp.ID(),
		Status:       insp.Status().String(),
		StartedAt:    *insp.StartedAt(),
	}, nil
}
