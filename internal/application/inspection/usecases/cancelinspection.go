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

type CancelInspectionCommand struct {
	InspectionID uint
	Reason       string
	ActorID      *uint
}

type CancelInspectionResult struct {
	InspectionID uint
	Status       string
	CanceledAt   time.Time
}

type CancelInspectionUseCase struct {
	inspectionRepo inspection.InspectionRepository
	activityRepo   inspection.ActivityRepository
	txMgr          TransactionManager
	logger         logger.Interface
}

func NewCancelInspectionUseCase(
	inspectionRepo inspection.InspectionRepository,
	activityRepo inspection.ActivityRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *CancelInspectionUseCase {
	return &CancelInspectionUseCase{
		inspectionRepo: inspectionRepo,
		activityRepo:   activityRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *CancelInspectionUseCase) Execute(ctx context.Context, cmd CancelInspectionCommand) (*CancelInspectionResult, error) {
	uc.logger.Infow("executing cancel inspection use case", "inspection_id", cmd.InspectionID)

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

		if err := insp.Cancel(cmd.Reason); err != nil {
			if stderrors.Is(err, inspection.ErrInvalidTransition) {
				return errors.NewInvalidStateError(err.Error())
			}
			return err
		}

		if err := uc.inspectionRepo.Update(txCtx, insp); err != nil {
			uc.logger.Errorw("failed to update inspection", "inspection_id", cmd.InspectionID, "error", err)
			return err
		}

		metadata := map[string]any{}
		if cmd.Reason != "" {
			metadata["reason"] = cmd.Reason
		}
		return appendActivity(txCtx, uc.activityRepo, insp.ID(), vo.ActivityCanceled, cmd.ActorID, metadata)
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("inspection canceled", "inspection_id", insp.ID(), "number", insp.Number())

	return &CancelInspectionResult{
		InspectionID: insp.ID(),
		Status:       insp.Status().String(),
		CanceledAt:   *insp.CanceledAt(),
	}, nil
}
