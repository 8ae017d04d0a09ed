package usecases

import (
	"context"

	"luster/internal/domain/inspection"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
)

type DeleteInspectionCommand struct {
	InspectionID uint
}

type DeleteInspectionUseCase struct {
	inspectionRepo inspection.InspectionRepository
	actionRepo     inspection.CorrectiveActionRepository
	signoffRepo    inspection.SignoffRepository
	activityRepo   inspection.ActivityRepository
	txMgr          TransactionManager
	logger         logger.Interface
}

func NewDeleteInspectionUseCase(
	inspectionRepo inspection.InspectionRepository,
	actionRepo inspection.CorrectiveActionRepository,
	signoffRepo inspection.SignoffRepository,
	activityRepo inspection.ActivityRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *DeleteInspectionUseCase {
	return &DeleteInspectionUseCase{
		inspectionRepo: inspectionRepo,
		actionRepo:     actionRepo,
		signoffRepo:    signoffRepo,
		activityRepo:   activityRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute removes the inspection and everything hanging off it. Hard delete:
// corrective actions, sign-offs and the activity trail go with the record.
func (uc *DeleteInspectionUseCase) Execute(ctx context.Context, cmd DeleteInspectionCommand) error {
	uc.logger.Infow("executing delete inspection use case", "inspection_id", cmd.InspectionID)

	if cmd.InspectionID == 0 {
		return errors.NewValidationError("inspection ID is required")
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		insp, err := uc.inspectionRepo.GetByID(txCtx, cmd.InspectionID)
		if err != nil {
			uc.logger.Errorw("failed to load inspection", "inspection_id", cmd.InspectionID, "error", err)
			return err
		}
		if insp == nil {
			return errors.NewNotFoundError("inspection not found")
		}

		if err := uc.actionRepo.DeleteByInspectionID(txCtx, cmd.InspectionID); err != nil {
			return err
		}
		if err := uc.signoffRepo.DeleteByInspectionID(txCtx, cmd.InspectionID); err != nil {
			return err
		}
		if err := uc.activityRepo.DeleteByInspectionID(txCtx, cmd.InspectionID); err != nil {
			return err
		}
		return uc.inspectionRepo.Delete(txCtx, cmd.InspectionID)
	})
	if txErr != nil {
		return txErr
	}

	uc.logger.Infow("inspection deleted", "inspection_id", cmd.InspectionID)
	return nil
}
