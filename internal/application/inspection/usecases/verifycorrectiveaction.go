package usecases

import (
	"context"

	"luster/internal/application/inspection/dto"
	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
)

type VerifyCorrectiveActionCommand struct {
	InspectionID uint
	ActionID     uint
	VerifierID   uint
	Notes        string
}

type VerifyCorrectiveActionUseCase struct {
	actionRepo   inspection.CorrectiveActionRepository
	activityRepo inspection.ActivityRepository
	txMgr        TransactionManager
	logger       logger.Interface
}

func NewVerifyCorrectiveActionUseCase(
	actionRepo inspection.CorrectiveActionRepository,
	activityRepo inspection.ActivityRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *VerifyCorrectiveActionUseCase {
	return &VerifyCorrectiveActionUseCase{
		actionRepo:   actionRepo,
		activityRepo: activityRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *VerifyCorrectiveActionUseCase) Execute(ctx context.Context, cmd VerifyCorrectiveActionCommand) (*dto.CorrectiveActionDTO, error) {
	uc.logger.Infow("executing verify corrective action use case",
		"inspection_id", cmd.InspectionID,
		"action_id", cmd.ActionID,
		"verifier_id", cmd.VerifierID,
	)

	if cmd.InspectionID == 0 {
		return nil, errors.NewValidationError("inspection ID is required")
	}
	if cmd.ActionID == 0 {
		return nil, errors.NewValidationError("action ID is required")
	}
	if cmd.VerifierID == 0 {
		return nil, errors.NewValidationError("verifier ID is required")
	}

	var action *inspection.CorrectiveAction

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		action, err = uc.actionRepo.GetByID(txCtx, cmd.ActionID)
		if err != nil {
			uc.logger.Errorw("failed to load corrective action", "action_id", cmd.ActionID, "error", err)
			return err
		}
		if action == nil || action.InspectionID() != cmd.InspectionID {
			return errors.NewNotFoundError("corrective action not found")
		}

		if err := action.Verify(cmd.VerifierID); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}

		if err := uc.actionRepo.Update(txCtx, action); err != nil {
			uc.logger.Errorw("failed to update corrective action", "action_id", cmd.ActionID, "error", err)
			return err
		}

		metadata := map[string]any{"action_id": action.ID()}
		if cmd.Notes != "" {
			metadata["notes"] = cmd.Notes
		}
		return appendActivity(txCtx, uc.activityRepo, cmd.InspectionID, vo.ActivityCorrectiveActionVerified, &cmd.VerifierID, metadata)
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("corrective action verified", "action_id", action.ID(), "verifier_id", cmd.VerifierID)

	result := dto.ToCorrectiveActionDTO(action)
	return &result, nil
}
