package usecases

import (
	"context"
	"time"

	"luster/internal/application/inspection/dto"
	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
)

// UpdateCorrectiveActionCommand patches detail fields and/or requests a status
// transition. Nil pointers leave the corresponding field untouched.
type UpdateCorrectiveActionCommand struct {
	InspectionID uint
	ActionID     uint
	Title        *string
	Description  *string
	Severity     *string
	DueDate      *time.Time
	ClearDueDate bool
	Status       *string
	ActorID      *uint
}

type UpdateCorrectiveActionUseCase struct {
	actionRepo   inspection.CorrectiveActionRepository
	activityRepo inspection.ActivityRepository
	txMgr        TransactionManager
	logger       logger.Interface
}

func NewUpdateCorrectiveActionUseCase(
	actionRepo inspection.CorrectiveActionRepository,
	activityRepo inspection.ActivityRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *UpdateCorrectiveActionUseCase {
	return &UpdateCorrectiveActionUseCase{
		actionRepo:   actionRepo,
		activityRepo: activityRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *UpdateCorrectiveActionUseCase) Execute(ctx context.Context, cmd UpdateCorrectiveActionCommand) (*dto.CorrectiveActionDTO, error) {
	uc.logger.Infow("executing update corrective action use case",
		"inspection_id", cmd.InspectionID,
		"action_id", cmd.ActionID,
	)

	if cmd.InspectionID == 0 {
		return nil, errors.NewValidationError("inspection ID is required")
	}
	if cmd.ActionID == 0 {
		return nil, errors.NewValidationError("action ID is required")
	}

	var severity *vo.Severity
	if cmd.Severity != nil {
		s, err := vo.NewSeverity(*cmd.Severity)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		severity = &s
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

		if err := action.UpdateDetails(cmd.Title, cmd.Description, severity, cmd.DueDate, cmd.ClearDueDate); err != nil {
			return errors.NewValidationError(err.Error())
		}

		previousStatus := action.Status()
		statusChanged := false
		if cmd.Status != nil {
			newStatus, err := vo.NewActionStatus(*cmd.Status)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if newStatus != previousStatus {
				if err := action.ChangeStatus(newStatus); err != nil {
					return errors.NewInvalidStateError(err.Error())
				}
				statusChanged = true
			}
		}

		if err := uc.actionRepo.Update(txCtx, action); err != nil {
			uc.logger.Errorw("failed to update corrective action", "action_id", cmd.ActionID, "error", err)
			return err
		}

		if statusChanged {
			metadata := map[string]any{
				"action_id": action.ID(),
				"from":      previousStatus.String(),
				"to":        action.Status().String(),
			}
			return appendActivity(txCtx, uc.activityRepo, cmd.InspectionID, vo.ActivityCorrectiveActionStatus, cmd.ActorID, metadata)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("corrective action updated", "action_id", action.ID(), "status", action.Status().String())

	result := dto.ToCorrectiveActionDTO(action)
	return &result, nil
}
