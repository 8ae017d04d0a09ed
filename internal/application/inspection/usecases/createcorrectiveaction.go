package usecases

import (
	"context"
	"time"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
)

type CreateCorrectiveActionCommand struct {
	InspectionID uint
	ItemID       *uint
	Title        string
	Description  string
	Severity     string
	DueDate      *time.Time
	CreatedBy    uint
}

type CreateCorrectiveActionResult struct {
	ActionID  uint
	Status    string
	CreatedAt time.Time
}

type CreateCorrectiveActionUseCase struct {
	inspectionRepo inspection.InspectionRepository
	actionRepo     inspection.CorrectiveActionRepository
	activityRepo   inspection.ActivityRepository
	txMgr          TransactionManager
	logger         logger.Interface
}

func NewCreateCorrectiveActionUseCase(
	inspectionRepo inspection.InspectionRepository,
	actionRepo inspection.CorrectiveActionRepository,
	activityRepo inspection.ActivityRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *CreateCorrectiveActionUseCase {
	return &CreateCorrectiveActionUseCase{
		inspectionRepo: inspectionRepo,
		actionRepo:     actionRepo,
		activityRepo:   activityRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *CreateCorrectiveActionUseCase) Execute(ctx context.Context, cmd CreateCorrectiveActionCommand) (*CreateCorrectiveActionResult, error) {
	uc.logger.Infow("executing create corrective action use case",
		"inspection_id", cmd.InspectionID,
		"severity", cmd.Severity,
	)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create corrective action command", "error", err)
		return nil, err
	}

	severity := vo.Severity(cmd.Severity)

	var action *inspection.CorrectiveAction

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		insp, err := uc.inspectionRepo.GetByID(txCtx, cmd.InspectionID)
		if err != nil {
			uc.logger.Errorw("failed to load inspection", "inspection_id", cmd.InspectionID, "error", err)
			return err
		}
		if insp == nil {
			return errors.NewNotFoundError("inspection not found")
		}

		if !insp.CanCreateCorrectiveAction() {
			return errors.NewInvalidStateError("cannot create corrective action on a canceled inspection")
		}

		if cmd.ItemID != nil && !itemBelongsTo(insp, *cmd.ItemID) {
			return errors.NewValidationError("item does not belong to this inspection")
		}

		action, err = inspection.NewCorrectiveAction(
			cmd.InspectionID,
			cmd.ItemID,
			cmd.Title,
			cmd.Description,
			severity,
			cmd.DueDate,
			cmd.CreatedBy,
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.actionRepo.Save(txCtx, action); err != nil {
			uc.logger.Errorw("failed to save corrective action", "error", err)
			return err
		}

		metadata := map[string]any{
			"action_id": action.ID(),
			"severity":  action.Severity().String(),
		}
		if cmd.ItemID != nil {
			metadata["item_id"] = *cmd.ItemID
		}
		actorID := cmd.CreatedBy
		return appendActivity(txCtx, uc.activityRepo, insp.ID(), vo.ActivityCorrectiveActionCreated, &actorID, metadata)
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("corrective action created", "action_id", action.ID(), "inspection_id", cmd.InspectionID)

	return &CreateCorrectiveActionResult{
		ActionID:  action.ID(),
		Status:    action.Status().String(),
		CreatedAt: action.CreatedAt(),
	}, nil
}

func (uc *CreateCorrectiveActionUseCase) validateCommand(cmd CreateCorrectiveActionCommand) error {
	if cmd.InspectionID == 0 {
		return errors.NewValidationError("inspection ID is required")
	}
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if cmd.CreatedBy == 0 {
		return errors.NewValidationError("creator ID is required")
	}
	if !vo.Severity(cmd.Severity).IsValid() {
		return errors.NewValidationError("invalid severity")
	}
	return nil
}

func itemBelongsTo(insp *inspection.Inspection, itemID uint) bool {
	for _, item := range insp.Items() {
		if item.ID() == itemID {
			return true
		}
	}
	return false
}
