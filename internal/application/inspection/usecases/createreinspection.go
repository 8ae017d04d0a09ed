package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
)

type CreateReinspectionCommand struct {
	SourceInspectionID uint
	ScheduledDate      time.Time
	ActorID            *uint
}

type CreateReinspectionResult struct {
	InspectionID uint
	Number       string
	ItemCount    int
	CreatedAt    time.Time
}

type CreateReinspectionUseCase struct {
	inspectionRepo inspection.InspectionRepository
	activityRepo   inspection.ActivityRepository
	numberGen      inspection.NumberGenerator
	txMgr          TransactionManager
	logger         logger.Interface
}

func NewCreateReinspectionUseCase(
	inspectionRepo inspection.InspectionRepository,
	activityRepo inspection.ActivityRepository,
	numberGen inspection.NumberGenerator,
	txMgr TransactionManager,
	logger logger.Interface,
) *CreateReinspectionUseCase {
	return &CreateReinspectionUseCase{
		inspectionRepo: inspectionRepo,
		activityRepo:   activityRepo,
		numberGen:      numberGen,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *CreateReinspectionUseCase) Execute(ctx context.Context, cmd CreateReinspectionCommand) (*CreateReinspectionResult, error) {
	uc.logger.Infow("executing create reinspection use case", "source_inspection_id", cmd.SourceInspectionID)

	if cmd.SourceInspectionID == 0 {
		return nil, errors.NewValidationError("source inspection ID is required")
	}

	var reinspection *inspection.Inspection

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		source, err := uc.inspectionRepo.GetByID(txCtx, cmd.SourceInspectionID)
		if err != nil {
			uc.logger.Errorw("failed to load source inspection", "inspection_id", cmd.SourceInspectionID, "error", err)
			return err
		}
		if source == nil {
			return errors.NewNotFoundError("inspection not found")
		}

		reinspection, err = source.SpawnReinspection(cmd.ScheduledDate)
		if err != nil {
			if stderrors.Is(err, inspection.ErrInvalidTransition) || stderrors.Is(err, inspection.ErrNoFailedItems) {
				return errors.NewInvalidStateError(err.Error())
			}
			return err
		}

		number, err := uc.numberGen.Generate(txCtx)
		if err != nil {
			uc.logger.Errorw("failed to generate inspection number", "error", err)
			return fmt.Errorf("failed to generate inspection number: %w", err)
		}
		if err := reinspection.SetNumber(number); err != nil {
			return err
		}

		if err := uc.inspectionRepo.Save(txCtx, reinspection); err != nil {
			uc.logger.Errorw("failed to save reinspection", "error", err)
			return err
		}

		sourceMetadata := map[string]any{
			"reinspection_id": reinspection.ID(),
			"failed_items":    len(reinspection.Items()),
		}
		if err := appendActivity(txCtx, uc.activityRepo, source.ID(), vo.ActivityReinspectionCreated, cmd.ActorID, sourceMetadata); err != nil {
			return err
		}

		// The spawned inspection gets its own trail, same as one created
		// directly.
		createdMetadata := map[string]any{
			"item_count":         len(reinspection.Items()),
			"reinspection_of_id": source.ID(),
		}
		if reinspection.TemplateID() != nil {
			createdMetadata["template_id"] = *reinspection.TemplateID()
		}
		return appendActivity(txCtx, uc.activityRepo, reinspection.ID(), vo.ActivityCreated, cmd.ActorID, createdMetadata)
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("reinspection created",
		"inspection_id", reinspection.ID(),
		"number", reinspection.Number(),
		"source_inspection_id", cmd.SourceInspectionID,
	)

	return &CreateReinspectionResult{
		InspectionID: reinspection.ID(),
		Number:       reinspection.Number(),
		ItemCount:    len(reinspection.Items()),
		CreatedAt:    reinspection.CreatedAt(),
	}, nil
}
