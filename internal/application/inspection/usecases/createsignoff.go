package usecases

import (
	"context"
	"time"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
)

type CreateSignoffCommand struct {
	InspectionID uint
	SignerType   string
	SignerName   string
	SignerTitle  string
	Comments     string
	ActorID      *uint
}

type CreateSignoffResult struct {
	SignoffID uint
	SignedAt  time.Time
}

type CreateSignoffUseCase struct {
	inspectionRepo inspection.InspectionRepository
	signoffRepo    inspection.SignoffRepository
	activityRepo   inspection.ActivityRepository
	txMgr          TransactionManager
	logger         logger.Interface
}

func NewCreateSignoffUseCase(
	inspectionRepo inspection.InspectionRepository,
	signoffRepo inspection.SignoffRepository,
	activityRepo inspection.ActivityRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *CreateSignoffUseCase {
	return &CreateSignoffUseCase{
		inspectionRepo: inspectionRepo,
		signoffRepo:    signoffRepo,
		activityRepo:   activityRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *CreateSignoffUseCase) Execute(ctx context.Context, cmd CreateSignoffCommand) (*CreateSignoffResult, error) {
	uc.logger.Infow("executing create signoff use case",
		"inspection_id", cmd.InspectionID,
		"signer_type", cmd.SignerType,
	)

	if cmd.InspectionID == 0 {
		return nil, errors.NewValidationError("inspection ID is required")
	}
	signerType, err := vo.NewSignerType(cmd.SignerType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.SignerName) == 0 {
		return nil, errors.NewValidationError("signer name is required")
	}

	var signoff *inspection.Signoff

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		insp, err := uc.inspectionRepo.GetByID(txCtx, cmd.InspectionID)
		if err != nil {
			uc.logger.Errorw("failed to load inspection", "inspection_id", cmd.InspectionID, "error", err)
			return err
		}
		if insp == nil {
			return errors.NewNotFoundError("inspection not found")
		}

		if !insp.Status().IsCompleted() {
			return errors.NewInvalidStateError("only completed inspections can be signed off")
		}

		signoff, err = inspection.NewSignoff(cmd.InspectionID, signerType, cmd.SignerName, cmd.SignerTitle, cmd.Comments)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.signoffRepo.Save(txCtx, signoff); err != nil {
			uc.logger.Errorw("failed to save signoff", "error", err)
			return err
		}

		metadata := map[string]any{
			"signoff_id":  signoff.ID(),
			"signer_type": signerType.String(),
		}
		return appendActivity(txCtx, uc.activityRepo, insp.ID(), vo.ActivitySignoffCreated, cmd.ActorID, metadata)
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("signoff created", "signoff_id", signoff.ID(), "inspection_id", cmd.InspectionID)

	return &CreateSignoffResult{
		SignoffID: signoff.ID(),
		SignedAt:  signoff.SignedAt(),
	}, nil
}
