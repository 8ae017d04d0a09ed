package usecases

import (
	"context"
	"fmt"
	"time"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/domain/template"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
)

// InspectionItemInput is one ad hoc checklist line supplied when the
// inspection is not instantiated from a template.
type InspectionItemInput struct {
	Category string
	Text     string
	Weight   int
}

type CreateInspectionCommand struct {
	FacilityID    uint
	InspectorID   uint
	ScheduledDate time.Time
	TemplateID    *uint
	JobID         *uint
	AppointmentID *uint
	Notes         string
	Items         []InspectionItemInput
	ActorID       *uint
}

type CreateInspectionResult struct {
	InspectionID uint
	Number       string
	Status       string
	ItemCount    int
	CreatedAt    time.Time
}

type CreateInspectionUseCase struct {
	inspectionRepo inspection.InspectionRepository
	activityRepo   inspection.ActivityRepository
	templateRepo   template.Repository
	numberGen      inspection.NumberGenerator
	txMgr          TransactionManager
	logger         logger.Interface
}

func NewCreateInspectionUseCase(
	inspectionRepo inspection.InspectionRepository,
	activityRepo inspection.ActivityRepository,
	templateRepo template.Repository,
	numberGen inspection.NumberGenerator,
	txMgr TransactionManager,
	logger logger.Interface,
) *CreateInspectionUseCase {
	return &CreateInspectionUseCase{
		inspectionRepo: inspectionRepo,
		activityRepo:   activityRepo,
		templateRepo:   templateRepo,
		numberGen:      numberGen,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *CreateInspectionUseCase) Execute(ctx context.Context, cmd CreateInspectionCommand) (*CreateInspectionResult, error) {
	uc.logger.Infow("executing create inspection use case",
		"facility_id", cmd.FacilityID,
		"inspector_id", cmd.InspectorID,
		"template_id", cmd.TemplateID,
	)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create inspection command", "error", err)
		return nil, err
	}

	items, err := uc.buildItems(ctx, cmd)
	if err != nil {
		return nil, err
	}

	insp, err := inspection.NewInspection(cmd.FacilityID, cmd.InspectorID, cmd.ScheduledDate, items)
	if err != nil {
		uc.logger.Errorw("failed to create inspection entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	insp.SetJobContext(cmd.JobID, cmd.AppointmentID, cmd.TemplateID)
	if cmd.Notes != "" {
		insp.SetNotes(cmd.Notes)
	}

	number, err := uc.numberGen.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate inspection number", "error", err)
		return nil, fmt.Errorf("failed to generate inspection number: %w", err)
	}
	if err := insp.SetNumber(number); err != nil {
		return nil, err
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.inspectionRepo.Save(txCtx, insp); err != nil {
			uc.logger.Errorw("failed to save inspection", "error", err)
			return err
		}

		metadata := map[string]any{"item_count": len(items)}
		if cmd.TemplateID != nil {
			metadata["template_id"] = *cmd.TemplateID
		}
		return appendActivity(txCtx, uc.activityRepo, insp.ID(), vo.ActivityCreated, cmd.ActorID, metadata)
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("inspection created successfully", "inspection_id", insp.ID(), "number", insp.Number())

	return &CreateInspectionResult{
		InspectionID: insp.ID(),
		Number:       insp.Number(),
		Status:       insp.Status().String(),
		ItemCount:    len(items),
		CreatedAt:    insp.CreatedAt(),
	}, nil
}

func (uc *CreateInspectionUseCase) validateCommand(cmd CreateInspectionCommand) error {
	if cmd.FacilityID == 0 {
		return errors.NewValidationError("facility ID is required")
	}
	if cmd.InspectorID == 0 {
		return errors.NewValidationError("inspector ID is required")
	}
	if cmd.ScheduledDate.IsZero() {
		return errors.NewValidationError("scheduled date is required")
	}
	if cmd.TemplateID == nil && len(cmd.Items) == 0 {
		return errors.NewValidationError("either a template ID or at least one item is required")
	}
	if cmd.TemplateID != nil && len(cmd.Items) > 0 {
		return errors.NewValidationError("template ID and ad hoc items are mutually exclusive")
	}
	return nil
}

func (uc *CreateInspectionUseCase) buildItems(ctx context.Context, cmd CreateInspectionCommand) ([]*inspection.Item, error) {
	if cmd.TemplateID != nil {
		tpl, err := uc.templateRepo.GetByID(ctx, *cmd.TemplateID)
		if err != nil {
			uc.logger.Errorw("failed to load template", "template_id", *cmd.TemplateID, "error", err)
			return nil, err
		}
		if tpl == nil {
			return nil, errors.NewNotFoundError("template not found")
		}
		if tpl.IsArchived() {
			return nil, errors.NewValidationError("cannot instantiate an archived template")
		}

		tplItems := tpl.Items()
		items := make([]*inspection.Item, 0, len(tplItems))
		for _, ti := range tplItems {
			item, err := inspection.NewItem(ti.Category, ti.Text, ti.Weight)
			if err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			items = append(items, item)
		}
		return items, nil
	}

	items := make([]*inspection.Item, 0, len(cmd.Items))
	for idx, input := range cmd.Items {
		item, err := inspection.NewItem(input.Category, input.Text, input.Weight)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("item %d: %s", idx+1, err.Error()))
		}
		items = append(items, item)
	}
	return items, nil
}
