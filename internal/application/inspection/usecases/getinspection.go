package usecases

import (
	"context"

	"luster/internal/application/inspection/dto"
	"luster/internal/domain/inspection"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
)

type GetInspectionQuery struct {
	InspectionID uint
	// IncludeGuidance attaches area-type checklist hints per category.
	// The lookup is best-effort: a failing provider yields no guidance,
	// never an error.
	IncludeGuidance bool
}

type GetInspectionUseCase struct {
	inspectionRepo inspection.InspectionRepository
	actionRepo     inspection.CorrectiveActionRepository
	signoffRepo    inspection.SignoffRepository
	facilities     FacilityDirectory
	users          UserDirectory
	guidance       GuidanceProvider
	logger         logger.Interface
}

func NewGetInspectionUseCase(
	inspectionRepo inspection.InspectionRepository,
	actionRepo inspection.CorrectiveActionRepository,
	signoffRepo inspection.SignoffRepository,
	facilities FacilityDirectory,
	users UserDirectory,
	guidance GuidanceProvider,
	logger logger.Interface,
) *GetInspectionUseCase {
	return &GetInspectionUseCase{
		inspectionRepo: inspectionRepo,
		actionRepo:     actionRepo,
		signoffRepo:    signoffRepo,
		facilities:     facilities,
		users:          users,
		guidance:       guidance,
		logger:         logger,
	}
}

func (uc *GetInspectionUseCase) Execute(ctx context.Context, query GetInspectionQuery) (*dto.InspectionDTO, error) {
	if query.InspectionID == 0 {
		return nil, errors.NewValidationError("inspection ID is required")
	}

	insp, err := uc.inspectionRepo.GetByID(ctx, query.InspectionID)
	if err != nil {
		uc.logger.Errorw("failed to load inspection", "inspection_id", query.InspectionID, "error", err)
		return nil, err
	}
	if insp == nil {
		return nil, errors.NewNotFoundError("inspection not found")
	}

	result := dto.ToInspectionDTO(insp)

	actions, err := uc.actionRepo.GetByInspectionID(ctx, insp.ID())
	if err != nil {
		uc.logger.Errorw("failed to load corrective actions", "inspection_id", insp.ID(), "error", err)
		return nil, err
	}
	for _, action := range actions {
		result.CorrectiveActions = append(result.CorrectiveActions, dto.ToCorrectiveActionDTO(action))
	}

	signoffs, err := uc.signoffRepo.GetByInspectionID(ctx, insp.ID())
	if err != nil {
		uc.logger.Errorw("failed to load signoffs", "inspection_id", insp.ID(), "error", err)
		return nil, err
	}
	for _, signoff := range signoffs {
		result.Signoffs = append(result.Signoffs, dto.ToSignoffDTO(signoff))
	}

	uc.enrichNames(ctx, result)

	if query.IncludeGuidance && uc.guidance != nil {
		result.Guidance = uc.lookupGuidance(ctx, insp)
	}

	return result, nil
}

// enrichNames resolves facility and inspector display names. Both lookups are
// decoration only; a failing directory leaves the IDs as they are.
func (uc *GetInspectionUseCase) enrichNames(ctx context.Context, result *dto.InspectionDTO) {
	if uc.facilities != nil {
		if facility, err := uc.facilities.GetFacility(ctx, result.FacilityID); err == nil && facility != nil {
			result.FacilityName = facility.Name
		} else if err != nil {
			uc.logger.Warnw("facility lookup failed", "facility_id", result.FacilityID, "error", err)
		}
	}

	if uc.users != nil {
		if user, err := uc.users.GetUser(ctx, result.InspectorID); err == nil && user != nil {
			result.InspectorName = user.Name
		} else if err != nil {
			uc.logger.Warnw("inspector lookup failed", "inspector_id", result.InspectorID, "error", err)
		}
	}
}

func (uc *GetInspectionUseCase) lookupGuidance(ctx context.Context, insp *inspection.Inspection) map[string][]string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, item := range insp.Items() {
		if !seen[item.Category()] {
			seen[item.Category()] = true
			categories = append(categories, item.Category())
		}
	}

	guidance, err := uc.guidance.ForCategories(ctx, categories)
	if err != nil {
		uc.logger.Warnw("guidance lookup failed, continuing without", "inspection_id", insp.ID(), "error", err)
		return nil
	}
	return guidance
}
