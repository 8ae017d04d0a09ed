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

// ItemScoreEntry scores a single item by ID.
type ItemScoreEntry struct {
	ItemID uint
	Score  string
	Rating *int
	Notes  string
}

// CategoryScoreEntry is the bulk-entry shortcut: the entry is fanned out to
// every item sharing the category. Item-level entries take precedence over a
// category entry covering the same item.
type CategoryScoreEntry struct {
	Category string
	Score    string
	Rating   *int
	Notes    string
}

type CompleteInspectionCommand struct {
	InspectionID uint
	Summary      string
	Items        []ItemScoreEntry
	Categories   []CategoryScoreEntry
	ActorID      *uint
}

type CompleteInspectionResult struct {
	InspectionID  uint
	Status        string
	OverallScore  *int
	OverallRating *string
	FailedItems   int
	CompletedAt   time.Time
}

type CompleteInspectionUseCase struct {
	inspectionRepo inspection.InspectionRepository
	activityRepo   inspection.ActivityRepository
	txMgr          TransactionManager
	logger         logger.Interface
}

func NewCompleteInspectionUseCase(
	inspectionRepo inspection.InspectionRepository,
	activityRepo inspection.ActivityRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *CompleteInspectionUseCase {
	return &CompleteInspectionUseCase{
		inspectionRepo: inspectionRepo,
		activityRepo:   activityRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *CompleteInspectionUseCase) Execute(ctx context.Context, cmd CompleteInspectionCommand) (*CompleteInspectionResult, error) {
	uc.logger.Infow("executing complete inspection use case",
		"inspection_id", cmd.InspectionID,
		"item_entries", len(cmd.Items),
		"category_entries", len(cmd.Categories),
	)

	if cmd.InspectionID == 0 {
		return nil, errors.NewValidationError("inspection ID is required")
	}
	if len(cmd.Items) == 0 && len(cmd.Categories) == 0 {
		return nil, errors.NewValidationError("at least one item or category score entry is required")
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

		results, err := expandScoreEntries(insp, cmd)
		if err != nil {
			return err
		}

		if err := insp.Complete(cmd.Summary, results); err != nil {
			switch {
			case stderrors.Is(err, inspection.ErrInvalidTransition):
				return errors.NewInvalidStateError(err.Error())
			case stderrors.Is(err, inspection.ErrUnscoredItem):
				return errors.NewValidationError(err.Error())
			default:
				return errors.NewValidationError(err.Error())
			}
		}

		if err := uc.inspectionRepo.Update(txCtx, insp); err != nil {
			uc.logger.Errorw("failed to update inspection", "inspection_id", cmd.InspectionID, "error", err)
			return err
		}

		metadata := map[string]any{"failed_items": len(insp.FailedItems())}
		if insp.OverallScore() != nil {
			metadata["overall_score"] = *insp.OverallScore()
			metadata["overall_rating"] = insp.OverallRating().String()
		}
		return appendActivity(txCtx, uc.activityRepo, insp.ID(), vo.ActivityCompleted, cmd.ActorID, metadata)
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("inspection completed",
		"inspection_id", insp.ID(),
		"overall_score", insp.OverallScore(),
		"failed_items", len(insp.FailedItems()),
	)

	var rating *string
	if insp.OverallRating() != nil {
		s := insp.OverallRating().String()
		rating = &s
	}

	return &CompleteInspectionResult{
		InspectionID:  insp.ID(),
		Status:        insp.Status().String(),
		OverallScore:  insp.OverallScore(),
		OverallRating: rating,
		FailedItems:   len(insp.FailedItems()),
		CompletedAt:   *insp.CompletedAt(),
	}, nil
}

// expandScoreEntries resolves category shortcuts and item entries into one
// result per item. The stored unit of truth stays per-item; category entries
// are a bulk-entry convenience only.
func expandScoreEntries(insp *inspection.Inspection, cmd CompleteInspectionCommand) (map[uint]inspection.ItemResult, error) {
	results := make(map[uint]inspection.ItemResult)

	byCategory := make(map[string]CategoryScoreEntry)
	for _, entry := range cmd.Categories {
		if _, dup := byCategory[entry.Category]; dup {
			return nil, errors.NewValidationError(fmt.Sprintf("duplicate category entry: %s", entry.Category))
		}
		byCategory[entry.Category] = entry
	}

	knownItems := make(map[uint]bool, len(insp.Items()))
	matchedCategories := make(map[string]bool, len(byCategory))
	for _, item := range insp.Items() {
		knownItems[item.ID()] = true
		if entry, ok := byCategory[item.Category()]; ok {
			matchedCategories[item.Category()] = true
			results[item.ID()] = inspection.ItemResult{
				Score:  vo.ItemScore(entry.Score),
				Rating: entry.Rating,
				Notes:  entry.Notes,
			}
		}
	}

	for category := range byCategory {
		if !matchedCategories[category] {
			return nil, errors.NewValidationError(fmt.Sprintf("no items in category: %s", category))
		}
	}

	for _, entry := range cmd.Items {
		if !knownItems[entry.ItemID] {
			return nil, errors.NewValidationError(fmt.Sprintf("item %d does not belong to this inspection", entry.ItemID))
		}
		results[entry.ItemID] = inspection.ItemResult{
			Score:  vo.ItemScore(entry.Score),
			Rating: entry.Rating,
			Notes:  entry.Notes,
		}
	}

	return results, nil
}
