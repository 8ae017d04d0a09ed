package usecases

import (
	"context"
	"fmt"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
)

// appendActivity writes one audit entry inside the caller's transaction.
// Every successful transition appends exactly one entry, so a failed append
// must roll the whole mutation back with it.
func appendActivity(
	ctx context.Context,
	repo inspection.ActivityRepository,
	inspectionID uint,
	action vo.ActivityAction,
	actorID *uint,
	metadata map[string]any,
) error {
	activity, err := inspection.NewActivity(inspectionID, action, actorID, metadata)
	if err != nil {
		return fmt.Errorf("failed to build activity entry: %w", err)
	}
	if err := repo.Append(ctx, activity); err != nil {
		return fmt.Errorf("failed to append activity entry: %w", err)
	}
	return nil
}
