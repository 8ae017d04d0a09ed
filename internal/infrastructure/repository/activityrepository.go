package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"luster/internal/domain/inspection"
	"luster/internal/infrastructure/persistence/mappers"
	"luster/internal/infrastructure/persistence/models"
	"luster/internal/shared/db"
)

// ActivityRepository is the append-only store behind the inspection activity
// log. There is no update path on purpose.
type ActivityRepository struct {
	db     *gorm.DB
	mapper mappers.ActivityMapper
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{
		db:     db,
		mapper: mappers.NewActivityMapper(),
	}
}

func (r *ActivityRepository) Append(ctx context.Context, activity *inspection.Activity) error {
	model := r.mapper.ToModel(activity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}

	if err := activity.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ActivityRepository) GetByInspectionID(ctx context.Context, inspectionID uint) ([]*inspection.Activity, error) {
	var activityModels []models.ActivityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inspection_id = ?", inspectionID).
		Order("created_at ASC, id ASC").
		Find(&activityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find activities: %w", err)
	}

	activities := make([]*inspection.Activity, len(activityModels))
	for i, model := range activityModels {
		activity, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		activities[i] = activity
	}

	return activities, nil
}

func (r *ActivityRepository) DeleteByInspectionID(ctx context.Context, inspectionID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inspection_id = ?", inspectionID).
		Delete(&models.ActivityModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete activities: %w", err)
	}
	return nil
}
