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

type CorrectiveActionRepository struct {
	db     *gorm.DB
	mapper mappers.CorrectiveActionMapper
}

func NewCorrectiveActionRepository(db *gorm.DB) *CorrectiveActionRepository {
	return &CorrectiveActionRepository{
		db:     db,
		mapper: mappers.NewCorrectiveActionMapper(),
	}
}

func (r *CorrectiveActionRepository) Save(ctx context.Context, action *inspection.CorrectiveAction) error {
	model := r.mapper.ToModel(action)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save corrective action: %w", err)
	}

	if err := action.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *CorrectiveActionRepository) Update(ctx context.Context, action *inspection.CorrectiveAction) error {
	model := r.mapper.ToModel(action)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CorrectiveActionModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "inspection_id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update corrective action: %w", result.Error)
	}

	return nil
}

func (r *CorrectiveActionRepository) GetByID(ctx context.Context, actionID uint) (*inspection.CorrectiveAction, error) {
	var model models.CorrectiveActionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, actionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find corrective action: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CorrectiveActionRepository) GetByInspectionID(ctx context.Context, inspectionID uint) ([]*inspection.CorrectiveAction, error) {
	var actionModels []models.CorrectiveActionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inspection_id = ?", inspectionID).
		Order("created_at ASC").
		Find(&actionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find corrective actions: %w", err)
	}

	actions := make([]*inspection.CorrectiveAction, len(actionModels))
	for i, model := range actionModels {
		action, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		actions[i] = action
	}

	return actions, nil
}

func (r *CorrectiveActionRepository) DeleteByInspectionID(ctx context.Context, inspectionID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inspection_id = ?", inspectionID).
		Delete(&models.CorrectiveActionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete corrective actions: %w", err)
	}
	return nil
}
