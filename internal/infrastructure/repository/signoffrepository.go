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

type SignoffRepository struct {
	db     *gorm.DB
	mapper mappers.SignoffMapper
}

func NewSignoffRepository(db *gorm.DB) *SignoffRepository {
	return &SignoffRepository{
		db:     db,
		mapper: mappers.NewSignoffMapper(),
	}
}

func (r *SignoffRepository) Save(ctx context.Context, signoff *inspection.Signoff) error {
	model := r.mapper.ToModel(signoff)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save sign-off: %w", err)
	}

	if err := signoff.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *SignoffRepository) GetByInspectionID(ctx context.Context, inspectionID uint) ([]*inspection.Signoff, error) {
	var signoffModels []models.SignoffModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inspection_id = ?", inspectionID).
		Order("signed_at ASC").
		Find(&signoffModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find sign-offs: %w", err)
	}

	signoffs := make([]*inspection.Signoff, len(signoffModels))
	for i, model := range signoffModels {
		signoff, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		signoffs[i] = signoff
	}

	return signoffs, nil
}

func (r *SignoffRepository) DeleteByInspectionID(ctx context.Context, inspectionID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inspection_id = ?", inspectionID).
		Delete(&models.SignoffModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete sign-offs: %w", err)
	}
	return nil
}
