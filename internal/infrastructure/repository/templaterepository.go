package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"luster/internal/domain/template"
	"luster/internal/infrastructure/persistence/mappers"
	"luster/internal/infrastructure/persistence/models"
	"luster/internal/shared/db"
)

type TemplateRepository struct {
	db     *gorm.DB
	mapper mappers.TemplateMapper
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{
		db:     db,
		mapper: mappers.NewTemplateMapper(),
	}
}

func (r *TemplateRepository) Save(ctx context.Context, tpl *template.Template) error {
	model := r.mapper.ToModel(tpl)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}

	if err := tpl.SetID(model.ID); err != nil {
		return err
	}

	for _, itemModel := range r.mapper.ItemsToModels(tpl) {
		if err := tx.Create(itemModel).Error; err != nil {
			return fmt.Errorf("failed to save template item: %w", err)
		}
	}

	return nil
}

// Update rewrites the template row and replaces its item rows. Items carry no
// identity of their own: inspections copy them at creation time, so a full
// replace never disturbs existing inspections.
func (r *TemplateRepository) Update(ctx context.Context, tpl *template.Template) error {
	model := r.mapper.ToModel(tpl)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InspectionTemplateModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "sid", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update template: %w", result.Error)
	}

	if err := tx.
		Where("template_id = ?", model.ID).
		Delete(&models.InspectionTemplateItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to replace template items: %w", err)
	}

	for _, itemModel := range r.mapper.ItemsToModels(tpl) {
		if err := tx.Create(itemModel).Error; err != nil {
			return fmt.Errorf("failed to save template item: %w", err)
		}
	}

	return nil
}

func (r *TemplateRepository) GetByID(ctx context.Context, templateID uint) (*template.Template, error) {
	var model models.InspectionTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, templateID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}

	return r.loadAggregate(ctx, &model)
}

func (r *TemplateRepository) GetBySID(ctx context.Context, sid string) (*template.Template, error) {
	var model models.InspectionTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}

	return r.loadAggregate(ctx, &model)
}

func (r *TemplateRepository) GetByContractID(ctx context.Context, contractID uint) ([]*template.Template, error) {
	var templateModels []models.InspectionTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("contract_id = ? AND archived = ?", contractID, false).
		Order("name ASC").
		Find(&templateModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find templates: %w", err)
	}

	templates := make([]*template.Template, len(templateModels))
	for i := range templateModels {
		tpl, err := r.loadAggregate(ctx, &templateModels[i])
		if err != nil {
			return nil, err
		}
		templates[i] = tpl
	}

	return templates, nil
}

func (r *TemplateRepository) List(
	ctx context.Context,
	filter template.Filter,
) ([]*template.Template, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.InspectionTemplateModel{})

	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.ContractID != nil {
		query = query.Where("contract_id = ?", *filter.ContractID)
	}
	if !filter.IncludeArchived {
		query = query.Where("archived = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count templates: %w", err)
	}

	query = query.Order("name ASC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var templateModels []models.InspectionTemplateModel
	if err := query.Find(&templateModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list templates: %w", err)
	}

	templates := make([]*template.Template, len(templateModels))
	for i := range templateModels {
		tpl, err := r.loadAggregate(ctx, &templateModels[i])
		if err != nil {
			return nil, 0, err
		}
		templates[i] = tpl
	}

	return templates, total, nil
}

func (r *TemplateRepository) loadAggregate(ctx context.Context, model *models.InspectionTemplateModel) (*template.Template, error) {
	var itemModels []*models.InspectionTemplateItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("template_id = ?", model.ID).
		Order("position ASC").
		Find(&itemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load template items: %w", err)
	}

	return r.mapper.ToDomain(model, itemModels)
}
