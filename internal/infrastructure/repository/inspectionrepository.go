package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"luster/internal/domain/inspection"
	"luster/internal/infrastructure/persistence/mappers"
	"luster/internal/infrastructure/persistence/models"
	"luster/internal/shared/db"
	"luster/internal/shared/errors"
)

// allowedInspectionOrderByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection attacks.
var allowedInspectionOrderByFields = map[string]bool{
	"id":             true,
	"number":         true,
	"status":         true,
	"facility_id":    true,
	"inspector_id":   true,
	"scheduled_date": true,
	"overall_score":  true,
	"created_at":     true,
	"updated_at":     true,
	"completed_at":   true,
}

type InspectionRepository struct {
	db     *gorm.DB
	mapper mappers.InspectionMapper
}

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{
		db:     db,
		mapper: mappers.NewInspectionMapper(),
	}
}

func (r *InspectionRepository) Save(ctx context.Context, insp *inspection.Inspection) error {
	model := r.mapper.ToModel(insp)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save inspection: %w", err)
	}

	if err := insp.SetID(model.ID); err != nil {
		return err
	}

	items := insp.Items()
	itemModels := r.mapper.ItemsToModels(insp)
	for i, itemModel := range itemModels {
		if err := tx.Create(itemModel).Error; err != nil {
			return fmt.Errorf("failed to save inspection item: %w", err)
		}
		if err := items[i].SetID(itemModel.ID); err != nil {
			return err
		}
	}

	return nil
}

// Update writes the inspection and its items back. The WHERE clause matches
// the version the aggregate was loaded at; zero affected rows means a
// concurrent writer committed first and the caller gets a conflict.
func (r *InspectionRepository) Update(ctx context.Context, insp *inspection.Inspection) error {
	model := r.mapper.ToModel(insp)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InspectionModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update inspection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("inspection was modified by another request")
	}

	for _, itemModel := range r.mapper.ItemsToModels(insp) {
		if itemModel.ID == 0 {
			return fmt.Errorf("cannot update unsaved inspection item")
		}
		if err := tx.
			Model(&models.InspectionItemModel{}).
			Where("id = ?", itemModel.ID).
			Select("score", "rating", "notes").
			Updates(itemModel).Error; err != nil {
			return fmt.Errorf("failed to update inspection item: %w", err)
		}
	}

	return nil
}

func (r *InspectionRepository) Delete(ctx context.Context, inspectionID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inspection_id = ?", inspectionID).
		Delete(&models.InspectionItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete inspection items: %w", err)
	}

	result := tx.Delete(&models.InspectionModel{}, inspectionID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete inspection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("inspection not found")
	}
	return nil
}

func (r *InspectionRepository) GetByID(ctx context.Context, inspectionID uint) (*inspection.Inspection, error) {
	var model models.InspectionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, inspectionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find inspection: %w", err)
	}

	return r.loadAggregate(ctx, &model)
}

func (r *InspectionRepository) GetByNumber(ctx context.Context, number string) (*inspection.Inspection, error) {
	var model models.InspectionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find inspection: %w", err)
	}

	return r.loadAggregate(ctx, &model)
}

func (r *InspectionRepository) List(
	ctx context.Context,
	filter inspection.Filter,
) ([]*inspection.Inspection, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.InspectionModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.FacilityID != nil {
		query = query.Where("facility_id = ?", *filter.FacilityID)
	}
	if filter.InspectorID != nil {
		query = query.Where("inspector_id = ?", *filter.InspectorID)
	}
	if filter.TemplateID != nil {
		query = query.Where("template_id = ?", *filter.TemplateID)
	}
	if filter.ReinspectionOfID != nil {
		query = query.Where("reinspection_of_id = ?", *filter.ReinspectionOfID)
	}
	if filter.ScheduledFrom != nil {
		query = query.Where("scheduled_date >= ?", filter.ScheduledFrom.UnixMilli())
	}
	if filter.ScheduledTo != nil {
		query = query.Where("scheduled_date <= ?", filter.ScheduledTo.UnixMilli())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inspections: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedInspectionOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("scheduled_date DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var inspectionModels []models.InspectionModel
	if err := query.Find(&inspectionModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list inspections: %w", err)
	}

	inspections := make([]*inspection.Inspection, len(inspectionModels))
	for i := range inspectionModels {
		insp, err := r.loadAggregate(ctx, &inspectionModels[i])
		if err != nil {
			return nil, 0, err
		}
		inspections[i] = insp
	}

	return inspections, total, nil
}

// loadAggregate queries the items for an inspection row and converts the pair
// via the mapper.
func (r *InspectionRepository) loadAggregate(ctx context.Context, model *models.InspectionModel) (*inspection.Inspection, error) {
	var itemModels []*models.InspectionItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inspection_id = ?", model.ID).
		Order("id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load inspection items: %w", err)
	}

	return r.mapper.ToDomain(model, itemModels)
}
