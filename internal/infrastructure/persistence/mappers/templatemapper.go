package mappers

import (
	"luster/internal/domain/template"
	"luster/internal/infrastructure/persistence/models"
)

// TemplateMapper converts between checklist templates and their two-table
// persistence shape. Item rows are ordered by position.
type TemplateMapper interface {
	ToModel(tpl *template.Template) *models.InspectionTemplateModel
	ItemsToModels(tpl *template.Template) []*models.InspectionTemplateItemModel
	ToDomain(model *models.InspectionTemplateModel, itemModels []*models.InspectionTemplateItemModel) (*template.Template, error)
}

type TemplateMapperImpl struct{}

func NewTemplateMapper() TemplateMapper {
	return &TemplateMapperImpl{}
}

func (m *TemplateMapperImpl) ToModel(tpl *template.Template) *models.InspectionTemplateModel {
	return &models.InspectionTemplateModel{
		ID:          tpl.ID(),
		SID:         tpl.SID(),
		Name:        tpl.Name(),
		Description: tpl.Description(),
		ContractID:  tpl.ContractID(),
		Archived:    tpl.IsArchived(),
		CreatedAt:   tpl.CreatedAt().UnixMilli(),
		UpdatedAt:   tpl.UpdatedAt().UnixMilli(),
	}
}

func (m *TemplateMapperImpl) ItemsToModels(tpl *template.Template) []*models.InspectionTemplateItemModel {
	items := tpl.Items()
	itemModels := make([]*models.InspectionTemplateItemModel, 0, len(items))
	for position, item := range items {
		itemModels = append(itemModels, &models.InspectionTemplateItemModel{
			TemplateID: tpl.ID(),
			Position:   position,
			Category:   item.Category,
			Text:       item.Text,
			Weight:     item.Weight,
		})
	}
	return itemModels
}

func (m *TemplateMapperImpl) ToDomain(model *models.InspectionTemplateModel, itemModels []*models.InspectionTemplateItemModel) (*template.Template, error) {
	items := make([]template.TemplateItem, 0, len(itemModels))
	for _, itemModel := range itemModels {
		items = append(items, template.TemplateItem{
			Category: itemModel.Category,
			Text:     itemModel.Text,
			Weight:   itemModel.Weight,
		})
	}

	return template.ReconstructTemplate(
		model.ID,
		model.SID,
		model.Name,
		model.Description,
		model.ContractID,
		items,
		model.Archived,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
