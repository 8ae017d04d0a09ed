package mappers

import (
	"fmt"
	"time"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/infrastructure/persistence/models"
)

// InspectionMapper handles the conversion between inspection domain entities
// and persistence models. Items ride along with the inspection; corrective
// actions, sign-offs and activities have their own mappers.
type InspectionMapper interface {
	ToModel(insp *inspection.Inspection) *models.InspectionModel
	ItemsToModels(insp *inspection.Inspection) []*models.InspectionItemModel
	ToDomain(model *models.InspectionModel, itemModels []*models.InspectionItemModel) (*inspection.Inspection, error)
}

type InspectionMapperImpl struct{}

func NewInspectionMapper() InspectionMapper {
	return &InspectionMapperImpl{}
}

func (m *InspectionMapperImpl) ToModel(insp *inspection.Inspection) *models.InspectionModel {
	model := &models.InspectionModel{
		ID:               insp.ID(),
		Number:           insp.Number(),
		Status:           insp.Status().String(),
		FacilityID:       insp.FacilityID(),
		InspectorID:      insp.InspectorID(),
		ScheduledDate:    insp.ScheduledDate().UnixMilli(),
		JobID:            insp.JobID(),
		AppointmentID:    insp.AppointmentID(),
		TemplateID:       insp.TemplateID(),
		ReinspectionOfID: insp.ReinspectionOfID(),
		Notes:            insp.Notes(),
		Summary:          insp.Summary(),
		OverallScore:     insp.OverallScore(),
		Version:          insp.Version(),
		CreatedAt:        insp.CreatedAt().UnixMilli(),
		UpdatedAt:        insp.UpdatedAt().UnixMilli(),
	}

	if insp.OverallRating() != nil {
		rating := insp.OverallRating().String()
		model.OverallRating = &rating
	}

	if insp.StartedAt() != nil {
		started := insp.StartedAt().UnixMilli()
		model.StartedAt = &started
	}
	if insp.CompletedAt() != nil {
		completed := insp.CompletedAt().UnixMilli()
		model.CompletedAt = &completed
	}
	if insp.CanceledAt() != nil {
		canceled := insp.CanceledAt().UnixMilli()
		model.CanceledAt = &canceled
	}

	return model
}

func (m *InspectionMapperImpl) ItemsToModels(insp *inspection.Inspection) []*models.InspectionItemModel {
	items := insp.Items()
	itemModels := make([]*models.InspectionItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, &models.InspectionItemModel{
			ID:           item.ID(),
			InspectionID: insp.ID(),
			Category:     item.Category(),
			Text:         item.Text(),
			Weight:       item.Weight(),
			Score:        item.Score().String(),
			Rating:       item.Rating(),
			Notes:        item.Notes(),
		})
	}
	return itemModels
}

func (m *InspectionMapperImpl) ToDomain(model *models.InspectionModel, itemModels []*models.InspectionItemModel) (*inspection.Inspection, error) {
	status, err := vo.NewInspectionStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map inspection status (id=%d): %w", model.ID, err)
	}

	items := make([]*inspection.Item, 0, len(itemModels))
	for _, itemModel := range itemModels {
		item, err := inspection.ReconstructItem(
			itemModel.ID,
			itemModel.InspectionID,
			itemModel.Category,
			itemModel.Text,
			itemModel.Weight,
			vo.ItemScore(itemModel.Score),
			itemModel.Rating,
			itemModel.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to map inspection item (id=%d): %w", itemModel.ID, err)
		}
		items = append(items, item)
	}

	var rating *vo.OverallRating
	if model.OverallRating != nil {
		r, err := vo.NewOverallRating(*model.OverallRating)
		if err != nil {
			return nil, fmt.Errorf("failed to map overall rating (id=%d): %w", model.ID, err)
		}
		rating = &r
	}

	return inspection.ReconstructInspection(
		model.ID,
		model.Number,
		status,
		model.FacilityID,
		model.InspectorID,
		millisToTime(model.ScheduledDate),
		model.JobID,
		model.AppointmentID,
		model.TemplateID,
		model.ReinspectionOfID,
		model.Notes,
		model.Summary,
		model.OverallScore,
		rating,
		items,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		millisPtrToTime(model.StartedAt),
		millisPtrToTime(model.CompletedAt),
		millisPtrToTime(model.CanceledAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}

func millisPtrToTime(millis *int64) *time.Time {
	if millis == nil {
		return nil
	}
	t := millisToTime(*millis)
	return &t
}
