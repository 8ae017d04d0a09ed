package dto

import (
	"time"

	"luster/internal/domain/template"
)

type TemplateDTO struct {
	ID          uint              `json:"id"`
	SID         string            `json:"sid"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ContractID  *uint             `json:"contract_id"`
	Items       []TemplateItemDTO `json:"items"`
	Archived    bool              `json:"archived"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type TemplateItemDTO struct {
	Category string `json:"category"`
	Text     string `json:"text"`
	Weight   int    `json:"weight"`
}

type TemplateListItemDTO struct {
	ID        uint      `json:"id"`
	SID       string    `json:"sid"`
	Name      string    `json:"name"`
	ItemCount int       `json:"item_count"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
}

func ToTemplateDTO(tpl *template.Template) *TemplateDTO {
	if tpl == nil {
		return nil
	}

	items := tpl.Items()
	itemDTOs := make([]TemplateItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, TemplateItemDTO{
			Category: item.Category,
			Text:     item.Text,
			Weight:   item.Weight,
		})
	}

	return &TemplateDTO{
		ID:          tpl.ID(),
		SID:         tpl.SID(),
		Name:        tpl.Name(),
		Description: tpl.Description(),
		ContractID:  tpl.ContractID(),
		Items:       itemDTOs,
		Archived:    tpl.IsArchived(),
		CreatedAt:   tpl.CreatedAt(),
		UpdatedAt:   tpl.UpdatedAt(),
	}
}

func ToTemplateListItemDTO(tpl *template.Template) TemplateListItemDTO {
	return TemplateListItemDTO{
		ID:        tpl.ID(),
		SID:       tpl.SID(),
		Name:      tpl.Name(),
		ItemCount: len(tpl.Items()),
		Archived:  tpl.IsArchived(),
		CreatedAt: tpl.CreatedAt(),
	}
}
