package dto

import (
	"time"

	"luster/internal/domain/inspection"
)

type InspectionDTO struct {
	ID               uint                  `json:"id"`
	Number           string                `json:"number"`
	Status           string                `json:"status"`
	FacilityID       uint                  `json:"facility_id"`
	FacilityName     string                `json:"facility_name,omitempty"`
	InspectorID      uint                  `json:"inspector_id"`
	InspectorName    string                `json:"inspector_name,omitempty"`
	ScheduledDate    time.Time             `json:"scheduled_date"`
	JobID            *uint                 `json:"job_id"`
	AppointmentID    *uint                 `json:"appointment_id"`
	TemplateID       *uint                 `json:"template_id"`
	ReinspectionOfID *uint                 `json:"reinspection_of_id"`
	Notes            string                `json:"notes"`
	Summary          string                `json:"summary"`
	OverallScore     *int                  `json:"overall_score"`
	OverallRating    *string               `json:"overall_rating"`
	Version          int                   `json:"version"`
	Items            []ItemDTO             `json:"items"`
	Categories       []CategoryRollupDTO   `json:"categories"`
	CorrectiveActions []CorrectiveActionDTO `json:"corrective_actions,omitempty"`
	Signoffs         []SignoffDTO          `json:"signoffs,omitempty"`
	Guidance         map[string][]string   `json:"guidance,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
	StartedAt        *time.Time            `json:"started_at"`
	CompletedAt      *time.Time            `json:"completed_at"`
	CanceledAt       *time.Time            `json:"canceled_at"`
}

type ItemDTO struct {
	ID       uint   `json:"id"`
	Category string `json:"category"`
	Text     string `json:"text"`
	Weight   int    `json:"weight"`
	Score    string `json:"score,omitempty"`
	Rating   *int   `json:"rating"`
	Notes    string `json:"notes,omitempty"`
}

type CategoryRollupDTO struct {
	Category string   `json:"category"`
	Score    string   `json:"score,omitempty"`
	Rating   *float64 `json:"rating"`
	Items    int      `json:"items"`
}

type CorrectiveActionDTO struct {
	ID           uint       `json:"id"`
	InspectionID uint       `json:"inspection_id"`
	ItemID       *uint      `json:"item_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Severity     string     `json:"severity"`
	Status       string     `json:"status"`
	DueDate      *time.Time `json:"due_date"`
	CreatedBy    uint       `json:"created_by"`
	VerifiedBy   *uint      `json:"verified_by"`
	VerifiedAt   *time.Time `json:"verified_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type SignoffDTO struct {
	ID           uint      `json:"id"`
	InspectionID uint      `json:"inspection_id"`
	SignerType   string    `json:"signer_type"`
	SignerName   string    `json:"signer_name"`
	SignerTitle  string    `json:"signer_title,omitempty"`
	Comments     string    `json:"comments,omitempty"`
	SignedAt     time.Time `json:"signed_at"`
}

type ActivityDTO struct {
	ID           uint           `json:"id"`
	InspectionID uint           `json:"inspection_id"`
	Action       string         `json:"action"`
	ActorID      *uint          `json:"actor_id"`
	Metadata     map[string]any `json:"metadata"`
	CreatedAt    time.Time      `json:"created_at"`
}

type InspectionListItemDTO struct {
	ID            uint      `json:"id"`
	Number        string    `json:"number"`
	Status        string    `json:"status"`
	FacilityID    uint      `json:"facility_id"`
	InspectorID   uint      `json:"inspector_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	OverallScore  *int      `json:"overall_score"`
	OverallRating *string   `json:"overall_rating"`
	ItemCount     int       `json:"item_count"`
	FailedCount   int       `json:"failed_count"`
	Reinspection  bool      `json:"reinspection"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToInspectionDTO(insp *inspection.Inspection) *InspectionDTO {
	if insp == nil {
		return nil
	}

	items := insp.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:       item.ID(),
			Category: item.Category(),
			Text:     item.Text(),
			Weight:   item.Weight(),
			Score:    item.Score().String(),
			Rating:   item.Rating(),
			Notes:    item.Notes(),
		})
	}

	rollups := inspection.RollupByCategory(items)
	rollupDTOs := make([]CategoryRollupDTO, 0, len(rollups))
	for _, r := range rollups {
		rollupDTOs = append(rollupDTOs, CategoryRollupDTO{
			Category: r.Category,
			Score:    r.Score.String(),
			Rating:   r.Rating,
			Items:    r.Items,
		})
	}

	var rating *string
	if insp.OverallRating() != nil {
		s := insp.OverallRating().String()
		rating = &s
	}

	return &InspectionDTO{
		ID:               insp.ID(),
		Number:           insp.Number(),
		Status:           insp.Status().String(),
		FacilityID:       insp.FacilityID(),
		InspectorID:      insp.InspectorID(),
		ScheduledDate:    insp.ScheduledDate(),
		JobID:            insp.JobID(),
		AppointmentID:    insp.AppointmentID(),
		TemplateID:       insp.TemplateID(),
		ReinspectionOfID: insp.ReinspectionOfID(),
		Notes:            insp.Notes(),
		Summary:          insp.Summary(),
		OverallScore:     insp.OverallScore(),
		OverallRating:    rating,
		Version:          insp.Version(),
		Items:            itemDTOs,
		Categories:       rollupDTOs,
		CreatedAt:        insp.CreatedAt(),
		UpdatedAt:        insp.UpdatedAt(),
		StartedAt:        insp.StartedAt(),
		CompletedAt:      insp.CompletedAt(),
		CanceledAt:       insp.CanceledAt(),
	}
}

func ToInspectionListItemDTO(insp *inspection.Inspection) InspectionListItemDTO {
	var rating *string
	if insp.OverallRating() != nil {
		s := insp.OverallRating().String()
		rating = &s
	}

	return InspectionListItemDTO{
		ID:            insp.ID(),
		Number:        insp.Number(),
		Status:        insp.Status().String(),
		FacilityID:    insp.FacilityID(),
		InspectorID:   insp.InspectorID(),
		ScheduledDate: insp.ScheduledDate(),
		OverallScore:  insp.OverallScore(),
		OverallRating: rating,
		ItemCount:     len(insp.Items()),
		FailedCount:   len(insp.FailedItems()),
		Reinspection:  insp.ReinspectionOfID() != nil,
		CreatedAt:     insp.CreatedAt(),
	}
}

func ToCorrectiveActionDTO(action *inspection.CorrectiveAction) CorrectiveActionDTO {
	return CorrectiveActionDTO{
		ID:           action.ID(),
		InspectionID: action.InspectionID(),
		ItemID:       action.ItemID(),
		Title:        action.Title(),
		Description:  action.Description(),
		Severity:     action.Severity().String(),
		Status:       action.Status().String(),
		DueDate:      action.DueDate(),
		CreatedBy:    action.CreatedBy(),
		VerifiedBy:   action.VerifiedBy(),
		VerifiedAt:   action.VerifiedAt(),
		CreatedAt:    action.CreatedAt(),
		UpdatedAt:    action.UpdatedAt(),
	}
}

func ToSignoffDTO(signoff *inspection.Signoff) SignoffDTO {
	return SignoffDTO{
		ID:           signoff.ID(),
		InspectionID: signoff.InspectionID(),
		SignerType:   signoff.SignerType().String(),
		SignerName:   signoff.SignerName(),
		SignerTitle:  signoff.SignerTitle(),
		Comments:     signoff.Comments(),
		SignedAt:     signoff.SignedAt(),
	}
}

func ToActivityDTO(activity *inspection.Activity) ActivityDTO {
	return ActivityDTO{
		ID:           activity.ID(),
		InspectionID: activity.InspectionID(),
		Action:       activity.Action().String(),
		ActorID:      activity.ActorID(),
		Metadata:     activity.Metadata(),
		CreatedAt:    activity.CreatedAt(),
	}
}
