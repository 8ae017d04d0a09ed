package inspection

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"luster/internal/application/inspection/usecases"
	"luster/internal/shared/errors"
)

type InspectionItemRequest struct {
	Category string `json:"category" binding:"required,max=100"`
	Text     string `json:"text" binding:"required"`
	Weight   int    `json:"weight" binding:"omitempty,min=1,max=10"`
}

type CreateInspectionRequest struct {
	FacilityID    uint                    `json:"facility_id" binding:"required"`
	InspectorID   uint                    `json:"inspector_id" binding:"required"`
	ScheduledDate string                  `json:"scheduled_date" binding:"required"`
	TemplateID    *uint                   `json:"template_id,omitempty"`
	JobID         *uint                   `json:"job_id,omitempty"`
	AppointmentID *uint                   `json:"appointment_id,omitempty"`
	Notes         string                  `json:"notes,omitempty" binding:"max=5000"`
	Items         []InspectionItemRequest `json:"items,omitempty"`
}

func (r *CreateInspectionRequest) ToCommand(actorID *uint) (usecases.CreateInspectionCommand, error) {
	scheduledDate, err := parseDate(r.ScheduledDate)
	if err != nil {
		return usecases.CreateInspectionCommand{}, err
	}

	items := make([]usecases.InspectionItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		weight := item.Weight
		if weight == 0 {
			weight = 1
		}
		items = append(items, usecases.InspectionItemInput{
			Category: item.Category,
			Text:     item.Text,
			Weight:   weight,
		})
	}

	return usecases.CreateInspectionCommand{
		FacilityID:    r.FacilityID,
		InspectorID:   r.InspectorID,
		ScheduledDate: scheduledDate,
		TemplateID:    r.TemplateID,
		JobID:         r.JobID,
		AppointmentID: r.AppointmentID,
		Notes:         r.Notes,
		Items:         items,
		ActorID:       actorID,
	}, nil
}

type ItemScoreRequest struct {
	ItemID uint   `json:"item_id" binding:"required"`
	Score  string `json:"score" binding:"required,oneof=pass fail na"`
	Rating *int   `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Notes  string `json:"notes,omitempty" binding:"max=2000"`
}

type CategoryScoreRequest struct {
	Category string `json:"category" binding:"required,max=100"`
	Score    string `json:"score" binding:"required,oneof=pass fail na"`
	Rating   *int   `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Notes    string `json:"notes,omitempty" binding:"max=2000"`
}

type CompleteInspectionRequest struct {
	Summary    string                 `json:"summary,omitempty" binding:"max=5000"`
	Items      []ItemScoreRequest     `json:"items,omitempty"`
	Categories []CategoryScoreRequest `json:"categories,omitempty"`
}

func (r *CompleteInspectionRequest) ToCommand(inspectionID uint, actorID *uint) usecases.CompleteInspectionCommand {
	items := make([]usecases.ItemScoreEntry, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, usecases.ItemScoreEntry{
			ItemID: item.ItemID,
			Score:  item.Score,
			Rating: item.Rating,
			Notes:  item.Notes,
		})
	}

	categories := make([]usecases.CategoryScoreEntry, 0, len(r.Categories))
	for _, category := range r.Categories {
		categories = append(categories, usecases.CategoryScoreEntry{
			Category: category.Category,
			Score:    category.Score,
			Rating:   category.Rating,
			Notes:    category.Notes,
		})
	}

	return usecases.CompleteInspectionCommand{
		InspectionID: inspectionID,
		Summary:      r.Summary,
		Items:        items,
		Categories:   categories,
		ActorID:      actorID,
	}
}

type CancelInspectionRequest struct {
	Reason string `json:"reason,omitempty" binding:"max=1000"`
}

type CreateCorrectiveActionRequest struct {
	ItemID      *uint  `json:"item_id,omitempty"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description,omitempty" binding:"max=5000"`
	Severity    string `json:"severity" binding:"required,oneof=critical major minor"`
	DueDate     string `json:"due_date,omitempty"`
}

type UpdateCorrectiveActionRequest struct {
	Title        *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description  *string `json:"description,omitempty" binding:"omitempty,max=5000"`
	Severity     *string `json:"severity,omitempty" binding:"omitempty,oneof=critical major minor"`
	DueDate      *string `json:"due_date,omitempty"`
	ClearDueDate bool    `json:"clear_due_date,omitempty"`
	Status       *string `json:"status,omitempty" binding:"omitempty,oneof=open in_progress resolved verified canceled"`
}

type VerifyCorrectiveActionRequest struct {
	Notes string `json:"notes,omitempty" binding:"max=2000"`
}

type CreateSignoffRequest struct {
	SignerType  string `json:"signer_type" binding:"required,oneof=supervisor client"`
	SignerName  string `json:"signer_name" binding:"required,max=200"`
	SignerTitle string `json:"signer_title,omitempty" binding:"max=200"`
	Comments    string `json:"comments,omitempty" binding:"max=2000"`
}

type CreateReinspectionRequest struct {
	ScheduledDate string `json:"scheduled_date" binding:"required"`
}

type ListInspectionsRequest struct {
	usecases.ListInspectionsQuery
}

func parseListInspectionsRequest(c *gin.Context) (*ListInspectionsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListInspectionsRequest{}
	req.Page = page
	req.PageSize = pageSize
	req.Status = c.Query("status")
	req.SortBy = c.Query("sort_by")
	req.SortOrder = c.Query("sort_order")

	var err error
	if req.FacilityID, err = parseOptionalUintQuery(c, "facility_id"); err != nil {
		return nil, err
	}
	if req.InspectorID, err = parseOptionalUintQuery(c, "inspector_id"); err != nil {
		return nil, err
	}
	if req.TemplateID, err = parseOptionalUintQuery(c, "template_id"); err != nil {
		return nil, err
	}
	if req.ReinspectionOfID, err = parseOptionalUintQuery(c, "reinspection_of_id"); err != nil {
		return nil, err
	}

	if from := c.Query("scheduled_from"); from != "" {
		t, err := parseDate(from)
		if err != nil {
			return nil, err
		}
		req.ScheduledFrom = &t
	}
	if to := c.Query("scheduled_to"); to != "" {
		t, err := parseDate(to)
		if err != nil {
			return nil, err
		}
		req.ScheduledTo = &t
	}

	return req, nil
}

func parseOptionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + name)
	}
	value := uint(parsed)
	return &value, nil
}

// parseDate accepts either a bare date or a full RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.NewValidationError("invalid date format, expected YYYY-MM-DD or RFC 3339")
	}
	return t, nil
}
