package inspection

import (
	"context"
	"time"

	vo "luster/internal/domain/inspection/valueobjects"
)

// InspectionRepository persists inspections together with their owned items.
// Update must enforce the optimistic version check and surface a conflict when
// a concurrent writer got there first.
type InspectionRepository interface {
	Save(ctx context.Context, insp *Inspection) error
	Update(ctx context.Context, insp *Inspection) error
	Delete(ctx context.Context, inspectionID uint) error
	GetByID(ctx context.Context, inspectionID uint) (*Inspection, error)
	GetByNumber(ctx context.Context, number string) (*Inspection, error)
	List(ctx context.Context, filter Filter) ([]*Inspection, int64, error)
}

// Filter narrows inspection listings.
type Filter struct {
	Status           *vo.InspectionStatus
	FacilityID       *uint
	InspectorID      *uint
	TemplateID       *uint
	ReinspectionOfID *uint
	ScheduledFrom    *time.Time
	ScheduledTo      *time.Time
	Page             int
	PageSize         int
	SortBy           string
	SortOrder        string
}

type CorrectiveActionRepository interface {
	Save(ctx context.Context, action *CorrectiveAction) error
	Update(ctx context.Context, action *CorrectiveAction) error
	GetByID(ctx context.Context, actionID uint) (*CorrectiveAction, error)
	GetByInspectionID(ctx context.Context, inspectionID uint) ([]*CorrectiveAction, error)
	DeleteByInspectionID(ctx context.Context, inspectionID uint) error
}

type SignoffRepository interface {
	Save(ctx context.Context, signoff *Signoff) error
	GetByInspectionID(ctx context.Context, inspectionID uint) ([]*Signoff, error)
	DeleteByInspectionID(ctx context.Context, inspectionID uint) error
}

// ActivityRepository is append-only: entries are never mutated or deleted
// individually, only cascaded away with their inspection.
type ActivityRepository interface {
	Append(ctx context.Context, activity *Activity) error
	GetByInspectionID(ctx context.Context, inspectionID uint) ([]*Activity, error)
	DeleteByInspectionID(ctx context.Context, inspectionID uint) error
}

// NumberGenerator produces the human-readable inspection sequence number.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}
