package models

import "gorm.io/datatypes"

type InspectionModel struct {
	ID               uint   `gorm:"primaryKey"`
	Number           string `gorm:"uniqueIndex;size:50;not null"`
	Status           string `gorm:"size:20;not null;index"`
	FacilityID       uint   `gorm:"not null;index"`
	InspectorID      uint   `gorm:"not null;index"`
	ScheduledDate    int64  `gorm:"not null;index"`
	JobID            *uint  `gorm:"index"`
	AppointmentID    *uint
	TemplateID       *uint  `gorm:"index"`
	ReinspectionOfID *uint  `gorm:"index"`
	Notes            string `gorm:"type:text"`
	Summary          string `gorm:"type:text"`
	OverallScore     *int
	OverallRating    *string `gorm:"size:20"`
	Version          int     `gorm:"not null;default:1"`
	CreatedAt        int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64   `gorm:"autoUpdateTime:milli;not null"`
	StartedAt        *int64
	CompletedAt      *int64
	CanceledAt       *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (InspectionModel) TableName() string {
	return "inspections"
}

type InspectionItemModel struct {
	ID           uint   `gorm:"primaryKey"`
	InspectionID uint   `gorm:"not null;index"`
	Category     string `gorm:"size:100;not null;index"`
	Text         string `gorm:"type:text;not null"`
	Weight       int    `gorm:"not null;default:1"`
	Score        string `gorm:"size:10"`
	Rating       *int
	Notes        string `gorm:"type:text"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (InspectionItemModel) TableName() string {
	return "inspection_items"
}

type CorrectiveActionModel struct {
	ID           uint   `gorm:"primaryKey"`
	InspectionID uint   `gorm:"not null;index"`
	ItemID       *uint  `gorm:"index"`
	Title        string `gorm:"size:200;not null"`
	Description  string `gorm:"type:text"`
	Severity     string `gorm:"size:20;not null;index"`
	Status       string `gorm:"size:20;not null;index"`
	DueDate      *int64 `gorm:"index"`
	CreatedBy    uint   `gorm:"not null;index"`
	VerifiedBy   *uint
	VerifiedAt   *int64
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (CorrectiveActionModel) TableName() string {
	return "inspection_corrective_actions"
}

type SignoffModel struct {
	ID           uint   `gorm:"primaryKey"`
	InspectionID uint   `gorm:"not null;index"`
	SignerType   string `gorm:"size:20;not null"`
	SignerName   string `gorm:"size:200;not null"`
	SignerTitle  string `gorm:"size:200"`
	Comments     string `gorm:"type:text"`
	SignedAt     int64  `gorm:"not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (SignoffModel) TableName() string {
	return "inspection_signoffs"
}

type ActivityModel struct {
	ID           uint              `gorm:"primaryKey"`
	InspectionID uint              `gorm:"not null;index"`
	Action       string            `gorm:"size:50;not null;index"`
	ActorID      *uint             `gorm:"index"`
	Metadata     datatypes.JSONMap `gorm:"type:json"`
	CreatedAt    int64             `gorm:"autoCreateTime:milli;not null;index"`
}

func (ActivityModel) TableName() string {
	return "inspection_activities"
}
