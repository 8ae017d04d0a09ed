package models

// AreaGuidanceModel holds the per-category checklist hints shown alongside
// inspection items. Rows are maintained by operations staff, not by this
// module's write paths.
type AreaGuidanceModel struct {
	ID        uint   `gorm:"primaryKey"`
	Category  string `gorm:"size:100;not null;index"`
	Hint      string `gorm:"type:text;not null"`
	Position  int    `gorm:"not null;default:0"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AreaGuidanceModel) TableName() string {
	return "area_guidance"
}
