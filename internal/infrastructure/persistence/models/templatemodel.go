package models

type InspectionTemplateModel struct {
	ID          uint   `gorm:"primaryKey"`
	SID         string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	Name        string `gorm:"size:200;not null;index"`
	Description string `gorm:"type:text"`
	ContractID  *uint  `gorm:"index"`
	Archived    bool   `gorm:"not null;default:false;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (InspectionTemplateModel) TableName() string {
	return "inspection_templates"
}

type InspectionTemplateItemModel struct {
	ID         uint   `gorm:"primaryKey"`
	TemplateID uint   `gorm:"not null;index"`
	Position   int    `gorm:"not null;default:0"`
	Category   string `gorm:"size:100;not null"`
	Text       string `gorm:"type:text;not null"`
	Weight     int    `gorm:"not null;default:1"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (InspectionTemplateItemModel) TableName() string {
	return "inspection_template_items"
}
