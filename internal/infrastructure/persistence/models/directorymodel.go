package models

// FacilityModel and UserModel back the read-only directory lookups used to
// decorate inspection views. The records themselves are owned by other parts
// of the platform; this module only reads them.
type FacilityModel struct {
	ID        uint   `gorm:"primaryKey"`
	SID       string `gorm:"column:sid;uniqueIndex;size:32"`
	Name      string `gorm:"size:200;not null"`
	Address   string `gorm:"size:500"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (FacilityModel) TableName() string {
	return "facilities"
}

type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"uniqueIndex;size:255"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
