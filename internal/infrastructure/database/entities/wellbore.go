package entities

import (
	"time"

	"gorm.io/datatypes"
)

// WellBore is the persisted row of a wellbore. The full document lives in
// Data; the other columns are copies used for lookups.
type WellBore struct {
	ID               string         `gorm:"type:varchar(36);primaryKey"`
	MetaInfo         datatypes.JSON `gorm:"not null"`
	WellID           *string        `gorm:"type:varchar(36);index"`
	RigID            *string        `gorm:"type:varchar(36)"`
	IsSidetrack      bool           `gorm:"not null;default:false"`
	ParentWellBoreID *string        `gorm:"type:varchar(36);index"`
	Data             datatypes.JSON `gorm:"not null"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (WellBore) TableName() string {
	return "well_bores"
}
