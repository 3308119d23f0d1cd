package models

import "gorm.io/datatypes"

type Thesis struct {
	BaseModel

	OrganizationID uint           `gorm:"not null;index" json:"organization_id"`
	Title          string         `gorm:"not null" json:"title"`
	Summary        string         `json:"summary"`
	Sectors        datatypes.JSON `gorm:"type:jsonb" json:"sectors"`
}

func (Thesis) TableName() string {
	return "theses"
}
