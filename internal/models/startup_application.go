package models

import "gorm.io/datatypes"

type StartupApplication struct {
	BaseModel

	OrganizationID uint           `gorm:"not null;index" json:"organization_id"`
	StartupID      uint           `gorm:"not null;index" json:"startup_id"`
	ProgramID      uint           `gorm:"not null;index" json:"program_id"`
	Status         string         `gorm:"not null" json:"status"` // "SUBMITTED", "UNDER_REVIEW", "ACCEPTED", "REJECTED"
	Answers        datatypes.JSON `gorm:"type:jsonb" json:"answers"`

	// Relationships
	Startup Startup `gorm:"foreignKey:StartupID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"startup,omitempty"`
	Program Program `gorm:"foreignKey:ProgramID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"program,omitempty"`
}
