package models

import "time"

type Program struct {
	BaseModel

	OrganizationID uint       `gorm:"not null;index" json:"organization_id"`
	Name           string     `gorm:"not null" json:"name"`
	Description    string     `json:"description"`
	Capacity       int        `json:"capacity"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`

	// Relationships
	Applications []StartupApplication `gorm:"foreignKey:ProgramID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"applications,omitempty"`
	Events       []Event              `gorm:"foreignKey:ProgramID" json:"events,omitempty"`
}
