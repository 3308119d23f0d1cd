package models

import (
	"time"

	"gorm.io/datatypes"
)

type Event struct {
	BaseModel

	OrganizationID uint           `gorm:"not null;index" json:"organization_id"`
	ProgramID      *uint          `gorm:"index" json:"program_id"`
	Name           string         `gorm:"not null" json:"name"`
	Description    string         `json:"description"`
	Location       string         `json:"location"`
	Agenda         datatypes.JSON `gorm:"type:jsonb" json:"agenda"`
	StartsAt       time.Time      `gorm:"not null" json:"starts_at"`
	EndsAt         *time.Time     `json:"ends_at"`

	// Relationships
	Attendees []EventAttendee `gorm:"foreignKey:EventID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"attendees,omitempty"`
}

type EventAttendee struct {
	BaseModel

	EventID uint   `gorm:"not null;uniqueIndex:idx_event_user" json:"event_id"`
	UserID  uint   `gorm:"not null;uniqueIndex:idx_event_user" json:"user_id"`
	Role    string `gorm:"not null;default:attendee" json:"role"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"user,omitempty"`
}
