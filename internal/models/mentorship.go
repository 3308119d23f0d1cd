package models

import "time"

type Mentorship struct {
	BaseModel

	OrganizationID uint       `gorm:"not null;index" json:"organization_id"`
	MentorID       uint       `gorm:"not null;index" json:"mentor_id"`
	StartupID      uint       `gorm:"not null;index" json:"startup_id"`
	Status         string     `gorm:"not null;default:ACTIVE" json:"status"`
	Focus          string     `json:"focus"`
	StartedAt      time.Time  `json:"started_at"`
	EndedAt        *time.Time `json:"ended_at"`

	// Relationships
	Mentor  User    `gorm:"foreignKey:MentorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"mentor,omitempty"`
	Startup Startup `gorm:"foreignKey:StartupID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"startup,omitempty"`
}
