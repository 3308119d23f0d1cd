package models

type User struct {
	BaseModel

	Name           string `gorm:"not null" json:"name"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string `gorm:"not null" json:"-"`
	Role           string `gorm:"not null;default:member" json:"role"`
	OrganizationID *uint  `gorm:"index" json:"organization_id"`

	// Relationships
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Mentorships  []Mentorship  `gorm:"foreignKey:MentorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"mentorships,omitempty"`
}
