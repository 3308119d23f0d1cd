package models

type Startup struct {
	BaseModel

	OrganizationID uint   `gorm:"not null;index" json:"organization_id"`
	Name           string `gorm:"not null" json:"name"`
	Description    string `json:"description"`
	Stage          string `gorm:"not null" json:"stage"` // "IDEA", "MVP", "SEED", "GROWTH", "SCALE"
	Website        string `json:"website"`
	FoundedYear    int    `json:"founded_year"`

	// Relationships
	Organization Organization         `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Applications []StartupApplication `gorm:"foreignKey:StartupID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"applications,omitempty"`
	Investments  []Investment         `gorm:"foreignKey:StartupID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"investments,omitempty"`
	Mentorships  []Mentorship         `gorm:"foreignKey:StartupID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"mentorships,omitempty"`
}
