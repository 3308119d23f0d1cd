package models

type Organization struct {
	BaseModel

	Name             string `gorm:"not null" json:"name"`
	Slug             string `gorm:"uniqueIndex;not null" json:"slug"`
	Description      string `json:"description"`
	Website          string `json:"website"`
	StripeCustomerID string `json:"stripe_customer_id"`

	// Relationships
	Users    []User    `gorm:"foreignKey:OrganizationID" json:"users,omitempty"`
	Startups []Startup `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"startups,omitempty"`
}
