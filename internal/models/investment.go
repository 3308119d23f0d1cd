package models

import "time"

type Investment struct {
	BaseModel

	OrganizationID uint      `gorm:"not null;index" json:"organization_id"`
	StartupID      uint      `gorm:"not null;index" json:"startup_id"`
	InvestorName   string    `gorm:"not null" json:"investor_name"`
	Round          string    `gorm:"not null" json:"round"` // "PRE_SEED", "SEED", "SERIES_A", ...
	Amount         float64   `gorm:"not null" json:"amount"`
	Currency       string    `gorm:"not null;default:USD" json:"currency"`
	InvestedAt     time.Time `json:"invested_at"`

	// Relationships
	Startup Startup `gorm:"foreignKey:StartupID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"startup,omitempty"`
}
