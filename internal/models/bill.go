package models

import "time"

type Bill struct {
	BaseModel

	OrganizationID uint       `gorm:"not null;index" json:"organization_id"`
	ClaimID        uint       `gorm:"not null;index" json:"claim_id"`
	Amount         float64    `gorm:"not null" json:"amount"`
	Currency       string     `gorm:"not null;default:USD" json:"currency"`
	DueDate        *time.Time `json:"due_date"`
	Paid           bool       `gorm:"not null;default:false" json:"paid"`
}
