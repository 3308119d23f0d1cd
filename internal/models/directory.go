package models

// Hub, InsuranceCompany and RepairOrganization follow the soft-delete
// convention: deletion sets Status to INACTIVE instead of removing the row.

type Hub struct {
	BaseModel

	OrganizationID uint   `gorm:"not null;index" json:"organization_id"`
	Name           string `gorm:"not null" json:"name"`
	City           string `json:"city"`
	Status         string `gorm:"not null;default:ACTIVE" json:"status"`
}

type InsuranceCompany struct {
	BaseModel

	OrganizationID uint   `gorm:"not null;index" json:"organization_id"`
	Name           string `gorm:"not null" json:"name"`
	Code           string `gorm:"uniqueIndex;not null" json:"code"`
	Status         string `gorm:"not null;default:ACTIVE" json:"status"`
}

type RepairOrganization struct {
	BaseModel

	OrganizationID uint   `gorm:"not null;index" json:"organization_id"`
	Name           string `gorm:"not null" json:"name"`
	City           string `json:"city"`
	Status         string `gorm:"not null;default:ACTIVE" json:"status"`
}
