package models

import (
	"time"

	"gorm.io/datatypes"
)

type Claim struct {
	BaseModel

	OrganizationID       uint           `gorm:"not null;index" json:"organization_id"`
	ClaimNumber          string         `gorm:"uniqueIndex;not null" json:"claim_number"`
	VehicleID            uint           `gorm:"not null;index" json:"vehicle_id"`
	InsuranceCompanyID   uint           `gorm:"not null;index" json:"insurance_company_id"`
	RepairOrganizationID *uint          `gorm:"index" json:"repair_organization_id"`
	HubID                *uint          `gorm:"index" json:"hub_id"`
	Status               string         `gorm:"not null" json:"status"` // "FILED", "UNDER_REVIEW", "APPROVED", "REJECTED", "SETTLED"
	Description          string         `json:"description"`
	Details              datatypes.JSON `gorm:"type:jsonb" json:"details"`
	FiledAt              time.Time      `gorm:"not null" json:"filed_at"`

	// Relationships
	Vehicle            Vehicle             `gorm:"foreignKey:VehicleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"vehicle,omitempty"`
	InsuranceCompany   InsuranceCompany    `gorm:"foreignKey:InsuranceCompanyID" json:"insurance_company,omitempty"`
	RepairOrganization *RepairOrganization `gorm:"foreignKey:RepairOrganizationID" json:"repair_organization,omitempty"`
	Bills              []Bill              `gorm:"foreignKey:ClaimID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"bills,omitempty"`
}
