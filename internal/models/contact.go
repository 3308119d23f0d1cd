package models

type Contact struct {
	BaseModel

	OrganizationID uint   `gorm:"not null;index" json:"organization_id"`
	Name           string `gorm:"not null" json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	Notes          string `json:"notes"`
}
