package models

type Vehicle struct {
	BaseModel

	OrganizationID     uint   `gorm:"not null;index" json:"organization_id"`
	DriverID           *uint  `gorm:"index" json:"driver_id"`
	RegistrationNumber string `gorm:"uniqueIndex;not null" json:"registration_number"`
	Make               string `json:"make"`
	VehicleModel       string `gorm:"column:model" json:"model"`
	Year               int    `json:"year"`

	// Relationships
	Driver *Driver `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
}

type Driver struct {
	BaseModel

	OrganizationID uint   `gorm:"not null;index" json:"organization_id"`
	Name           string `gorm:"not null" json:"name"`
	LicenseNumber  string `gorm:"uniqueIndex;not null" json:"license_number"`
	Phone          string `json:"phone"`
}
