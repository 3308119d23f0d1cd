package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/pagination"
)

type DriverService struct {
	db *gorm.DB
}

func NewDriverService(db *gorm.DB) *DriverService {
	return &DriverService{db: db}
}

type CreateDriverInput struct {
	OrganizationID uint   `json:"organization_id"`
	Name           string `json:"name"`
	LicenseNumber  string `json:"license_number"`
	Phone          string `json:"phone"`
}

type UpdateDriverInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type DriverFilter struct {
	OrganizationID uint
	Search         string
	pagination.Params
}

func (s *DriverService) List(filter DriverFilter) ([]models.Driver, int64, error) {
	query := s.db.Model(&models.Driver{})

	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(license_number) LIKE ?", pattern, pattern)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var drivers []models.Driver

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&drivers).Error; err != nil {
		return nil, 0, err
	}

	return drivers, total, nil
}

func (s *DriverService) Get(id uint) (*models.Driver, error) {
	var driver models.Driver

	if err := s.db.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Driver not found")
		}
		return nil, err
	}

	return &driver, nil
}

func (s *DriverService) Create(input CreateDriverInput) (*models.Driver, error) {
	var missing []string

	if input.OrganizationID == 0 {
		missing = append(missing, "organization_id")
	}

	if input.Name == "" {
		missing = append(missing, "name")
	}

	if input.LicenseNumber == "" {
		missing = append(missing, "license_number")
	}

	if err := requiredError(missing); err != nil {
		return nil, err
	}

	driver := models.Driver{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		LicenseNumber:  strings.ToUpper(strings.TrimSpace(input.LicenseNumber)),
		Phone:          input.Phone,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Organization{}, input.OrganizationID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("organization_id", "organization")
		}

		var count int64

		if err := tx.Model(&models.Driver{}).Where("license_number = ?", driver.LicenseNumber).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return apperr.Conflict("A driver with this license number already exists")
		}

		return tx.Create(&driver).Error
	})

	if err != nil {
		return nil, err
	}

	return &driver, nil
}

func (s *DriverService) Update(id uint, input UpdateDriverInput) (*models.Driver, error) {
	var driver models.Driver

	if err := s.db.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Driver not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.Name != "" {
		updates["name"] = input.Name
	}

	if input.Phone != "" {
		updates["phone"] = input.Phone
	}

	if len(updates) == 0 {
		return &driver, nil
	}

	if err := s.db.Model(&driver).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &driver, nil
}

func (s *DriverService) Delete(id uint) error {
	var driver models.Driver

	if err := s.db.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Driver not found")
		}
		return err
	}

	return s.db.Delete(&driver).Error
}
