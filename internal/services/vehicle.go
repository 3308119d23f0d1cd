package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/pagination"
)

type VehicleService struct {
	db *gorm.DB
}

func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

type CreateVehicleInput struct {
	OrganizationID     uint   `json:"organization_id"`
	DriverID           *uint  `json:"driver_id"`
	RegistrationNumber string `json:"registration_number"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               int    `json:"year"`
}

type UpdateVehicleInput struct {
	DriverID *uint  `json:"driver_id"`
	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
}

type VehicleFilter struct {
	OrganizationID uint
	DriverID       uint
	Search         string
	pagination.Params
}

func (s *VehicleService) List(filter VehicleFilter) ([]models.Vehicle, int64, error) {
	query := s.db.Model(&models.Vehicle{})

	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	if filter.DriverID != 0 {
		query = query.Where("driver_id = ?", filter.DriverID)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(registration_number) LIKE ? OR LOWER(make) LIKE ? OR LOWER(model) LIKE ?", pattern, pattern, pattern)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vehicles []models.Vehicle

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&vehicles).Error; err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

func (s *VehicleService) Get(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle

	if err := s.db.Preload("Driver").First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Vehicle not found")
		}
		return nil, err
	}

	return &vehicle, nil
}

func (s *VehicleService) Create(input CreateVehicleInput) (*models.Vehicle, error) {
	var missing []string

	if input.OrganizationID == 0 {
		missing = append(missing, "organization_id")
	}

	if input.RegistrationNumber == "" {
		missing = append(missing, "registration_number")
	}

	if err := requiredError(missing); err != nil {
		return nil, err
	}

	vehicle := models.Vehicle{
		OrganizationID:     input.OrganizationID,
		DriverID:           input.DriverID,
		RegistrationNumber: strings.ToUpper(strings.TrimSpace(input.RegistrationNumber)),
		Make:               input.Make,
		VehicleModel:       input.Model,
		Year:               input.Year,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Organization{}, input.OrganizationID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("organization_id", "organization")
		}

		if input.DriverID != nil {
			ok, err := exists(tx, &models.Driver{}, *input.DriverID)
			if err != nil {
				return err
			}
			if !ok {
				return fkNotFound("driver_id", "driver")
			}
		}

		var count int64

		if err := tx.Model(&models.Vehicle{}).Where("registration_number = ?", vehicle.RegistrationNumber).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return apperr.Conflict("A vehicle with this registration number already exists")
		}

		return tx.Create(&vehicle).Error
	})

	if err != nil {
		return nil, err
	}

	return &vehicle, nil
}

func (s *VehicleService) Update(id uint, input UpdateVehicleInput) (*models.Vehicle, error) {
	var vehicle models.Vehicle

	if err := s.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Vehicle not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.Make != "" {
		updates["make"] = input.Make
	}

	if input.Model != "" {
		updates["model"] = input.Model
	}

	if input.Year != 0 {
		updates["year"] = input.Year
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if input.DriverID != nil {
			ok, err := exists(tx, &models.Driver{}, *input.DriverID)
			if err != nil {
				return err
			}
			if !ok {
				return fkNotFound("driver_id", "driver")
			}
			updates["driver_id"] = input.DriverID
		}

		if len(updates) == 0 {
			return nil
		}

		return tx.Model(&vehicle).Updates(updates).Error
	})

	if err != nil {
		return nil, err
	}

	return &vehicle, nil
}

func (s *VehicleService) Delete(id uint) error {
	var vehicle models.Vehicle

	if err := s.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Vehicle not found")
		}
		return err
	}

	return s.db.Delete(&vehicle).Error
}
