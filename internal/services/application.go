package services

import (
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/types"
)

type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

type CreateApplicationInput struct {
	OrganizationID uint           `json:"organization_id"`
	StartupID      uint           `json:"startup_id"`
	ProgramID      uint           `json:"program_id"`
	Answers        datatypes.JSON `json:"answers"`
}

type UpdateApplicationInput struct {
	Answers datatypes.JSON `json:"answers"`
}

type ApplicationFilter struct {
	OrganizationID uint
	StartupID      uint
	ProgramID      uint
	Status         string
	pagination.Params
}

func (s *ApplicationService) List(filter ApplicationFilter) ([]models.StartupApplication, int64, error) {
	query := s.db.Model(&models.StartupApplication{})

	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	if filter.StartupID != 0 {
		query = query.Where("startup_id = ?", filter.StartupID)
	}

	if filter.ProgramID != 0 {
		query = query.Where("program_id = ?", filter.ProgramID)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []models.StartupApplication

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&applications).Error; err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

func (s *ApplicationService) Get(id uint) (*models.StartupApplication, error) {
	var application models.StartupApplication

	err := s.db.Preload("Startup").Preload("Program").First(&application, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Application not found")
		}
		return nil, err
	}

	return &application, nil
}

func (s *ApplicationService) Create(input CreateApplicationInput) (*models.StartupApplication, error) {
	var missing []string

	if input.OrganizationID == 0 {
		missing = append(missing, "organization_id")
	}

	if input.StartupID == 0 {
		missing = append(missing, "startup_id")
	}

	if input.ProgramID == 0 {
		missing = append(missing, "program_id")
	}

	if err := requiredError(missing); err != nil {
		return nil, err
	}

	application := models.StartupApplication{
		OrganizationID: input.OrganizationID,
		StartupID:      input.StartupID,
		ProgramID:      input.ProgramID,
		Status:         "SUBMITTED",
		Answers:        input.Answers,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, check := range []struct {
			model  interface{}
			id     uint
			field  string
			entity string
		}{
			{&models.Organization{}, input.OrganizationID, "organization_id", "organization"},
			{&models.Startup{}, input.StartupID, "startup_id", "startup"},
			{&models.Program{}, input.ProgramID, "program_id", "program"},
		} {
			ok, err := exists(tx, check.model, check.id)
			if err != nil {
				return err
			}
			if !ok {
				return fkNotFound(check.field, check.entity)
			}
		}

		return tx.Create(&application).Error
	})

	if err != nil {
		return nil, err
	}

	return &application, nil
}

func (s *ApplicationService) Update(id uint, input UpdateApplicationInput) (*models.StartupApplication, error) {
	var application models.StartupApplication

	if err := s.db.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Application not found")
		}
		return nil, err
	}

	if len(input.Answers) == 0 {
		return &application, nil
	}

	if err := s.db.Model(&application).Update("answers", input.Answers).Error; err != nil {
		return nil, err
	}

	return &application, nil
}

// UpdateStatus applies a reviewed-state transition. Terminal states cannot be
// reopened.
func (s *ApplicationService) UpdateStatus(id uint, status string) (*models.StartupApplication, error) {
	if !types.Contains(types.ApplicationStatuses, status) {
		return nil, apperr.Validation("Invalid application status", map[string]string{
			"status": "must be one of " + strings.Join(types.ApplicationStatuses, ", "),
		})
	}

	var application models.StartupApplication

	if err := s.db.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Application not found")
		}
		return nil, err
	}

	if application.Status == "ACCEPTED" || application.Status == "REJECTED" {
		return nil, apperr.Conflict("Application has already been " + strings.ToLower(application.Status))
	}

	if err := s.db.Model(&application).Update("status", status).Error; err != nil {
		return nil, err
	}

	return &application, nil
}

func (s *ApplicationService) Delete(id uint) error {
	var application models.StartupApplication

	if err := s.db.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Application not found")
		}
		return err
	}

	return s.db.Delete(&application).Error
}
