package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/types"
)

type StartupService struct {
	db *gorm.DB
}

func NewStartupService(db *gorm.DB) *StartupService {
	return &StartupService{db: db}
}

type CreateStartupInput struct {
	OrganizationID uint   `json:"organization_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Stage          string `json:"stage"`
	Website        string `json:"website"`
	FoundedYear    int    `json:"founded_year"`
}

type UpdateStartupInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	FoundedYear int    `json:"founded_year"`
}

type StartupFilter struct {
	OrganizationID uint
	Stage          string
	Search         string
	pagination.Params
}

func (s *StartupService) List(filter StartupFilter) ([]models.Startup, int64, error) {
	query := s.db.Model(&models.Startup{})

	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	if filter.Stage != "" {
		query = query.Where("stage = ?", filter.Stage)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var startups []models.Startup

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&startups).Error; err != nil {
		return nil, 0, err
	}

	return startups, total, nil
}

func (s *StartupService) Get(id uint) (*models.Startup, error) {
	var startup models.Startup

	err := s.db.Preload("Applications").Preload("Investments").Preload("Mentorships").First(&startup, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Startup not found")
		}
		return nil, err
	}

	return &startup, nil
}

func (s *StartupService) Create(input CreateStartupInput) (*models.Startup, error) {
	var missing []string

	if input.OrganizationID == 0 {
		missing = append(missing, "organization_id")
	}

	if input.Name == "" {
		missing = append(missing, "name")
	}

	if err := requiredError(missing); err != nil {
		return nil, err
	}

	stage := input.Stage
	if stage == "" {
		stage = "IDEA"
	}

	if !types.Contains(types.StartupStages, stage) {
		return nil, apperr.Validation("Invalid startup stage", map[string]string{
			"stage": "must be one of " + strings.Join(types.StartupStages, ", "),
		})
	}

	startup := models.Startup{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		Description:    input.Description,
		Stage:          stage,
		Website:        input.Website,
		FoundedYear:    input.FoundedYear,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Organization{}, input.OrganizationID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("organization_id", "organization")
		}

		return tx.Create(&startup).Error
	})

	if err != nil {
		return nil, err
	}

	return &startup, nil
}

func (s *StartupService) Update(id uint, input UpdateStartupInput) (*models.Startup, error) {
	var startup models.Startup

	if err := s.db.First(&startup, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Startup not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.Name != "" {
		updates["name"] = input.Name
	}

	if input.Description != "" {
		updates["description"] = input.Description
	}

	if input.Website != "" {
		updates["website"] = input.Website
	}

	if input.FoundedYear != 0 {
		updates["founded_year"] = input.FoundedYear
	}

	if len(updates) == 0 {
		return &startup, nil
	}

	if err := s.db.Model(&startup).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &startup, nil
}

// ChangeStage moves a startup through the pipeline, rejecting stages outside
// the allowed set.
func (s *StartupService) ChangeStage(id uint, stage string) (*models.Startup, error) {
	if !types.Contains(types.StartupStages, stage) {
		return nil, apperr.Validation("Invalid startup stage", map[string]string{
			"stage": "must be one of " + strings.Join(types.StartupStages, ", "),
		})
	}

	var startup models.Startup

	if err := s.db.First(&startup, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Startup not found")
		}
		return nil, err
	}

	if err := s.db.Model(&startup).Update("stage", stage).Error; err != nil {
		return nil, err
	}

	return &startup, nil
}

func (s *StartupService) Delete(id uint) error {
	var startup models.Startup

	if err := s.db.First(&startup, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Startup not found")
		}
		return err
	}

	return s.db.Delete(&startup).Error
}
