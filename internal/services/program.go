package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/pagination"
)

type ProgramService struct {
	db *gorm.DB
}

func NewProgramService(db *gorm.DB) *ProgramService {
	return &ProgramService{db: db}
}

type CreateProgramInput struct {
	OrganizationID uint       `json:"organization_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Capacity       int        `json:"capacity"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
}

type UpdateProgramInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Capacity    int        `json:"capacity"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type ProgramFilter struct {
	OrganizationID uint
	Search         string
	pagination.Params
}

func (s *ProgramService) List(filter ProgramFilter) ([]models.Program, int64, error) {
	query := s.db.Model(&models.Program{})

	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var programs []models.Program

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&programs).Error; err != nil {
		return nil, 0, err
	}

	return programs, total, nil
}

func (s *ProgramService) Get(id uint) (*models.Program, error) {
	var program models.Program

	if err := s.db.Preload("Applications").Preload("Events").First(&program, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Program not found")
		}
		return nil, err
	}

	return &program, nil
}

func (s *ProgramService) Create(input CreateProgramInput) (*models.Program, error) {
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

	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, apperr.Validation("Program dates are inconsistent", map[string]string{
			"end_date": "must not be before start_date",
		})
	}

	program := models.Program{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		Description:    input.Description,
		Capacity:       input.Capacity,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Organization{}, input.OrganizationID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("organization_id", "organization")
		}

		return tx.Create(&program).Error
	})

	if err != nil {
		return nil, err
	}

	return &program, nil
}

func (s *ProgramService) Update(id uint, input UpdateProgramInput) (*models.Program, error) {
	var program models.Program

	if err := s.db.First(&program, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Program not found")
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

	if input.Capacity != 0 {
		updates["capacity"] = input.Capacity
	}

	if input.StartDate != nil {
		updates["start_date"] = input.StartDate
	}

	if input.EndDate != nil {
		updates["end_date"] = input.EndDate
	}

	if len(updates) == 0 {
		return &program, nil
	}

	if err := s.db.Model(&program).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &program, nil
}

func (s *ProgramService) Delete(id uint) error {
	var program models.Program

	if err := s.db.First(&program, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Program not found")
		}
		return err
	}

	return s.db.Delete(&program).Error
}
