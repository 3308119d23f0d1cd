package services

import (
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/pagination"
)

type ThesisService struct {
	db *gorm.DB
}

func NewThesisService(db *gorm.DB) *ThesisService {
	return &ThesisService{db: db}
}

type CreateThesisInput struct {
	OrganizationID uint           `json:"organization_id"`
	Title          string         `json:"title"`
	Summary        string         `json:"summary"`
	Sectors        datatypes.JSON `json:"sectors"`
}

type UpdateThesisInput struct {
	Title   string         `json:"title"`
	Summary string         `json:"summary"`
	Sectors datatypes.JSON `json:"sectors"`
}

type ThesisFilter struct {
	OrganizationID uint
	Search         string
	pagination.Params
}

func (s *ThesisService) List(filter ThesisFilter) ([]models.Thesis, int64, error) {
	query := s.db.Model(&models.Thesis{})

	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(summary) LIKE ?", pattern, pattern)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var theses []models.Thesis

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&theses).Error; err != nil {
		return nil, 0, err
	}

	return theses, total, nil
}

func (s *ThesisService) Get(id uint) (*models.Thesis, error) {
	var thesis models.Thesis

	if err := s.db.First(&thesis, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Thesis not found")
		}
		return nil, err
	}

	return &thesis, nil
}

func (s *ThesisService) Create(input CreateThesisInput) (*models.Thesis, error) {
	var missing []string

	if input.OrganizationID == 0 {
		missing = append(missing, "organization_id")
	}

	if input.Title == "" {
		missing = append(missing, "title")
	}

	if err := requiredError(missing); err != nil {
		return nil, err
	}

	thesis := models.Thesis{
		OrganizationID: input.OrganizationID,
		Title:          input.Title,
		Summary:        input.Summary,
		Sectors:        input.Sectors,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Organization{}, input.OrganizationID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("organization_id", "organization")
		}

		return tx.Create(&thesis).Error
	})

	if err != nil {
		return nil, err
	}

	return &thesis, nil
}

func (s *ThesisService) Update(id uint, input UpdateThesisInput) (*models.Thesis, error) {
	var thesis models.Thesis

	if err := s.db.First(&thesis, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Thesis not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.Title != "" {
		updates["title"] = input.Title
	}

	if input.Summary != "" {
		updates["summary"] = input.Summary
	}

	if len(input.Sectors) > 0 {
		updates["sectors"] = input.Sectors
	}

	if len(updates) == 0 {
		return &thesis, nil
	}

	if err := s.db.Model(&thesis).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &thesis, nil
}

func (s *ThesisService) Delete(id uint) error {
	var thesis models.Thesis

	if err := s.db.First(&thesis, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Thesis not found")
		}
		return err
	}

	return s.db.Delete(&thesis).Error
}
