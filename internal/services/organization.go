package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/pagination"
)

type OrganizationService struct {
	db *gorm.DB
}

func NewOrganizationService(db *gorm.DB) *OrganizationService {
	return &OrganizationService{db: db}
}

type CreateOrganizationInput struct {
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Description      string `json:"description"`
	Website          string `json:"website"`
	StripeCustomerID string `json:"stripe_customer_id"`
}

type UpdateOrganizationInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

type OrganizationFilter struct {
	Search string
	pagination.Params
}

func (s *OrganizationService) List(filter OrganizationFilter) ([]models.Organization, int64, error) {
	query := s.db.Model(&models.Organization{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(slug) LIKE ?", pattern, pattern)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var organizations []models.Organization

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&organizations).Error; err != nil {
		return nil, 0, err
	}

	return organizations, total, nil
}

func (s *OrganizationService) Get(id uint) (*models.Organization, error) {
	var organization models.Organization

	if err := s.db.Preload("Users").Preload("Startups").First(&organization, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Organization not found")
		}
		return nil, err
	}

	return &organization, nil
}

func (s *OrganizationService) Create(input CreateOrganizationInput) (*models.Organization, error) {
	var missing []string

	if input.Name == "" {
		missing = append(missing, "name")
	}

	if err := requiredError(missing); err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Name)
	}

	organization := models.Organization{
		Name:             input.Name,
		Slug:             slug,
		Description:      input.Description,
		Website:          input.Website,
		StripeCustomerID: input.StripeCustomerID,
	}

	// Uniqueness pre-check and insert share one transaction; the unique index
	// still backstops the race and surfaces as Conflict via apperr.From.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64

		if err := tx.Model(&models.Organization{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return apperr.Conflict("An organization with this slug already exists")
		}

		return tx.Create(&organization).Error
	})

	if err != nil {
		return nil, err
	}

	return &organization, nil
}

func (s *OrganizationService) Update(id uint, input UpdateOrganizationInput) (*models.Organization, error) {
	var organization models.Organization

	if err := s.db.First(&organization, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Organization not found")
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

	if len(updates) == 0 {
		return &organization, nil
	}

	if err := s.db.Model(&organization).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &organization, nil
}

// Delete hard-deletes an organization, but refuses while users still belong
// to it.
func (s *OrganizationService) Delete(id uint) error {
	var organization models.Organization

	if err := s.db.First(&organization, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Organization not found")
		}
		return err
	}

	var userCount int64

	if err := s.db.Model(&models.User{}).Where("organization_id = ?", id).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount > 0 {
		return apperr.Validation("Organization still has associated users", map[string]string{
			"users": "remove or reassign associated users before deleting",
		})
	}

	return s.db.Delete(&organization).Error
}

// Slugify lowercases a name and collapses non-alphanumeric runs into single
// hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
