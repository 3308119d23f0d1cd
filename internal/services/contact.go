package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/pagination"
)

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

type CreateContactInput struct {
	OrganizationID uint   `json:"organization_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	Notes          string `json:"notes"`
}

type UpdateContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Notes   string `json:"notes"`
}

type ContactFilter struct {
	OrganizationID uint
	Search         string
	pagination.Params
}

func (s *ContactService) List(filter ContactFilter) ([]models.Contact, int64, error) {
	query := s.db.Model(&models.Contact{})

	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ?", pattern, pattern, pattern)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []models.Contact

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&contacts).Error; err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func (s *ContactService) Get(id uint) (*models.Contact, error) {
	var contact models.Contact

	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Contact not found")
		}
		return nil, err
	}

	return &contact, nil
}

func (s *ContactService) Create(input CreateContactInput) (*models.Contact, error) {
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

	contact := models.Contact{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:          input.Phone,
		Company:        input.Company,
		Notes:          input.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Organization{}, input.OrganizationID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("organization_id", "organization")
		}

		return tx.Create(&contact).Error
	})

	if err != nil {
		return nil, err
	}

	return &contact, nil
}

func (s *ContactService) Update(id uint, input UpdateContactInput) (*models.Contact, error) {
	var contact models.Contact

	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Contact not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.Name != "" {
		updates["name"] = input.Name
	}

	if input.Email != "" {
		updates["email"] = strings.ToLower(strings.TrimSpace(input.Email))
	}

	if input.Phone != "" {
		updates["phone"] = input.Phone
	}

	if input.Company != "" {
		updates["company"] = input.Company
	}

	if input.Notes != "" {
		updates["notes"] = input.Notes
	}

	if len(updates) == 0 {
		return &contact, nil
	}

	if err := s.db.Model(&contact).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &contact, nil
}

func (s *ContactService) Delete(id uint) error {
	var contact models.Contact

	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Contact not found")
		}
		return err
	}

	return s.db.Delete(&contact).Error
}
