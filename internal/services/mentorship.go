package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/types"
)

type MentorshipService struct {
	db *gorm.DB
}

func NewMentorshipService(db *gorm.DB) *MentorshipService {
	return &MentorshipService{db: db}
}

type CreateMentorshipInput struct {
	OrganizationID uint   `json:"organization_id"`
	MentorID       uint   `json:"mentor_id"`
	StartupID      uint   `json:"startup_id"`
	Focus          string `json:"focus"`
}

type UpdateMentorshipInput struct {
	Focus string `json:"focus"`
}

type MentorshipFilter struct {
	OrganizationID uint
	MentorID       uint
	StartupID      uint
	Status         string
	pagination.Params
}

func (s *MentorshipService) List(filter MentorshipFilter) ([]models.Mentorship, int64, error) {
	query := s.db.Model(&models.Mentorship{})

	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	if filter.MentorID != 0 {
		query = query.Where("mentor_id = ?", filter.MentorID)
	}

	if filter.StartupID != 0 {
		query = query.Where("startup_id = ?", filter.StartupID)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var mentorships []models.Mentorship

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&mentorships).Error; err != nil {
		return nil, 0, err
	}

	return mentorships, total, nil
}

func (s *MentorshipService) Get(id uint) (*models.Mentorship, error) {
	var mentorship models.Mentorship

	if err := s.db.Preload("Mentor").Preload("Startup").First(&mentorship, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Mentorship not found")
		}
		return nil, err
	}

	return &mentorship, nil
}

func (s *MentorshipService) Create(input CreateMentorshipInput) (*models.Mentorship, error) {
	var missing []string

	if input.OrganizationID == 0 {
		missing = append(missing, "organization_id")
	}

	if input.MentorID == 0 {
		missing = append(missing, "mentor_id")
	}

	if input.StartupID == 0 {
		missing = append(missing, "startup_id")
	}

	if err := requiredError(missing); err != nil {
		return nil, err
	}

	mentorship := models.Mentorship{
		OrganizationID: input.OrganizationID,
		MentorID:       input.MentorID,
		StartupID:      input.StartupID,
		Status:         types.StatusActive,
		Focus:          input.Focus,
		StartedAt:      time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, check := range []struct {
			model  interface{}
			id     uint
			field  string
			entity string
		}{
			{&models.Organization{}, input.OrganizationID, "organization_id", "organization"},
			{&models.User{}, input.MentorID, "mentor_id", "user"},
			{&models.Startup{}, input.StartupID, "startup_id", "startup"},
		} {
			ok, err := exists(tx, check.model, check.id)
			if err != nil {
				return err
			}
			if !ok {
				return fkNotFound(check.field, check.entity)
			}
		}

		// One active pairing per mentor and startup.
		var count int64

		err := tx.Model(&models.Mentorship{}).
			Where("mentor_id = ? AND startup_id = ? AND status = ?", input.MentorID, input.StartupID, types.StatusActive).
			Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return apperr.Conflict("An active mentorship between this mentor and startup already exists")
		}

		return tx.Create(&mentorship).Error
	})

	if err != nil {
		return nil, err
	}

	return &mentorship, nil
}

func (s *MentorshipService) Update(id uint, input UpdateMentorshipInput) (*models.Mentorship, error) {
	var mentorship models.Mentorship

	if err := s.db.First(&mentorship, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Mentorship not found")
		}
		return nil, err
	}

	if input.Focus == "" {
		return &mentorship, nil
	}

	if err := s.db.Model(&mentorship).Update("focus", input.Focus).Error; err != nil {
		return nil, err
	}

	return &mentorship, nil
}

// End closes an active mentorship, stamping the end time.
func (s *MentorshipService) End(id uint) (*models.Mentorship, error) {
	var mentorship models.Mentorship

	if err := s.db.First(&mentorship, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Mentorship not found")
		}
		return nil, err
	}

	if mentorship.Status == types.StatusInactive {
		return nil, apperr.Conflict("Mentorship has already ended")
	}

	now := time.Now()

	err := s.db.Model(&mentorship).Updates(map[string]interface{}{
		"status":   types.StatusInactive,
		"ended_at": &now,
	}).Error

	if err != nil {
		return nil, err
	}

	return &mentorship, nil
}

func (s *MentorshipService) Delete(id uint) error {
	var mentorship models.Mentorship

	if err := s.db.First(&mentorship, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Mentorship not found")
		}
		return err
	}

	return s.db.Delete(&mentorship).Error
}
