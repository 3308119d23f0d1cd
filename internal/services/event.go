package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/pagination"
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

type CreateEventInput struct {
	OrganizationID uint           `json:"organization_id"`
	ProgramID      *uint          `json:"program_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Location       string         `json:"location"`
	Agenda         datatypes.JSON `json:"agenda"`
	StartsAt       time.Time      `json:"starts_at"`
	EndsAt         *time.Time     `json:"ends_at"`
}

type UpdateEventInput struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	Agenda      datatypes.JSON `json:"agenda"`
	StartsAt    *time.Time     `json:"starts_at"`
	EndsAt      *time.Time     `json:"ends_at"`
}

type EventFilter struct {
	OrganizationID uint
	ProgramID      uint
	Search         string
	pagination.Params
}

func (s *EventService) List(filter EventFilter) ([]models.Event, int64, error) {
	query := s.db.Model(&models.Event{})

	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	if filter.ProgramID != 0 {
		query = query.Where("program_id = ?", filter.ProgramID)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ?", pattern, pattern)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("starts_at").Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (s *EventService) Get(id uint) (*models.Event, error) {
	var event models.Event

	if err := s.db.Preload("Attendees").Preload("Attendees.User").First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Event not found")
		}
		return nil, err
	}

	return &event, nil
}

func (s *EventService) Create(input CreateEventInput) (*models.Event, error) {
	var missing []string

	if input.OrganizationID == 0 {
		missing = append(missing, "organization_id")
	}

	if input.Name == "" {
		missing = append(missing, "name")
	}

	if input.StartsAt.IsZero() {
		missing = append(missing, "starts_at")
	}

	if err := requiredError(missing); err != nil {
		return nil, err
	}

	event := models.Event{
		OrganizationID: input.OrganizationID,
		ProgramID:      input.ProgramID,
		Name:           input.Name,
		Description:    input.Description,
		Location:       input.Location,
		Agenda:         input.Agenda,
		StartsAt:       input.StartsAt,
		EndsAt:         input.EndsAt,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Organization{}, input.OrganizationID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("organization_id", "organization")
		}

		if input.ProgramID != nil {
			ok, err := exists(tx, &models.Program{}, *input.ProgramID)
			if err != nil {
				return err
			}
			if !ok {
				return fkNotFound("program_id", "program")
			}
		}

		return tx.Create(&event).Error
	})

	if err != nil {
		return nil, err
	}

	return &event, nil
}

func (s *EventService) Update(id uint, input UpdateEventInput) (*models.Event, error) {
	var event models.Event

	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Event not found")
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

	if input.Location != "" {
		updates["location"] = input.Location
	}

	if len(input.Agenda) > 0 {
		updates["agenda"] = input.Agenda
	}

	if input.StartsAt != nil {
		updates["starts_at"] = input.StartsAt
	}

	if input.EndsAt != nil {
		updates["ends_at"] = input.EndsAt
	}

	if len(updates) == 0 {
		return &event, nil
	}

	if err := s.db.Model(&event).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &event, nil
}

// AddAttendee registers a user for an event. Registering twice is a Conflict,
// enforced both by the pre-check and by the (event_id, user_id) unique index.
func (s *EventService) AddAttendee(eventID, userID uint, role string) (*models.EventAttendee, error) {
	if role == "" {
		role = "attendee"
	}

	attendee := models.EventAttendee{
		EventID: eventID,
		UserID:  userID,
		Role:    role,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Event{}, eventID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("Event not found")
		}

		ok, err = exists(tx, &models.User{}, userID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("user_id", "user")
		}

		var count int64

		if err := tx.Model(&models.EventAttendee{}).Where("event_id = ? AND user_id = ?", eventID, userID).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return apperr.Conflict("User is already registered for this event")
		}

		return tx.Create(&attendee).Error
	})

	if err != nil {
		return nil, err
	}

	return &attendee, nil
}

func (s *EventService) RemoveAttendee(eventID, userID uint) error {
	var attendee models.EventAttendee

	err := s.db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&attendee).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Attendee not found")
		}
		return err
	}

	return s.db.Delete(&attendee).Error
}

func (s *EventService) Delete(id uint) error {
	var event models.Event

	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Event not found")
		}
		return err
	}

	return s.db.Delete(&event).Error
}
