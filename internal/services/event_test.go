package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
)

func seedEvent(t *testing.T, database *gorm.DB, organizationID uint) *models.Event {
	t.Helper()

	svc := NewEventService(database)

	event, err := svc.Create(CreateEventInput{
		OrganizationID: organizationID,
		Name:           "Demo Day",
		Location:       "Main Hall",
		StartsAt:       time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	return event
}

func TestEventAddAttendee(t *testing.T) {
	database := newTestDB(t)
	svc := NewEventService(database)

	organization := seedOrganization(t, database, "Acme")
	event := seedEvent(t, database, organization.ID)
	user := seedUser(t, database, "guest@acme.dev", &organization.ID)

	attendee, err := svc.AddAttendee(event.ID, user.ID, "")
	require.NoError(t, err)

	assert.Equal(t, "attendee", attendee.Role)
	assert.Equal(t, event.ID, attendee.EventID)
}

func TestEventAddAttendeeTwiceConflicts(t *testing.T) {
	database := newTestDB(t)
	svc := NewEventService(database)

	organization := seedOrganization(t, database, "Acme")
	event := seedEvent(t, database, organization.ID)
	user := seedUser(t, database, "guest@acme.dev", &organization.ID)

	_, err := svc.AddAttendee(event.ID, user.ID, "speaker")
	require.NoError(t, err)

	_, err = svc.AddAttendee(event.ID, user.ID, "attendee")

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	assert.Equal(t, "User is already registered for this event", appErr.Message)
}

func TestEventAddAttendeeUnknownEvent(t *testing.T) {
	database := newTestDB(t)
	svc := NewEventService(database)

	organization := seedOrganization(t, database, "Acme")
	user := seedUser(t, database, "guest@acme.dev", &organization.ID)

	_, err := svc.AddAttendee(999, user.ID, "")

	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
}

func TestEventAddAttendeeUnknownUser(t *testing.T) {
	database := newTestDB(t)
	svc := NewEventService(database)

	organization := seedOrganization(t, database, "Acme")
	event := seedEvent(t, database, organization.ID)

	_, err := svc.AddAttendee(event.ID, 999, "")

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "user_id")
}

func TestEventRemoveAttendee(t *testing.T) {
	database := newTestDB(t)
	svc := NewEventService(database)

	organization := seedOrganization(t, database, "Acme")
	event := seedEvent(t, database, organization.ID)
	user := seedUser(t, database, "guest@acme.dev", &organization.ID)

	_, err := svc.AddAttendee(event.ID, user.ID, "")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveAttendee(event.ID, user.ID))

	err = svc.RemoveAttendee(event.ID, user.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
}

func TestEventGetPreloadsAttendees(t *testing.T) {
	database := newTestDB(t)
	svc := NewEventService(database)

	organization := seedOrganization(t, database, "Acme")
	event := seedEvent(t, database, organization.ID)
	user := seedUser(t, database, "guest@acme.dev", &organization.ID)

	_, err := svc.AddAttendee(event.ID, user.ID, "")
	require.NoError(t, err)

	fetched, err := svc.Get(event.ID)
	require.NoError(t, err)

	require.Len(t, fetched.Attendees, 1)
	assert.Equal(t, user.Email, fetched.Attendees[0].User.Email)
}
