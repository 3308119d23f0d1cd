package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/types"
)

type mentorshipFixture struct {
	organization *models.Organization
	mentor       *models.User
	startup      *models.Startup
}

func seedMentorshipFixture(t *testing.T, database *gorm.DB) mentorshipFixture {
	t.Helper()

	organization := seedOrganization(t, database, "Acme")
	mentor := seedUser(t, database, "mentor@acme.dev", &organization.ID)

	startup := models.Startup{OrganizationID: organization.ID, Name: "Rocket", Stage: "SEED"}
	require.NoError(t, database.Create(&startup).Error)

	return mentorshipFixture{organization: organization, mentor: mentor, startup: &startup}
}

func TestMentorshipCreateStartsActive(t *testing.T) {
	database := newTestDB(t)
	svc := NewMentorshipService(database)
	fixture := seedMentorshipFixture(t, database)

	mentorship, err := svc.Create(CreateMentorshipInput{
		OrganizationID: fixture.organization.ID,
		MentorID:       fixture.mentor.ID,
		StartupID:      fixture.startup.ID,
		Focus:          "go-to-market",
	})
	require.NoError(t, err)

	assert.Equal(t, types.StatusActive, mentorship.Status)
	assert.False(t, mentorship.StartedAt.IsZero())
	assert.Nil(t, mentorship.EndedAt)
}

func TestMentorshipDuplicateActivePairingConflicts(t *testing.T) {
	database := newTestDB(t)
	svc := NewMentorshipService(database)
	fixture := seedMentorshipFixture(t, database)

	input := CreateMentorshipInput{
		OrganizationID: fixture.organization.ID,
		MentorID:       fixture.mentor.ID,
		StartupID:      fixture.startup.ID,
	}

	_, err := svc.Create(input)
	require.NoError(t, err)

	_, err = svc.Create(input)
	assert.Equal(t, apperr.KindConflict, apperr.From(err).Kind)
}

func TestMentorshipEndAllowsNewPairing(t *testing.T) {
	database := newTestDB(t)
	svc := NewMentorshipService(database)
	fixture := seedMentorshipFixture(t, database)

	input := CreateMentorshipInput{
		OrganizationID: fixture.organization.ID,
		MentorID:       fixture.mentor.ID,
		StartupID:      fixture.startup.ID,
	}

	mentorship, err := svc.Create(input)
	require.NoError(t, err)

	ended, err := svc.End(mentorship.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusInactive, ended.Status)

	// Ending frees the pairing for a fresh engagement.
	_, err = svc.Create(input)
	assert.NoError(t, err)
}

func TestMentorshipEndTwiceConflicts(t *testing.T) {
	database := newTestDB(t)
	svc := NewMentorshipService(database)
	fixture := seedMentorshipFixture(t, database)

	mentorship, err := svc.Create(CreateMentorshipInput{
		OrganizationID: fixture.organization.ID,
		MentorID:       fixture.mentor.ID,
		StartupID:      fixture.startup.ID,
	})
	require.NoError(t, err)

	_, err = svc.End(mentorship.ID)
	require.NoError(t, err)

	_, err = svc.End(mentorship.ID)

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	assert.Equal(t, "Mentorship has already ended", appErr.Message)
}
