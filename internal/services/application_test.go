package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
)

type applicationFixture struct {
	organization *models.Organization
	startup      *models.Startup
	program      *models.Program
}

func seedApplicationFixture(t *testing.T, database *gorm.DB) applicationFixture {
	t.Helper()

	organization := seedOrganization(t, database, "Acme")

	startup := models.Startup{OrganizationID: organization.ID, Name: "Rocket", Stage: "IDEA"}
	require.NoError(t, database.Create(&startup).Error)

	program := models.Program{OrganizationID: organization.ID, Name: "Spring Cohort", Capacity: 10}
	require.NoError(t, database.Create(&program).Error)

	return applicationFixture{organization: organization, startup: &startup, program: &program}
}

func TestApplicationCreateStartsSubmitted(t *testing.T) {
	database := newTestDB(t)
	svc := NewApplicationService(database)
	fixture := seedApplicationFixture(t, database)

	application, err := svc.Create(CreateApplicationInput{
		OrganizationID: fixture.organization.ID,
		StartupID:      fixture.startup.ID,
		ProgramID:      fixture.program.ID,
		Answers:        datatypes.JSON(`{"pitch":"we make rockets"}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "SUBMITTED", application.Status)
}

func TestApplicationCreateValidatesProgram(t *testing.T) {
	database := newTestDB(t)
	svc := NewApplicationService(database)
	fixture := seedApplicationFixture(t, database)

	_, err := svc.Create(CreateApplicationInput{
		OrganizationID: fixture.organization.ID,
		StartupID:      fixture.startup.ID,
		ProgramID:      999,
	})

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "program_id")
}

func TestApplicationStatusTransitions(t *testing.T) {
	database := newTestDB(t)
	svc := NewApplicationService(database)
	fixture := seedApplicationFixture(t, database)

	application, err := svc.Create(CreateApplicationInput{
		OrganizationID: fixture.organization.ID,
		StartupID:      fixture.startup.ID,
		ProgramID:      fixture.program.ID,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(application.ID, "UNDER_REVIEW")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(application.ID, "ACCEPTED")
	require.NoError(t, err)

	// Terminal states cannot be reopened.
	_, err = svc.UpdateStatus(application.ID, "UNDER_REVIEW")

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	assert.Equal(t, "Application has already been accepted", appErr.Message)
}

func TestApplicationStatusRejectsUnknownValue(t *testing.T) {
	svc := NewApplicationService(newTestDB(t))

	_, err := svc.UpdateStatus(1, "MAYBE")

	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
}
