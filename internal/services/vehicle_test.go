package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelhub-dev/accelhub/internal/apperr"
)

func TestVehicleCreateNormalizesRegistration(t *testing.T) {
	database := newTestDB(t)
	svc := NewVehicleService(database)
	organization := seedOrganization(t, database, "Fleet Co")

	vehicle, err := svc.Create(CreateVehicleInput{
		OrganizationID:     organization.ID,
		RegistrationNumber: " ka-01-1234 ",
		Make:               "Toyota",
		Model:              "Corolla",
	})
	require.NoError(t, err)

	assert.Equal(t, "KA-01-1234", vehicle.RegistrationNumber)
	assert.Equal(t, "Corolla", vehicle.VehicleModel)
}

func TestVehicleDuplicateRegistrationConflicts(t *testing.T) {
	database := newTestDB(t)
	svc := NewVehicleService(database)
	organization := seedOrganization(t, database, "Fleet Co")

	_, err := svc.Create(CreateVehicleInput{OrganizationID: organization.ID, RegistrationNumber: "KA-01-1234"})
	require.NoError(t, err)

	_, err = svc.Create(CreateVehicleInput{OrganizationID: organization.ID, RegistrationNumber: "ka-01-1234"})

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	assert.Equal(t, "A vehicle with this registration number already exists", appErr.Message)
}

func TestVehicleCreateValidatesDriver(t *testing.T) {
	database := newTestDB(t)
	svc := NewVehicleService(database)
	organization := seedOrganization(t, database, "Fleet Co")

	missing := uint(999)
	_, err := svc.Create(CreateVehicleInput{
		OrganizationID:     organization.ID,
		RegistrationNumber: "KA-01-1234",
		DriverID:           &missing,
	})

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "driver_id")
}

func TestDriverDuplicateLicenseConflicts(t *testing.T) {
	database := newTestDB(t)
	svc := NewDriverService(database)
	organization := seedOrganization(t, database, "Fleet Co")

	_, err := svc.Create(CreateDriverInput{OrganizationID: organization.ID, Name: "Asha", LicenseNumber: "DL-42"})
	require.NoError(t, err)

	_, err = svc.Create(CreateDriverInput{OrganizationID: organization.ID, Name: "Ravi", LicenseNumber: "dl-42"})

	assert.Equal(t, apperr.KindConflict, apperr.From(err).Kind)
}

func TestDriverCreateEnumeratesMissingFields(t *testing.T) {
	svc := NewDriverService(newTestDB(t))

	_, err := svc.Create(CreateDriverInput{})

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindBadRequest, appErr.Kind)
	assert.Equal(t, "Missing required fields: organization_id, name, license_number", appErr.Message)
}
