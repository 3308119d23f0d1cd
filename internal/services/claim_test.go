package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
)

type claimFixture struct {
	organization     *models.Organization
	vehicle          *models.Vehicle
	insuranceCompany *models.InsuranceCompany
}

func seedClaimFixture(t *testing.T, database *gorm.DB) claimFixture {
	t.Helper()

	organization := seedOrganization(t, database, "Fleet Co")

	vehicle := models.Vehicle{
		OrganizationID:     organization.ID,
		RegistrationNumber: "KA-01-1234",
		Make:               "Toyota",
		VehicleModel:       "Corolla",
		Year:               2021,
	}
	require.NoError(t, database.Create(&vehicle).Error)

	insuranceCompany := models.InsuranceCompany{
		OrganizationID: organization.ID,
		Name:           "SafeCover",
		Code:           "SAFE",
		Status:         "ACTIVE",
	}
	require.NoError(t, database.Create(&insuranceCompany).Error)

	return claimFixture{organization: organization, vehicle: &vehicle, insuranceCompany: &insuranceCompany}
}

func TestClaimCreateGeneratesClaimNumber(t *testing.T) {
	database := newTestDB(t)
	svc := NewClaimService(database)
	fixture := seedClaimFixture(t, database)

	claim, err := svc.Create(CreateClaimInput{
		OrganizationID:     fixture.organization.ID,
		VehicleID:          fixture.vehicle.ID,
		InsuranceCompanyID: fixture.insuranceCompany.ID,
		Description:        "rear bumper damage",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(claim.ClaimNumber, "CLM-"))
	assert.Len(t, claim.ClaimNumber, 12)
	assert.Equal(t, "FILED", claim.Status)
	assert.False(t, claim.FiledAt.IsZero())
}

func TestClaimCreateEnumeratesMissingFields(t *testing.T) {
	svc := NewClaimService(newTestDB(t))

	_, err := svc.Create(CreateClaimInput{})

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindBadRequest, appErr.Kind)
	assert.Equal(t, "Missing required fields: organization_id, vehicle_id, insurance_company_id", appErr.Message)
}

func TestClaimCreateValidatesForeignKeys(t *testing.T) {
	database := newTestDB(t)
	svc := NewClaimService(database)
	fixture := seedClaimFixture(t, database)

	_, err := svc.Create(CreateClaimInput{
		OrganizationID:     fixture.organization.ID,
		VehicleID:          999,
		InsuranceCompanyID: fixture.insuranceCompany.ID,
	})

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "vehicle_id")
}

func TestClaimCreateValidatesOptionalRepairOrganization(t *testing.T) {
	database := newTestDB(t)
	svc := NewClaimService(database)
	fixture := seedClaimFixture(t, database)

	missing := uint(999)
	_, err := svc.Create(CreateClaimInput{
		OrganizationID:       fixture.organization.ID,
		VehicleID:            fixture.vehicle.ID,
		InsuranceCompanyID:   fixture.insuranceCompany.ID,
		RepairOrganizationID: &missing,
	})

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "repair_organization_id")
}

func TestClaimUpdateStatusWorkflow(t *testing.T) {
	database := newTestDB(t)
	svc := NewClaimService(database)
	fixture := seedClaimFixture(t, database)

	claim, err := svc.Create(CreateClaimInput{
		OrganizationID:     fixture.organization.ID,
		VehicleID:          fixture.vehicle.ID,
		InsuranceCompanyID: fixture.insuranceCompany.ID,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(claim.ID, "UNDER_REVIEW")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(claim.ID, "SETTLED")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(claim.ID, "UNDER_REVIEW")

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	assert.Equal(t, "Claim has already been settled", appErr.Message)
}

func TestClaimUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewClaimService(newTestDB(t))

	_, err := svc.UpdateStatus(1, "LOST")

	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
}

func TestClaimDeleteIsHard(t *testing.T) {
	database := newTestDB(t)
	svc := NewClaimService(database)
	fixture := seedClaimFixture(t, database)

	claim, err := svc.Create(CreateClaimInput{
		OrganizationID:     fixture.organization.ID,
		VehicleID:          fixture.vehicle.ID,
		InsuranceCompanyID: fixture.insuranceCompany.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(claim.ID))

	_, err = svc.Get(claim.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
}
