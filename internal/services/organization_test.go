package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
)

func TestOrganizationCreateGeneratesSlug(t *testing.T) {
	svc := NewOrganizationService(newTestDB(t))

	organization, err := svc.Create(CreateOrganizationInput{Name: "Acme Ventures Fund"})
	require.NoError(t, err)

	assert.Equal(t, "acme-ventures-fund", organization.Slug)
	assert.NotZero(t, organization.ID)
}

func TestOrganizationCreateRequiresName(t *testing.T) {
	svc := NewOrganizationService(newTestDB(t))

	_, err := svc.Create(CreateOrganizationInput{})

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindBadRequest, appErr.Kind)
	assert.Equal(t, "Missing required fields: name", appErr.Message)
}

func TestOrganizationCreateDuplicateSlugConflicts(t *testing.T) {
	svc := NewOrganizationService(newTestDB(t))

	_, err := svc.Create(CreateOrganizationInput{Name: "Acme"})
	require.NoError(t, err)

	_, err = svc.Create(CreateOrganizationInput{Name: "Other", Slug: "acme"})

	assert.Equal(t, apperr.KindConflict, apperr.From(err).Kind)
}

func TestOrganizationGetNotFound(t *testing.T) {
	svc := NewOrganizationService(newTestDB(t))

	_, err := svc.Get(999)

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
	assert.Equal(t, "Organization not found", appErr.Message)
}

func TestOrganizationUpdateSkipsZeroValues(t *testing.T) {
	database := newTestDB(t)
	svc := NewOrganizationService(database)

	created, err := svc.Create(CreateOrganizationInput{Name: "Acme", Description: "original"})
	require.NoError(t, err)

	_, err = svc.Update(created.ID, UpdateOrganizationInput{Website: "https://acme.dev"})
	require.NoError(t, err)

	fetched, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", fetched.Name)
	assert.Equal(t, "original", fetched.Description)
	assert.Equal(t, "https://acme.dev", fetched.Website)
}

func TestOrganizationDeleteRefusesWithUsers(t *testing.T) {
	database := newTestDB(t)
	svc := NewOrganizationService(database)

	organization := seedOrganization(t, database, "Acme")
	seedUser(t, database, "member@acme.dev", &organization.ID)

	err := svc.Delete(organization.ID)

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Message, "associated users")
}

func TestOrganizationDeleteRemovesRow(t *testing.T) {
	database := newTestDB(t)
	svc := NewOrganizationService(database)

	organization := seedOrganization(t, database, "Acme")

	require.NoError(t, svc.Delete(organization.ID))

	_, err := svc.Get(organization.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
}

func TestOrganizationListPaginates(t *testing.T) {
	database := newTestDB(t)
	svc := NewOrganizationService(database)

	for i := 0; i < 5; i++ {
		seedOrganization(t, database, fmt.Sprintf("Org %d", i))
	}

	organizations, total, err := svc.List(OrganizationFilter{Params: pagination.Parse("2", "2")})
	require.NoError(t, err)

	assert.Equal(t, int64(5), total)
	require.Len(t, organizations, 2)
	assert.Equal(t, "Org 2", organizations[0].Name)
}

func TestOrganizationListSearch(t *testing.T) {
	database := newTestDB(t)
	svc := NewOrganizationService(database)

	seedOrganization(t, database, "Acme Ventures")
	seedOrganization(t, database, "Beta Labs")

	organizations, total, err := svc.List(OrganizationFilter{Search: "acme", Params: pagination.Parse("1", "20")})
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, organizations, 1)
	assert.Equal(t, "Acme Ventures", organizations[0].Name)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Ventures", "acme-ventures"},
		{"  Spaced   Out  ", "spaced-out"},
		{"Already-Slugged", "already-slugged"},
		{"Symbols & Stuff!", "symbols-stuff"},
		{"Mixed123 Case", "mixed123-case"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in))
	}
}
