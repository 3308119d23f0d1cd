package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/accelhub-dev/accelhub/db"
	"github.com/accelhub-dev/accelhub/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "accelhub_test.db")

	database, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))

	return database
}

func seedOrganization(t *testing.T, database *gorm.DB, name string) *models.Organization {
	t.Helper()

	organization := models.Organization{Name: name, Slug: Slugify(name)}
	require.NoError(t, database.Create(&organization).Error)

	return &organization
}

func seedUser(t *testing.T, database *gorm.DB, email string, organizationID *uint) *models.User {
	t.Helper()

	user := models.User{
		Name:           "Test User",
		Email:          email,
		PasswordHash:   "x",
		Role:           "member",
		OrganizationID: organizationID,
	}
	require.NoError(t, database.Create(&user).Error)

	return &user
}
