package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/models"
)

// Connect opens the single process-wide gorm client. Callers pass it down to
// service constructors instead of reaching for a package-level variable.
func Connect(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return database, nil
}

func Migrate(database *gorm.DB) error {
	tables := []interface{}{
		&models.Organization{},
		&models.User{},
		&models.Startup{},
		&models.Program{},
		&models.StartupApplication{},
		&models.Thesis{},
		&models.Event{},
		&models.EventAttendee{},
		&models.Mentorship{},
		&models.Investment{},
		&models.Contact{},
		&models.Hub{},
		&models.InsuranceCompany{},
		&models.RepairOrganization{},
		&models.Driver{},
		&models.Vehicle{},
		&models.Claim{},
		&models.Bill{},
	}

	migrator := database.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := database.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
