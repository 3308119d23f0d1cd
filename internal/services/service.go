package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
)

// requiredError turns a list of missing field names into the BadRequest every
// create path raises, with the names comma-joined.
func requiredError(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return apperr.BadRequest("Missing required fields: " + strings.Join(missing, ", "))
}

// exists runs the referential pre-check used before every write that carries a
// foreign key. Callers run it inside the same transaction as the write.
func exists(tx *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64

	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func fkNotFound(field, entity string) error {
	return apperr.Validation("Referenced "+entity+" does not exist", map[string]string{
		field: entity + " not found",
	})
}
