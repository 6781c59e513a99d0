package postgres

import (
	"rewards/internal/errors"
	"rewards/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table, index and check constraint of the models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
