package database

import (
	"fmt"

	"recommender/internal/models"

	"gorm.io/gorm"
)

// EnsureSchema declares the users, items and ratings tables with their
// constraints. It is idempotent: AutoMigrate creates what is absent and
// leaves existing data alone, so running it against an initialized store is
// safe. All enforcement (unique names, the rating range check, the composite
// rating key, cascading foreign keys) lives in the table definitions so that
// direct write paths are covered too.
//
// A failure here is returned, not fatal: the caller decides whether to
// proceed with whatever schema the store already has.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Rating{},
	); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
