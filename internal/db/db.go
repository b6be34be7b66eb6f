package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mkhattab22/Schedule/internal/models"
)

// Open connects to the sqlite database at path and migrates the schema.
// Migration is create-if-missing; existing data is never touched.
func Open(path string) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(
		&models.Shift{},
		&models.Upload{},
	); err != nil {
		return nil, err
	}

	return database, nil
}

// Reset drops all tables and recreates them empty. Destructive; only ever
// run when explicitly requested.
func Reset(database *gorm.DB) error {
	if err := database.Migrator().DropTable(
		&models.Shift{},
		&models.Upload{},
	); err != nil {
		return err
	}

	return database.AutoMigrate(
		&models.Shift{},
		&models.Upload{},
	)
}
