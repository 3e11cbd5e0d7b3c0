package database

import (
	"chronicle/internal/models"

	"gorm.io/gorm"
)

// RegisteredModels lists every entity AutoMigrate manages. Order matters:
// referenced tables first so foreign keys can be created.
func RegisteredModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	}
}

// Migrate creates or updates the schema for all registered models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(RegisteredModels()...)
}
