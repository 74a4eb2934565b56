package database

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/pageza/homechef/backend/internal/models"
)

// Migrate creates or updates the accounts, recipes and orders tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Account{}, &models.Recipe{}, &models.Order{}); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	return nil
}
