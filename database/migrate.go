package database

import (
	"fmt"

	"zogiraa_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults on the primary keys
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("create uuid extension: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.OTPCode{},
		&models.WorkerProfile{},
		&models.EmployerProfile{},
		&models.SupplierProfile{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
