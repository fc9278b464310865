package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tailorlink_backend/internal/config"
	"tailorlink_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the shared GORM connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// uuid_generate_v4 defaults on primary keys need this extension.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return nil, fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.TailorProfile{},
		&models.MeasurementTemplate{},
		&models.CustomerMeasurement{},
		&models.Order{},
		&models.OrderItem{},
	)
}
