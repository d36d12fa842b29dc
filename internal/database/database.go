package database

import (
	"github.com/deep314313/unnativ-backend/config"
	"github.com/deep314313/unnativ-backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
		// Unique-index violations must come back as gorm.ErrDuplicatedKey
		// so the application dedup check can rely on the index.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Athlete{},
		&models.Organization{},
		&models.Donor{},
		&models.Event{},
		&models.Sponsorship{},
		&models.TravelSupport{},
		&models.Application{},
		&models.Donation{},
		&models.AuditLog{},
	)
}
