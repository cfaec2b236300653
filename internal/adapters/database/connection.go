package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"localweather.app/internal/config"
	"localweather.app/pkg/errors"
)

// OpenSQLite opens the settings database at path and migrates it
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, errors.NewStorageError("failed to open sqlite settings database", err)
	}
	return migrated(db)
}

// OpenPostgres connects to the settings database described by cfg and migrates it
func OpenPostgres(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, errors.NewStorageError("failed to connect to postgres settings database", err)
	}
	return migrated(db)
}

// RunMigrations executes database schema migrations
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&SettingModel{}); err != nil {
		return errors.NewStorageError("failed to migrate settings schema", err)
	}
	return nil
}

func migrated(db *gorm.DB) (*gorm.DB, error) {
	if err := RunMigrations(db); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	return db, nil
}
