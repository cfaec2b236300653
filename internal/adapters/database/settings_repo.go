package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"localweather.app/pkg/errors"
)

// SettingModel represents the database model for a user setting
type SettingModel struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (SettingModel) TableName() string {
	return "settings"
}

// SettingsRepositoryAdapter implements the SettingsStore port using GORM
type SettingsRepositoryAdapter struct {
	db *gorm.DB
}

// NewSettingsRepositoryAdapter creates a new settings repository adapter
func NewSettingsRepositoryAdapter(db *gorm.DB) *SettingsRepositoryAdapter {
	return &SettingsRepositoryAdapter{db: db}
}

// GetString returns the stored value for key, or def when no row exists
func (r *SettingsRepositoryAdapter) GetString(ctx context.Context, key, def string) (string, error) {
	if key == "" {
		return def, errors.NewValidationError("settings key cannot be empty")
	}

	var model SettingModel
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return def, nil
		}
		return def, errors.NewStorageError("failed to read setting", result.Error)
	}

	return model.Value, nil
}

// SetString inserts or replaces the value stored under key
func (r *SettingsRepositoryAdapter) SetString(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("settings key cannot be empty")
	}

	model := SettingModel{Key: key, Value: value}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model)
	if result.Error != nil {
		return errors.NewStorageError("failed to save setting", result.Error)
	}

	return nil
}

// Ping checks the database connection
func (r *SettingsRepositoryAdapter) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewStorageError("failed to get database connection", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewStorageError("database ping failed", err)
	}
	return nil
}

// Close safely closes the database connection
func (r *SettingsRepositoryAdapter) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewStorageError("failed to get database connection", err)
	}
	if err := sqlDB.Close(); err != nil {
		return errors.NewStorageError("failed to close database", err)
	}
	return nil
}
