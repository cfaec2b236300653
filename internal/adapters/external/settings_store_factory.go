package external

import (
	"fmt"

	"localweather.app/internal/config"
	"localweather.app/internal/ports"
	"localweather.app/pkg/errors"
)

// SettingsStoreFactory builds the key-value settings backends. SQL backends live in the database adapter.
type SettingsStoreFactory struct{}

func NewSettingsStoreFactory() *SettingsStoreFactory {
	return &SettingsStoreFactory{}
}

func (f *SettingsStoreFactory) CreateSettingsStore(cfg *config.SettingsConfig) (ports.SettingsStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("settings config cannot be nil", nil)
	}

	switch cfg.Backend {
	case config.SettingsBackendMemory:
		return NewMemorySettingsStore(), nil
	case config.SettingsBackendRedis:
		return NewRedisSettingsStore(&cfg.Redis)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported key-value settings backend: %s", cfg.Backend.String()), nil)
	}
}
