package external

import (
	"context"
	"sync"

	"localweather.app/pkg/errors"
)

type MemorySettingsStore struct {
	data  map[string]string
	mutex sync.RWMutex
}

func NewMemorySettingsStore() *MemorySettingsStore {
	return &MemorySettingsStore{
		data: make(map[string]string),
	}
}

func (s *MemorySettingsStore) GetString(ctx context.Context, key, def string) (string, error) {
	if key == "" {
		return def, errors.NewValidationError("settings key cannot be empty")
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if value, ok := s.data[key]; ok {
		return value, nil
	}
	return def, nil
}

func (s *MemorySettingsStore) SetString(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("settings key cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemorySettingsStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemorySettingsStore) Close() error {
	return nil
}
