package infrastructure

import (
	"context"
	"sync"

	"localweather.app/internal/ports"
	"localweather.app/pkg/errors"
)

// SwitchLocationServices implements the LocationServices port as a process-level switch.
// Enable succeeds only when auto-enable is allowed.
type SwitchLocationServices struct {
	mu         sync.RWMutex
	enabled    bool
	autoEnable bool
	logger     ports.Logger
}

// NewSwitchLocationServices creates the switch in its initial position
func NewSwitchLocationServices(enabled, autoEnable bool, logger ports.Logger) *SwitchLocationServices {
	return &SwitchLocationServices{
		enabled:    enabled,
		autoEnable: autoEnable,
		logger:     logger,
	}
}

func (s *SwitchLocationServices) Enabled(ctx context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

func (s *SwitchLocationServices) Enable(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enabled {
		return nil
	}
	if !s.autoEnable {
		return errors.NewLocationUnavailableError("location services are disabled", nil)
	}
	s.enabled = true
	s.logger.Info("Location services enabled")
	return nil
}
