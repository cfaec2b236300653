package infrastructure

import (
	"context"

	"localweather.app/internal/ports"
)

// AppConfigStore implements the ConfigurationStore port on top of the
// settings store and the platform network monitor
type AppConfigStore struct {
	settings ports.SettingsStore
	network  ports.NetworkMonitor
	logger   ports.Logger
}

// NewAppConfigStore creates a new configuration store
func NewAppConfigStore(settings ports.SettingsStore, network ports.NetworkMonitor, logger ports.Logger) *AppConfigStore {
	return &AppConfigStore{
		settings: settings,
		network:  network,
		logger:   logger,
	}
}

// GetUnits returns the persisted unit preference, metric when unset or unreadable
func (s *AppConfigStore) GetUnits(ctx context.Context) ports.Units {
	value, err := s.settings.GetString(ctx, ports.UnitsKey, ports.UnitsValueSI)
	if err != nil {
		s.logger.Warn("Failed to read units setting, using metric", ports.F("error", err))
		return ports.UnitsMetric
	}
	return ports.UnitsFromString(value)
}

// GetNetworkStatus reports reachability; a missing active network is never dereferenced
func (s *AppConfigStore) GetNetworkStatus(ctx context.Context) ports.NetworkStatus {
	info := s.network.ActiveNetwork()
	if info == nil {
		return ports.NetworkNotConnected
	}
	if info.IsConnected() {
		return ports.NetworkConnected
	}
	return ports.NetworkNotConnected
}

// GetConfiguration returns both settings at once
func (s *AppConfigStore) GetConfiguration(ctx context.Context) ports.Configuration {
	return ports.Configuration{
		Units:         s.GetUnits(ctx),
		NetworkStatus: s.GetNetworkStatus(ctx),
	}
}
