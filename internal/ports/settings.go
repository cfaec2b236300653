package ports

import (
	"context"
	"strings"
)

// Settings keys and persisted values
const (
	UnitsKey           = "units"
	UnitsValueSI       = "si"
	UnitsValueImperial = "imperial"
)

// Units is the unit system used for temperature and wind speed
type Units int

const (
	UnitsMetric Units = iota
	UnitsImperial
)

// String returns the persisted settings value for the unit system
func (u Units) String() string {
	if u == UnitsImperial {
		return UnitsValueImperial
	}
	return UnitsValueSI
}

// Symbol returns the temperature unit symbol shown next to readings
func (u Units) Symbol() string {
	if u == UnitsImperial {
		return "F"
	}
	return "C"
}

// UnitsFromString parses a persisted settings value. Unknown values fall back to metric.
func UnitsFromString(s string) Units {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case UnitsValueImperial:
		return UnitsImperial
	default:
		return UnitsMetric
	}
}

// NetworkStatus is the coarse reachability of the host
type NetworkStatus int

const (
	NetworkNotConnected NetworkStatus = iota
	NetworkConnected
)

func (s NetworkStatus) String() string {
	if s == NetworkConnected {
		return "connected"
	}
	return "not_connected"
}

// Configuration is the read-only view of user settings and platform state
type Configuration struct {
	Units         Units
	NetworkStatus NetworkStatus
}

// SettingsStore defines the contract for flat string-keyed settings persistence
type SettingsStore interface {
	// GetString returns def when the key is absent.
	GetString(ctx context.Context, key, def string) (string, error)
	SetString(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}

// NetworkInfo describes the currently active network
type NetworkInfo interface {
	IsConnected() bool
}

// NetworkMonitor defines the contract for platform reachability queries
type NetworkMonitor interface {
	// ActiveNetwork returns nil when there is no active network.
	ActiveNetwork() NetworkInfo
}

// ConfigurationStore defines the contract for reading user settings and network status
type ConfigurationStore interface {
	GetUnits(ctx context.Context) Units
	GetNetworkStatus(ctx context.Context) NetworkStatus
	GetConfiguration(ctx context.Context) Configuration
}
