package infrastructure

import (
	"context"

	"localweather.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	settingsChecker   ports.HealthChecker
	networkChecker    ports.HealthChecker
	weatherAPIChecker ports.HealthChecker
	config            ports.ConfigurationStore
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	SettingsChecker   ports.HealthChecker
	NetworkChecker    ports.HealthChecker
	WeatherAPIChecker ports.HealthChecker
	Config            ports.ConfigurationStore
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		settingsChecker:   config.SettingsChecker,
		networkChecker:    config.NetworkChecker,
		weatherAPIChecker: config.WeatherAPIChecker,
		config:            config.Config,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.settingsChecker != nil {
		results["settings"] = s.settingsChecker.Check(ctx)
	}
	if s.networkChecker != nil {
		results["network"] = s.networkChecker.Check(ctx)
	}
	if s.weatherAPIChecker != nil {
		results["weatherAPI"] = s.weatherAPIChecker.Check(ctx)
	}

	if s.config != nil {
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    ports.HealthHealthy,
			Details: map[string]interface{}{
				"units": s.config.GetUnits(ctx).String(),
			},
		}
	}

	return results
}
