package infrastructure

import (
	"context"
	"strings"

	"localweather.app/internal/ports"
)

// SettingsHealthChecker verifies the settings backend answers
type SettingsHealthChecker struct {
	store   ports.SettingsStore
	backend string
}

// NewSettingsHealthChecker creates a new settings health checker
func NewSettingsHealthChecker(store ports.SettingsStore, backend string) *SettingsHealthChecker {
	return &SettingsHealthChecker{store: store, backend: backend}
}

// Check pings the settings store
func (s *SettingsHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "settings",
		Details:   map[string]interface{}{"backend": s.backend},
	}

	if s.store == nil {
		status.Status = ports.HealthUnhealthy
		status.Error = "settings store is not configured"
		return status
	}
	if err := s.store.Ping(ctx); err != nil {
		status.Status = ports.HealthUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = ports.HealthHealthy
	status.Details["connected"] = true
	return status
}

// NetworkHealthChecker reports host reachability
type NetworkHealthChecker struct {
	config ports.ConfigurationStore
}

// NewNetworkHealthChecker creates a new network health checker
func NewNetworkHealthChecker(config ports.ConfigurationStore) *NetworkHealthChecker {
	return &NetworkHealthChecker{config: config}
}

// Check reads the network status from the configuration store
func (n *NetworkHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	networkStatus := n.config.GetNetworkStatus(ctx)
	status := ports.HealthStatus{
		Component: "network",
		Status:    ports.HealthHealthy,
		Details:   map[string]interface{}{"status": networkStatus.String()},
	}
	if networkStatus != ports.NetworkConnected {
		status.Status = ports.HealthDegraded
		status.Error = "no active network connection"
	}
	return status
}

// WeatherAPIHealthChecker verifies the weather API is configured
type WeatherAPIHealthChecker struct {
	baseURL string
	apiKey  string
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(baseURL, apiKey string) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{baseURL: baseURL, apiKey: apiKey}
}

// Check reports configuration only; it never spends an upstream request
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    ports.HealthHealthy,
		Details: map[string]interface{}{
			"baseURL":       w.baseURL,
			"keyConfigured": strings.TrimSpace(w.apiKey) != "",
		},
	}
	if strings.TrimSpace(w.apiKey) == "" {
		status.Status = ports.HealthUnhealthy
		status.Error = "weather API key is not configured"
	}
	return status
}
