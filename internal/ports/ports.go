package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Data
	SettingsStore      SettingsStore
	NetworkMonitor     NetworkMonitor
	ConfigurationStore ConfigurationStore
	LocationProvider   LocationProvider
	WeatherGateway     WeatherGateway

	// Presentation
	PermissionPrompter PermissionPrompter
	Renderers          []Renderer

	// Infrastructure
	Metrics       FetchMetrics
	HealthChecker SystemHealthChecker
	Logger        Logger
}
