package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"localweather.app/internal/adapters/cli"
	"localweather.app/internal/adapters/database"
	"localweather.app/internal/adapters/external"
	"localweather.app/internal/adapters/infrastructure"
	"localweather.app/internal/config"
	"localweather.app/internal/ports"
	"localweather.app/pkg/errors"
)

type DependencyContainer struct {
	config   *config.Config
	options  DependencyOptions
	settings ports.SettingsStore
	ports    *ports.ApplicationPorts
}

// DependencyOptions carries the process handles the adapters are bound to
type DependencyOptions struct {
	Stdin  io.Reader
	Stdout io.Writer
	// Registry receives the application collectors. Nil means a fresh registry.
	Registry *prometheus.Registry
	// Logger overrides the logger built from configuration.
	Logger ports.Logger
	// LocationHTTPClient and WeatherHTTPClient override the default HTTP clients.
	LocationHTTPClient external.HTTPClient
	WeatherHTTPClient  external.HTTPClient
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("config cannot be nil", nil)
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	container := &DependencyContainer{
		config:  cfg,
		options: opts,
	}

	if err := container.initializeSettings(); err != nil {
		return nil, fmt.Errorf("initialize settings: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.settings.Close()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeSettings() error {
	slog.Info("Initializing settings store...", "backend", c.config.Settings.Backend.String())

	store, err := c.openSettingsStore()
	if err != nil {
		return err
	}

	if seed := c.config.Settings.SeedUnits; seed != "" {
		if err := store.SetString(context.Background(), ports.UnitsKey, seed); err != nil {
			_ = store.Close()
			return fmt.Errorf("seed units setting: %w", err)
		}
		slog.Info("Seeded units setting", "units", seed)
	}

	c.settings = store
	slog.Info("Settings store initialized successfully")
	return nil
}

func (c *DependencyContainer) openSettingsStore() (ports.SettingsStore, error) {
	switch c.config.Settings.Backend {
	case config.SettingsBackendSQLite:
		db, err := database.OpenSQLite(c.config.Settings.SQLitePath)
		if err != nil {
			return nil, err
		}
		return database.NewSettingsRepositoryAdapter(db), nil
	case config.SettingsBackendPostgres:
		db, err := database.OpenPostgres(c.config.Settings.Database)
		if err != nil {
			return nil, err
		}
		return database.NewSettingsRepositoryAdapter(db), nil
	default:
		return external.NewSettingsStoreFactory().CreateSettingsStore(&c.config.Settings)
	}
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	logger := c.options.Logger
	if logger == nil {
		logger = infrastructure.NewSlogLoggerAdapter(slog.Default())

		// If file logging is enabled, create a file logger
		if c.config.Weather.EnableLogging && c.config.Weather.LogFilePath != "" {
			fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath)
			if err != nil {
				slog.Warn("Failed to create file logger, falling back to slog", "error", err)
			} else {
				logger = fileLogger
				slog.Info("File logging enabled", "path", c.config.Weather.LogFilePath)
			}
		}
	}

	var gateway ports.WeatherGateway = external.NewOpenWeatherMapGateway(external.OpenWeatherMapGatewayParams{
		APIKey:  c.config.Weather.APIKey,
		BaseURL: c.config.Weather.BaseURL,
		Timeout: c.config.Weather.Timeout(),
		Logger:  logger,
		Client:  c.options.WeatherHTTPClient,
	})

	// If logging is enabled, wrap the gateway with logging decorator
	if c.config.Weather.EnableLogging {
		gateway = external.NewWeatherGatewayLoggingDecorator(gateway, logger)
		slog.Info("Weather gateway logging enabled")
	}

	locationProvider, err := c.newLocationProvider(logger)
	if err != nil {
		return fmt.Errorf("create location provider: %w", err)
	}
	locationServices := infrastructure.NewSwitchLocationServices(
		c.config.Location.ServicesEnabled, c.config.Location.AutoEnable, logger)

	networkMonitor := infrastructure.NewInterfaceNetworkMonitor()
	configStore := infrastructure.NewAppConfigStore(c.settings, networkMonitor, logger)

	var renderers []ports.Renderer
	if c.config.Display.Terminal {
		renderers = append(renderers, cli.NewTerminalRenderer(c.options.Stdout, logger))
	}

	metrics := infrastructure.NewPrometheusMetrics(c.options.Registry)

	healthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		SettingsChecker:   infrastructure.NewSettingsHealthChecker(c.settings, c.config.Settings.Backend.String()),
		NetworkChecker:    infrastructure.NewNetworkHealthChecker(configStore),
		WeatherAPIChecker: infrastructure.NewWeatherAPIHealthChecker(c.config.Weather.BaseURL, c.config.Weather.APIKey),
		Config:            configStore,
	})

	c.ports = &ports.ApplicationPorts{
		// Data
		SettingsStore:      c.settings,
		NetworkMonitor:     networkMonitor,
		ConfigurationStore: configStore,
		LocationProvider:   external.NewLocationServicesGuard(locationProvider, locationServices, logger),
		WeatherGateway:     gateway,

		// Presentation
		PermissionPrompter: c.newPermissionPrompter(logger),
		Renderers:          renderers,

		// Infrastructure
		Metrics:       metrics,
		HealthChecker: healthChecker,
		Logger:        logger,
	}

	slog.Info("Ports initialized successfully",
		"location_source", string(c.config.Location.Source),
		"permission_mode", string(c.config.Permission.Mode))
	return nil
}

func (c *DependencyContainer) newLocationProvider(logger ports.Logger) (ports.LocationProvider, error) {
	switch c.config.Location.Source {
	case config.LocationSourceStatic:
		return external.NewStaticLocationProvider(ports.Coordinates{
			Latitude:  c.config.Location.Latitude,
			Longitude: c.config.Location.Longitude,
		})
	case config.LocationSourceIP:
		return external.NewIPLocationProvider(external.IPLocationProviderParams{
			LookupURL: c.config.Location.IPLookupURL,
			Timeout:   c.config.Location.Timeout(),
			Client:    c.options.LocationHTTPClient,
			Logger:    logger,
		}), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported location source: %s", c.config.Location.Source), nil)
	}
}

func (c *DependencyContainer) newPermissionPrompter(logger ports.Logger) ports.PermissionPrompter {
	switch c.config.Permission.Mode {
	case config.PermissionModeGrant:
		return infrastructure.NewStaticPermissionPrompter(ports.PermissionGranted, logger)
	case config.PermissionModeDeny:
		return infrastructure.NewStaticPermissionPrompter(ports.PermissionDenied, logger)
	default:
		return cli.NewTerminalPermissionPrompter(c.options.Stdin, c.options.Stdout, logger)
	}
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Registry returns the registry the application collectors are registered with
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.options.Registry
}

// Close stops the terminal prompter and releases the settings store
func (c *DependencyContainer) Close() error {
	if c.ports != nil {
		if closer, ok := c.ports.PermissionPrompter.(io.Closer); ok {
			_ = closer.Close()
		}
	}
	if c.settings == nil {
		return nil
	}
	return c.settings.Close()
}
