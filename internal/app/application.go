package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"localweather.app/internal/adapters/api"
	"localweather.app/internal/config"
	"localweather.app/internal/core/presentation"
	"localweather.app/internal/core/weather"
	"localweather.app/internal/ports"
)

// AppName is shown on the splash banner
const AppName = "LocalWeather"

type Application struct {
	config *config.Config
	clock  clockwork.Clock

	// Use Cases
	viewState *weather.ViewState
	surface   *presentation.Surface

	// Adapters
	httpAdapter *api.HTTPServerAdapter
	renderer    ports.Renderer

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication(opts DependencyOptions) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps, clockwork.NewRealClock())
	if err != nil {
		_ = deps.Close()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer, clock clockwork.Clock) (*Application, error) {
	app := &Application{
		config: cfg,
		clock:  clock,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	return app, nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	renderers := append(presentation.MultiRenderer{}, a.ports.Renderers...)

	if a.config.Server.Enabled {
		httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
			Config: api.ServerConfig{
				Port: a.config.Server.Port,
			},
			HealthChecker: a.ports.HealthChecker,
			Gatherer:      a.deps.Registry(),
		})
		if err != nil {
			return fmt.Errorf("create HTTP adapter: %w", err)
		}
		a.httpAdapter = httpAdapter
		renderers = append(renderers, httpAdapter)
	}

	a.renderer = renderers
	slog.Info("Adapters initialized successfully", "renderers", len(renderers))
	return nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	viewState, err := weather.NewUseCase(weather.UseCaseDependencies{
		LocationProvider:   a.ports.LocationProvider,
		WeatherGateway:     a.ports.WeatherGateway,
		ConfigurationStore: a.ports.ConfigurationStore,
		Logger:             a.ports.Logger,
		Metrics:            a.ports.Metrics,
		APIKey:             a.config.Weather.APIKey,
		ForecastDays:       a.config.Weather.ForecastDays,
	})
	if err != nil {
		return fmt.Errorf("create weather view state: %w", err)
	}
	a.viewState = viewState

	surface, err := presentation.NewSurface(presentation.SurfaceDependencies{
		ViewState:             viewState,
		PermissionPrompter:    a.ports.PermissionPrompter,
		Renderer:              a.renderer,
		Logger:                a.ports.Logger,
		Metrics:               a.ports.Metrics,
		Clock:                 a.clock,
		MaxPermissionAttempts: a.config.Permission.MaxAttempts,
		CoerceForecastErrors:  a.config.Display.CoerceForecastErrors,
	})
	if err != nil {
		return fmt.Errorf("create presentation surface: %w", err)
	}
	a.surface = surface

	if a.httpAdapter != nil {
		a.httpAdapter.SetRefresher(surface)
	}

	slog.Info("Use cases initialized successfully")
	return nil
}

// Start shows the splash, runs the permission flow and starts the first fetches.
// With the HTTP server enabled it blocks until ctx is done or the server fails;
// otherwise it returns once the first fetch cycles have been rendered.
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	serverErr := make(chan error, 1)
	if a.httpAdapter != nil {
		go func() {
			serverErr <- a.httpAdapter.Start(ctx)
		}()
	}

	if err := presentation.Splash(ctx, a.renderer, a.clock, AppName, a.config.Display.SplashDelay()); err != nil {
		return fmt.Errorf("show splash: %w", err)
	}

	if err := a.surface.Create(ctx); err != nil {
		return fmt.Errorf("create weather surface: %w", err)
	}

	if a.httpAdapter == nil {
		a.viewState.Wait()
		return nil
	}

	select {
	case <-ctx.Done():
		return nil
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	}
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	a.surface.Destroy()

	if a.httpAdapter != nil {
		if err := a.httpAdapter.Shutdown(ctx); err != nil {
			slog.Error("Error shutting down HTTP server", "error", err)
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		a.viewState.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		slog.Warn("Fetch cycles still running at shutdown")
	}

	if err := a.deps.Close(); err != nil {
		slog.Warn("Error closing settings store", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// ViewState returns the weather view state for testing
func (a *Application) ViewState() *weather.ViewState {
	return a.viewState
}

// Surface returns the presentation surface for testing
func (a *Application) Surface() *presentation.Surface {
	return a.surface
}

// HTTPAdapter returns the HTTP adapter, nil when the server is disabled
func (a *Application) HTTPAdapter() *api.HTTPServerAdapter {
	return a.httpAdapter
}
