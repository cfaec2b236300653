// Package api provides HTTP adapters for the hexagonal architecture
// These adapters expose the rendered weather view over HTTP
package api

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"localweather.app/internal/ports"
	"localweather.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// Refresher re-runs the fetch cycle of the presentation surface
type Refresher interface {
	Refresh(ctx context.Context) error
}

// HTTPServerAdapter serves the latest rendered view using Gin.
// It implements the Renderer port so it can be fanned out to next to the terminal.
type HTTPServerAdapter struct {
	router        *gin.Engine
	config        ServerConfig
	healthChecker ports.SystemHealthChecker
	gatherer      prometheus.Gatherer

	mu        sync.RWMutex
	refresher Refresher
	view      ViewResponse
	server    *http.Server
	closed    bool
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config        ServerConfig
	HealthChecker ports.SystemHealthChecker
	// Gatherer backs /metrics. Nil means the default Prometheus registry.
	Gatherer prometheus.Gatherer
}

// ViewResponse is the snapshot of everything rendered so far
type ViewResponse struct {
	AppName  string                   `json:"app_name,omitempty"`
	Loading  bool                     `json:"loading"`
	Weather  *ports.WeatherView       `json:"weather,omitempty"`
	Forecast []ports.ForecastItemView `json:"forecast,omitempty"`
	Notice   string                   `json:"notice,omitempty"`
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &HTTPServerAdapter{
		router:        router,
		config:        opts.Config,
		healthChecker: opts.HealthChecker,
		gatherer:      gatherer,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// SetRefresher attaches the surface driven by POST /api/refresh
func (s *HTTPServerAdapter) SetRefresher(r Refresher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresher = r
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/forecast", s.getForecast)
		api.GET("/view", s.getView)
		api.POST("/refresh", s.refresh)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

// Start serves HTTP until Shutdown is called
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.server = srv
	s.mu.Unlock()

	slog.Info("Starting HTTP server", "port", s.config.Port)
	if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return errors.NewNetworkError("HTTP server failed", err)
	}
	return nil
}

// Shutdown gracefully stops a started server
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	srv := s.server
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
