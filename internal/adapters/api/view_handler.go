package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"localweather.app/internal/ports"
	"localweather.app/pkg/errors"
)

// RefreshResponse acknowledges a started refresh
type RefreshResponse struct {
	Status string `json:"status"`
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	view := s.snapshot()
	if view.Weather == nil {
		s.handleError(c, errors.NewNotFoundError("weather has not been loaded yet"))
		return
	}
	c.JSON(http.StatusOK, view.Weather)
}

// getForecast handles GET /api/forecast requests
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	view := s.snapshot()
	if view.Forecast == nil {
		s.handleError(c, errors.NewNotFoundError("forecast has not been loaded yet"))
		return
	}
	c.JSON(http.StatusOK, view.Forecast)
}

// getView handles GET /api/view requests
func (s *HTTPServerAdapter) getView(c *gin.Context) {
	c.JSON(http.StatusOK, s.snapshot())
}

// refresh handles POST /api/refresh requests
func (s *HTTPServerAdapter) refresh(c *gin.Context) {
	s.mu.RLock()
	refresher := s.refresher
	s.mu.RUnlock()

	if refresher == nil {
		s.handleError(c, errors.NewServiceUnavailableError("weather view is not ready", nil))
		return
	}

	// fetches outlive the request
	if err := refresher.Refresh(context.WithoutCancel(c.Request.Context())); err != nil {
		slog.Error("Refresh failed", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, RefreshResponse{Status: "refreshing"})
}

// getHealth handles GET /health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status := ports.HealthHealthy
	for _, result := range results {
		switch result.Status {
		case ports.HealthUnhealthy:
			status = ports.HealthUnhealthy
		case ports.HealthDegraded:
			if status == ports.HealthHealthy {
				status = ports.HealthDegraded
			}
		}
	}

	code := http.StatusOK
	if status == ports.HealthUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "components": results})
}
