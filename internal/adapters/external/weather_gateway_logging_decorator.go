package external

import (
	"context"
	"time"

	"localweather.app/internal/ports"
)

// WeatherGatewayLoggingDecorator decorates a weather gateway with structured logging
type WeatherGatewayLoggingDecorator struct {
	gateway ports.WeatherGateway
	logger  ports.Logger
}

// NewWeatherGatewayLoggingDecorator creates a new logging decorator for a weather gateway
func NewWeatherGatewayLoggingDecorator(gateway ports.WeatherGateway, logger ports.Logger) *WeatherGatewayLoggingDecorator {
	return &WeatherGatewayLoggingDecorator{
		gateway: gateway,
		logger:  logger,
	}
}

// FetchCurrentWeather wraps the gateway call with structured logging
func (d *WeatherGatewayLoggingDecorator) FetchCurrentWeather(ctx context.Context, query ports.WeatherQuery) (*ports.CurrentWeatherData, error) {
	d.logger.Info("Weather API request started",
		ports.F("endpoint", ports.FetchKindWeather),
		ports.F("coordinates", query.Coordinates.String()),
		ports.F("event", "request"))

	startTime := time.Now()
	data, err := d.gateway.FetchCurrentWeather(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("endpoint", ports.FetchKindWeather),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("endpoint", ports.FetchKindWeather),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("location", data.Location),
		ports.F("temperature", data.Temperature),
		ports.F("description", data.Description))

	return data, nil
}

// FetchForecast wraps the gateway call with structured logging
func (d *WeatherGatewayLoggingDecorator) FetchForecast(ctx context.Context, query ports.WeatherQuery) ([]ports.ForecastDayData, error) {
	d.logger.Info("Weather API request started",
		ports.F("endpoint", ports.FetchKindForecast),
		ports.F("coordinates", query.Coordinates.String()),
		ports.F("event", "request"))

	startTime := time.Now()
	days, err := d.gateway.FetchForecast(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("endpoint", ports.FetchKindForecast),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("endpoint", ports.FetchKindForecast),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("days", len(days)))

	return days, nil
}
