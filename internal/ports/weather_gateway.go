package ports

import (
	"context"
	"time"
)

// WeatherQuery holds the parameters of a single upstream weather request
type WeatherQuery struct {
	Coordinates Coordinates
	APIKey      string
	Units       Units
	Days        int
}

// CurrentWeatherData represents the decoded current conditions
type CurrentWeatherData struct {
	Location      string
	Temperature   float64
	ConditionCode int
	Description   string
	Humidity      float64
	WindSpeed     float64
	Units         Units
	Timestamp     time.Time
}

// ForecastDayData represents one decoded day of the daily forecast
type ForecastDayData struct {
	Date          time.Time
	MinTemp       float64
	MaxTemp       float64
	ConditionCode int
	Description   string
}

// WeatherGateway defines the contract for the remote weather API
type WeatherGateway interface {
	FetchCurrentWeather(ctx context.Context, query WeatherQuery) (*CurrentWeatherData, error)
	FetchForecast(ctx context.Context, query WeatherQuery) ([]ForecastDayData, error)
}
