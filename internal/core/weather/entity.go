package weather

import (
	"fmt"
	"strings"
	"time"

	"localweather.app/internal/ports"
)

const absoluteZeroCelsius = -273.15

// Weather represents the current conditions at the user's position
type Weather struct {
	Location      string
	Temperature   float64
	ConditionCode int
	Condition     string
	Humidity      float64
	WindSpeed     float64
	Units         ports.Units
	LastUpdate    time.Time
}

// ForecastEntry represents one day of the multi-day forecast
type ForecastEntry struct {
	Date          time.Time
	MinTemp       float64
	MaxTemp       float64
	ConditionCode int
	Condition     string
	Units         ports.Units
}

// IsValid validates weather data
func (w *Weather) IsValid() error {
	if strings.TrimSpace(w.Condition) == "" {
		return fmt.Errorf("condition cannot be empty")
	}
	if w.TemperatureInCelsius() < absoluteZeroCelsius {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if w.Humidity < 0 || w.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	if w.WindSpeed < 0 {
		return fmt.Errorf("wind speed cannot be negative")
	}
	return nil
}

// UnitSymbol returns the temperature symbol matching the units the snapshot was fetched in
func (w *Weather) UnitSymbol() string {
	return w.Units.Symbol()
}

// TemperatureInCelsius normalizes the reading regardless of fetch units
func (w *Weather) TemperatureInCelsius() float64 {
	if w.Units == ports.UnitsImperial {
		return (w.Temperature - 32) * 5 / 9
	}
	return w.Temperature
}

// String returns a string representation of the weather
func (w *Weather) String() string {
	return fmt.Sprintf("%s: %.1f°%s, %.0f%% humidity, %s",
		w.Location, w.Temperature, w.UnitSymbol(), w.Humidity, w.Condition)
}

// UnitSymbol returns the temperature symbol matching the units the entry was fetched in
func (f *ForecastEntry) UnitSymbol() string {
	return f.Units.Symbol()
}

// IsValid validates a forecast entry
func (f *ForecastEntry) IsValid() error {
	if f.Date.IsZero() {
		return fmt.Errorf("forecast date cannot be empty")
	}
	if f.MinTemp > f.MaxTemp {
		return fmt.Errorf("minimum temperature cannot exceed maximum")
	}
	return nil
}

func weatherFromData(data *ports.CurrentWeatherData, units ports.Units) Weather {
	return Weather{
		Location:      data.Location,
		Temperature:   data.Temperature,
		ConditionCode: data.ConditionCode,
		Condition:     data.Description,
		Humidity:      data.Humidity,
		WindSpeed:     data.WindSpeed,
		Units:         units,
		LastUpdate:    data.Timestamp,
	}
}

func forecastFromData(days []ports.ForecastDayData, units ports.Units) []ForecastEntry {
	entries := make([]ForecastEntry, 0, len(days))
	for _, d := range days {
		entries = append(entries, ForecastEntry{
			Date:          d.Date,
			MinTemp:       d.MinTemp,
			MaxTemp:       d.MaxTemp,
			ConditionCode: d.ConditionCode,
			Condition:     d.Description,
			Units:         units,
		})
	}
	return entries
}
