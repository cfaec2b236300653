package ports

import (
	"context"
	"time"
)

// PermissionDecision is the answer of the platform permission system
type PermissionDecision int

const (
	PermissionDenied PermissionDecision = iota
	PermissionGranted
	PermissionRationaleNeeded
)

func (d PermissionDecision) String() string {
	switch d {
	case PermissionGranted:
		return "granted"
	case PermissionRationaleNeeded:
		return "rationale_needed"
	default:
		return "denied"
	}
}

// PermissionPrompter defines the contract for asking the user for location access
type PermissionPrompter interface {
	RequestLocationPermission(ctx context.Context) (PermissionDecision, error)
	// ShowRationale blocks until the user acknowledges the explanation.
	ShowRationale(ctx context.Context) error
}

// Notice is a transient message shown to the user
type Notice int

const (
	NoticeGenericError Notice = iota
	NoticeWeatherUnavailable
	NoticePermissionRequired
)

// Message returns the user facing text of the notice
func (n Notice) Message() string {
	switch n {
	case NoticeWeatherUnavailable:
		return "Weather data is unavailable right now. Check your connection and try again."
	case NoticePermissionRequired:
		return "Location permission is required to show local weather."
	default:
		return "Something went wrong. Please try again."
	}
}

// WeatherView is the rendered form of the current conditions
type WeatherView struct {
	Location      string    `json:"location"`
	Temperature   float64   `json:"temperature"`
	UnitSymbol    string    `json:"unit"`
	Condition     string    `json:"condition"`
	ConditionCode int       `json:"condition_code"`
	Icon          string    `json:"icon"`
	Humidity      float64   `json:"humidity"`
	WindSpeed     float64   `json:"wind_speed"`
	LastUpdate    string    `json:"last_update"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ForecastItemView is the rendered form of one forecast day
type ForecastItemView struct {
	Date       time.Time `json:"date"`
	Day        string    `json:"day"`
	MinTemp    float64   `json:"min_temp"`
	MaxTemp    float64   `json:"max_temp"`
	UnitSymbol string    `json:"unit"`
	Condition  string    `json:"condition"`
	Icon       string    `json:"icon"`
}

// Renderer defines the contract for a display sink of the presentation surface
type Renderer interface {
	ShowSplash(appName string)
	ShowLoading(loading bool)
	ShowWeather(view WeatherView)
	ShowForecast(items []ForecastItemView)
	ShowNotice(notice Notice)
}
