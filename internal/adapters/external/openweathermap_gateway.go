package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"localweather.app/internal/ports"
	"localweather.app/pkg/errors"
)

const defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherMapGateway implements WeatherGateway port for the OpenWeatherMap API
type OpenWeatherMapGateway struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
	now     func() time.Time
}

// OpenWeatherMapGatewayParams holds parameters for creating the OpenWeatherMap gateway.
// APIKey is used only when a query carries none.
type OpenWeatherMapGatewayParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
	Client  HTTPClient
}

type currentWeatherPayload struct {
	Name    string `json:"name"`
	Dt      int64  `json:"dt"`
	Weather []struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type dailyForecastPayload struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Temp struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"temp"`
		Weather []struct {
			ID          int    `json:"id"`
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// NewOpenWeatherMapGateway creates a new OpenWeatherMap gateway
func NewOpenWeatherMapGateway(params OpenWeatherMapGatewayParams) *OpenWeatherMapGateway {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapGateway{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
		now:     time.Now,
	}
}

// FetchCurrentWeather retrieves the current conditions at the query coordinates
func (g *OpenWeatherMapGateway) FetchCurrentWeather(ctx context.Context, query ports.WeatherQuery) (*ports.CurrentWeatherData, error) {
	body, err := g.get(ctx, "/weather", g.values(query))
	if err != nil {
		return nil, err
	}

	data, err := decodeCurrentWeather(body, query)
	if err != nil {
		return nil, err
	}
	if data.Timestamp.IsZero() {
		data.Timestamp = g.now()
	}
	return data, nil
}

// FetchForecast retrieves the daily forecast at the query coordinates
func (g *OpenWeatherMapGateway) FetchForecast(ctx context.Context, query ports.WeatherQuery) ([]ports.ForecastDayData, error) {
	values := g.values(query)
	if query.Days > 0 {
		values.Set("cnt", strconv.Itoa(query.Days))
	}

	body, err := g.get(ctx, "/forecast/daily", values)
	if err != nil {
		return nil, err
	}

	return decodeDailyForecast(body)
}

func (g *OpenWeatherMapGateway) values(query ports.WeatherQuery) url.Values {
	apiKey := query.APIKey
	if apiKey == "" {
		apiKey = g.apiKey
	}

	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(query.Coordinates.Latitude, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(query.Coordinates.Longitude, 'f', -1, 64))
	values.Set("appid", apiKey)
	values.Set("units", unitsParam(query.Units))
	return values
}

func (g *OpenWeatherMapGateway) get(ctx context.Context, path string, values url.Values) ([]byte, error) {
	endpoint := fmt.Sprintf("%s%s?%s", g.baseURL, path, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewUnknownError("failed to build OpenWeatherMap request", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError("failed to call OpenWeatherMap", err)
	}
	defer closeBody(resp.Body, g.logger, "openweathermap")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.NewServiceUnavailableError(fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetworkError("failed to read OpenWeatherMap response", err)
	}
	return body, nil
}

func unitsParam(units ports.Units) string {
	if units == ports.UnitsImperial {
		return "imperial"
	}
	return "metric"
}

func decodeCurrentWeather(body []byte, query ports.WeatherQuery) (*ports.CurrentWeatherData, error) {
	var payload currentWeatherPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.NewUnknownError("failed to decode OpenWeatherMap current weather", err)
	}
	if len(payload.Weather) == 0 {
		return nil, errors.NewUnknownError("OpenWeatherMap current weather has no conditions", nil)
	}

	location := payload.Name
	if location == "" {
		location = query.Coordinates.String()
	}

	var timestamp time.Time
	if payload.Dt > 0 {
		timestamp = time.Unix(payload.Dt, 0).UTC()
	}

	return &ports.CurrentWeatherData{
		Location:      location,
		Temperature:   payload.Main.Temp,
		ConditionCode: payload.Weather[0].ID,
		Description:   payload.Weather[0].Description,
		Humidity:      payload.Main.Humidity,
		WindSpeed:     payload.Wind.Speed,
		Units:         query.Units,
		Timestamp:     timestamp,
	}, nil
}

func decodeDailyForecast(body []byte) ([]ports.ForecastDayData, error) {
	var payload dailyForecastPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.NewUnknownError("failed to decode OpenWeatherMap forecast", err)
	}

	days := make([]ports.ForecastDayData, 0, len(payload.List))
	for _, item := range payload.List {
		day := ports.ForecastDayData{
			Date:    time.Unix(item.Dt, 0).UTC(),
			MinTemp: item.Temp.Min,
			MaxTemp: item.Temp.Max,
		}
		if len(item.Weather) > 0 {
			day.ConditionCode = item.Weather[0].ID
			day.Description = item.Weather[0].Description
		}
		days = append(days, day)
	}
	return days, nil
}
