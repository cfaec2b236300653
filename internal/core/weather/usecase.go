package weather

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"localweather.app/internal/ports"
	"localweather.app/pkg/errors"
)

const defaultForecastDays = 7

// ViewState orchestrates location, settings and the weather gateway into two
// independently observable streams: current weather and the daily forecast.
type ViewState struct {
	location ports.LocationProvider
	gateway  ports.WeatherGateway
	config   ports.ConfigurationStore
	logger   ports.Logger
	metrics  ports.FetchMetrics

	apiKey       string
	forecastDays int

	weather  stream[Weather]
	forecast stream[[]ForecastEntry]

	wg sync.WaitGroup
}

type UseCaseDependencies struct {
	LocationProvider   ports.LocationProvider
	WeatherGateway     ports.WeatherGateway
	ConfigurationStore ports.ConfigurationStore
	Logger             ports.Logger
	Metrics            ports.FetchMetrics
	APIKey             string
	ForecastDays       int
}

func NewUseCase(deps UseCaseDependencies) (*ViewState, error) {
	if deps.LocationProvider == nil {
		return nil, errors.NewValidationError("location provider is required")
	}
	if deps.WeatherGateway == nil {
		return nil, errors.NewValidationError("weather gateway is required")
	}
	if deps.ConfigurationStore == nil {
		return nil, errors.NewValidationError("configuration store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.ForecastDays < 0 {
		return nil, errors.NewValidationError("forecast days cannot be negative")
	}

	metrics := deps.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}
	days := deps.ForecastDays
	if days == 0 {
		days = defaultForecastDays
	}

	vs := &ViewState{
		location:     deps.LocationProvider,
		gateway:      deps.WeatherGateway,
		config:       deps.ConfigurationStore,
		logger:       deps.Logger,
		metrics:      metrics,
		apiKey:       deps.APIKey,
		forecastDays: days,
	}
	vs.forecast.clone = cloneEntries
	return vs, nil
}

func cloneEntries(entries []ForecastEntry) []ForecastEntry {
	if entries == nil {
		return nil
	}
	return append(make([]ForecastEntry, 0, len(entries)), entries...)
}

// SubscribeWeather attaches the single observer of the weather stream and returns its detach func
func (vs *ViewState) SubscribeWeather(observer Observer[Weather]) func() {
	return vs.weather.subscribe(observer)
}

// SubscribeForecast attaches the single observer of the forecast stream and returns its detach func
func (vs *ViewState) SubscribeForecast(observer Observer[[]ForecastEntry]) func() {
	return vs.forecast.subscribe(observer)
}

// WeatherState returns the latest state of the weather stream
func (vs *ViewState) WeatherState() State[Weather] {
	return vs.weather.snapshot()
}

// ForecastState returns the latest state of the forecast stream
func (vs *ViewState) ForecastState() State[[]ForecastEntry] {
	return vs.forecast.snapshot()
}

// GetConfig returns the current user configuration
func (vs *ViewState) GetConfig(ctx context.Context) ports.Configuration {
	return vs.config.GetConfiguration(ctx)
}

// FetchCurrentWeather starts a weather fetch cycle without blocking the caller
func (vs *ViewState) FetchCurrentWeather(ctx context.Context) {
	cycleID := uuid.NewString()
	seq := vs.weather.begin(cycleID)

	vs.wg.Add(1)
	go func() {
		defer vs.wg.Done()
		started := time.Now()
		result := vs.loadWeather(ctx, cycleID)
		vs.record(ports.FetchKindWeather, result.Failure(), time.Since(started))
		if !vs.weather.finish(seq, cycleID, result) {
			vs.logger.Debug("Dropped superseded weather result", ports.F("cycle", cycleID))
		}
	}()
}

// FetchOneWeekForecast starts a forecast fetch cycle without blocking the caller
func (vs *ViewState) FetchOneWeekForecast(ctx context.Context) {
	cycleID := uuid.NewString()
	seq := vs.forecast.begin(cycleID)

	vs.wg.Add(1)
	go func() {
		defer vs.wg.Done()
		started := time.Now()
		result := vs.loadForecast(ctx, cycleID)
		vs.record(ports.FetchKindForecast, result.Failure(), time.Since(started))
		if !vs.forecast.finish(seq, cycleID, result) {
			vs.logger.Debug("Dropped superseded forecast result", ports.F("cycle", cycleID))
		}
	}()
}

// Wait blocks until every started fetch cycle has published or been dropped
func (vs *ViewState) Wait() {
	vs.wg.Wait()
}

func (vs *ViewState) loadWeather(ctx context.Context, cycleID string) Result[Weather] {
	query, failure := vs.prepareQuery(ctx, cycleID)
	if failure != nil {
		return Failed[Weather](failure.Kind, failure.Cause)
	}

	data, err := vs.gateway.FetchCurrentWeather(ctx, query)
	if err != nil {
		vs.logger.Warn("Weather fetch failed", ports.F("cycle", cycleID), ports.F("error", err))
		return FailedWith[Weather](err)
	}
	if data == nil {
		return Failed[Weather](ErrorKindUnknown, errors.NewUnknownError("gateway returned no weather data", nil))
	}

	w := weatherFromData(data, query.Units)
	if err := w.IsValid(); err != nil {
		vs.logger.Warn("Gateway returned invalid weather", ports.F("cycle", cycleID), ports.F("error", err))
		return Failed[Weather](ErrorKindUnknown, errors.NewUnknownError("gateway returned invalid weather data", err))
	}
	vs.logger.Debug("Weather fetched",
		ports.F("cycle", cycleID),
		ports.F("temperature", w.Temperature),
		ports.F("units", w.Units.String()))
	return Success(w)
}

func (vs *ViewState) loadForecast(ctx context.Context, cycleID string) Result[[]ForecastEntry] {
	query, failure := vs.prepareQuery(ctx, cycleID)
	if failure != nil {
		return Failed[[]ForecastEntry](failure.Kind, failure.Cause)
	}

	days, err := vs.gateway.FetchForecast(ctx, query)
	if err != nil {
		vs.logger.Warn("Forecast fetch failed", ports.F("cycle", cycleID), ports.F("error", err))
		return FailedWith[[]ForecastEntry](err)
	}

	entries := forecastFromData(days, query.Units)
	for i := range entries {
		if err := entries[i].IsValid(); err != nil {
			vs.logger.Warn("Gateway returned invalid forecast", ports.F("cycle", cycleID), ports.F("error", err))
			return Failed[[]ForecastEntry](ErrorKindUnknown, errors.NewUnknownError("gateway returned invalid forecast data", err))
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	if len(entries) > query.Days {
		entries = entries[:query.Days]
	}

	vs.logger.Debug("Forecast fetched", ports.F("cycle", cycleID), ports.F("days", len(entries)))
	return Success(entries)
}

// prepareQuery resolves the position and units for one cycle. A location
// failure ends the cycle before the gateway is contacted.
func (vs *ViewState) prepareQuery(ctx context.Context, cycleID string) (ports.WeatherQuery, *Failure) {
	coords, err := vs.location.GetCurrentLocation(ctx)
	if err != nil {
		vs.logger.Warn("Location unavailable", ports.F("cycle", cycleID), ports.F("error", err))
		kind := KindOf(err)
		if kind == ErrorKindUnknown {
			kind = ErrorKindLocationUnavailable
		}
		return ports.WeatherQuery{}, &Failure{Kind: kind, Cause: err}
	}

	return ports.WeatherQuery{
		Coordinates: coords,
		APIKey:      vs.apiKey,
		Units:       vs.config.GetUnits(ctx),
		Days:        vs.forecastDays,
	}, nil
}

func (vs *ViewState) record(kind string, failure *Failure, elapsed time.Duration) {
	outcome := ports.FetchOutcomeSuccess
	if failure != nil {
		outcome = failure.Kind.String()
	}
	vs.metrics.RecordFetch(kind, outcome, elapsed)
}

type noopMetrics struct{}

func (noopMetrics) RecordFetch(string, string, time.Duration)          {}
func (noopMetrics) RecordPermissionDecision(ports.PermissionDecision) {}
