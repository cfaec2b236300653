package presentation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"localweather.app/internal/core/weather"
	"localweather.app/internal/ports"
	"localweather.app/pkg/errors"
)

// WeatherViewState is the part of the view state the surface binds to
type WeatherViewState interface {
	SubscribeWeather(observer weather.Observer[weather.Weather]) func()
	SubscribeForecast(observer weather.Observer[[]weather.ForecastEntry]) func()
	FetchCurrentWeather(ctx context.Context)
	FetchOneWeekForecast(ctx context.Context)
	GetConfig(ctx context.Context) ports.Configuration
}

// Surface drives the permission flow and renders view state changes
type Surface struct {
	viewState WeatherViewState
	prompter  ports.PermissionPrompter
	renderer  ports.Renderer
	logger    ports.Logger
	metrics   ports.FetchMetrics
	clock     clockwork.Clock

	maxPermissionAttempts int
	coerceForecastErrors  bool

	mu           sync.Mutex
	created      bool
	granted      bool
	destroyed    bool
	config       ports.Configuration
	forecast     []ports.ForecastItemView
	unsubscribes []func()
}

type SurfaceDependencies struct {
	ViewState          WeatherViewState
	PermissionPrompter ports.PermissionPrompter
	Renderer           ports.Renderer
	Logger             ports.Logger
	Metrics            ports.FetchMetrics
	Clock              clockwork.Clock
	// MaxPermissionAttempts bounds the deny/rationale loop. Zero means unbounded.
	MaxPermissionAttempts int
	// CoerceForecastErrors reports every forecast failure as a generic error.
	CoerceForecastErrors bool
}

func NewSurface(deps SurfaceDependencies) (*Surface, error) {
	if deps.ViewState == nil {
		return nil, errors.NewValidationError("view state is required")
	}
	if deps.PermissionPrompter == nil {
		return nil, errors.NewValidationError("permission prompter is required")
	}
	if deps.Renderer == nil {
		return nil, errors.NewValidationError("renderer is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.MaxPermissionAttempts < 0 {
		return nil, errors.NewValidationError("max permission attempts cannot be negative")
	}

	clock := deps.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	metrics := deps.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Surface{
		viewState:             deps.ViewState,
		prompter:              deps.PermissionPrompter,
		renderer:              deps.Renderer,
		logger:                deps.Logger,
		metrics:               metrics,
		clock:                 clock,
		maxPermissionAttempts: deps.MaxPermissionAttempts,
		coerceForecastErrors:  deps.CoerceForecastErrors,
	}, nil
}

// Create binds the surface to the view state and asks for location permission.
// It returns once permission is granted and both fetches have been started.
func (s *Surface) Create(ctx context.Context) error {
	if err := s.bind(ctx); err != nil {
		return err
	}
	return s.requestLocationPermission(ctx)
}

// Refresh re-reads the configuration and starts both fetches again.
// It only runs once location permission has been granted.
func (s *Surface) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if !s.created || s.destroyed {
		s.mu.Unlock()
		return errors.NewValidationError("surface is not active")
	}
	if !s.granted {
		s.mu.Unlock()
		return errors.NewPermissionDeniedError("location permission has not been granted")
	}
	s.mu.Unlock()

	cfg := s.viewState.GetConfig(ctx)
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()

	s.logger.Info("Refreshing weather", ports.F("units", cfg.Units.String()))
	s.startFetches(ctx)
	return nil
}

// Destroy detaches the surface from the view state. Results arriving later are ignored.
func (s *Surface) Destroy() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.destroyed = true
	unsubscribes := s.unsubscribes
	s.unsubscribes = nil
	s.mu.Unlock()

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}
	s.logger.Debug("Presentation surface destroyed")
}

func (s *Surface) bind(ctx context.Context) error {
	s.mu.Lock()
	if s.created {
		s.mu.Unlock()
		return errors.NewValidationError("surface already created")
	}
	s.created = true
	s.mu.Unlock()

	cfg := s.viewState.GetConfig(ctx)
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()

	unsubscribeWeather := s.viewState.SubscribeWeather(s.onWeather)
	unsubscribeForecast := s.viewState.SubscribeForecast(s.onForecast)

	s.mu.Lock()
	s.unsubscribes = append(s.unsubscribes, unsubscribeWeather, unsubscribeForecast)
	s.mu.Unlock()

	s.logger.Debug("Presentation surface bound",
		ports.F("units", cfg.Units.String()),
		ports.F("network", cfg.NetworkStatus.String()))
	return nil
}

func (s *Surface) requestLocationPermission(ctx context.Context) error {
	for attempt := 1; ; attempt++ {
		if s.isDestroyed() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		decision, err := s.prompter.RequestLocationPermission(ctx)
		if err != nil {
			return fmt.Errorf("request location permission: %w", err)
		}
		s.metrics.RecordPermissionDecision(decision)

		if decision == ports.PermissionGranted {
			s.logger.Info("Location permission granted", ports.F("attempt", attempt))
			s.mu.Lock()
			s.granted = true
			s.mu.Unlock()
			s.startFetches(ctx)
			return nil
		}

		s.logger.Info("Location permission not granted",
			ports.F("decision", decision.String()),
			ports.F("attempt", attempt))

		if s.maxPermissionAttempts > 0 && attempt >= s.maxPermissionAttempts {
			s.renderer.ShowNotice(ports.NoticePermissionRequired)
			return errors.NewPermissionDeniedError(
				fmt.Sprintf("location permission not granted after %d attempts", attempt))
		}

		if err := s.prompter.ShowRationale(ctx); err != nil {
			return fmt.Errorf("show permission rationale: %w", err)
		}
	}
}

func (s *Surface) startFetches(ctx context.Context) {
	s.renderer.ShowLoading(true)
	s.viewState.FetchCurrentWeather(ctx)
	s.viewState.FetchOneWeekForecast(ctx)
}

func (s *Surface) onWeather(state weather.State[weather.Weather]) {
	if !state.Phase.IsTerminal() || s.isDestroyed() {
		return
	}
	s.renderer.ShowLoading(false)

	if failure := state.Result.Failure(); failure != nil {
		s.showFailure("weather", state.CycleID, failure.Kind, failure.Cause)
		return
	}

	w, _ := state.Result.Value()
	s.renderer.ShowWeather(s.weatherView(w))
}

func (s *Surface) onForecast(state weather.State[[]weather.ForecastEntry]) {
	if !state.Phase.IsTerminal() || s.isDestroyed() {
		return
	}
	s.renderer.ShowLoading(false)

	if failure := state.Result.Failure(); failure != nil {
		kind := failure.Kind
		if s.coerceForecastErrors {
			kind = weather.ErrorKindUnknown
		}
		s.showFailure("forecast", state.CycleID, kind, failure.Cause)
		return
	}

	entries, _ := state.Result.Value()

	s.mu.Lock()
	items := make([]ports.ForecastItemView, 0, len(entries))
	for _, e := range entries {
		items = append(items, forecastItemView(e))
	}
	s.forecast = items
	rendered := append([]ports.ForecastItemView(nil), s.forecast...)
	s.mu.Unlock()

	s.renderer.ShowForecast(rendered)
}

func (s *Surface) showFailure(stream, cycleID string, kind weather.ErrorKind, cause error) {
	s.logger.Warn("Fetch failed",
		ports.F("stream", stream),
		ports.F("cycle", cycleID),
		ports.F("kind", kind.String()),
		ports.F("error", cause))
	s.renderer.ShowNotice(NoticeFor(kind))
}

func (s *Surface) weatherView(w weather.Weather) ports.WeatherView {
	return ports.WeatherView{
		Location:      w.Location,
		Temperature:   w.Temperature,
		UnitSymbol:    w.UnitSymbol(),
		Condition:     w.Condition,
		ConditionCode: w.ConditionCode,
		Icon:          ConditionIcon(w.ConditionCode),
		Humidity:      w.Humidity,
		WindSpeed:     w.WindSpeed,
		LastUpdate:    LastUpdatePhrase(w.LastUpdate, s.clock.Now()),
		UpdatedAt:     w.LastUpdate,
	}
}

func forecastItemView(e weather.ForecastEntry) ports.ForecastItemView {
	return ports.ForecastItemView{
		Date:       e.Date,
		Day:        e.Date.Format("Mon 02 Jan"),
		MinTemp:    e.MinTemp,
		MaxTemp:    e.MaxTemp,
		UnitSymbol: e.UnitSymbol(),
		Condition:  e.Condition,
		Icon:       ConditionIcon(e.ConditionCode),
	}
}

func (s *Surface) isDestroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

// NoticeFor maps a failure kind to the notice shown to the user
func NoticeFor(kind weather.ErrorKind) ports.Notice {
	switch kind {
	case weather.ErrorKindNetwork, weather.ErrorKindServiceUnavailable:
		return ports.NoticeWeatherUnavailable
	default:
		return ports.NoticeGenericError
	}
}

type noopMetrics struct{}

func (noopMetrics) RecordFetch(string, string, time.Duration)          {}
func (noopMetrics) RecordPermissionDecision(ports.PermissionDecision) {}
