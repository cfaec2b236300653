package weather

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"localweather.app/internal/mocks"
	"localweather.app/internal/ports"
	"localweather.app/pkg/errors"
)

var testCoords = ports.Coordinates{Latitude: 50.45, Longitude: 30.52}

type viewStateMocks struct {
	location *mocks.LocationProvider
	gateway  *mocks.WeatherGateway
	config   *mocks.ConfigurationStore
	logger   *mocks.Logger
}

func allowLogging(logger *mocks.Logger) {
	for n := 0; n <= 4; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		logger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		logger.EXPECT().Info(mock.Anything, fields...).Maybe()
		logger.EXPECT().Warn(mock.Anything, fields...).Maybe()
		logger.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
}

func newTestViewState(t *testing.T) (*ViewState, viewStateMocks) {
	m := viewStateMocks{
		location: mocks.NewLocationProvider(t),
		gateway:  mocks.NewWeatherGateway(t),
		config:   mocks.NewConfigurationStore(t),
		logger:   mocks.NewLogger(t),
	}
	allowLogging(m.logger)

	vs, err := NewUseCase(UseCaseDependencies{
		LocationProvider:   m.location,
		WeatherGateway:     m.gateway,
		ConfigurationStore: m.config,
		Logger:             m.logger,
		APIKey:             "test-key",
		ForecastDays:       3,
	})
	require.NoError(t, err)
	return vs, m
}

type recorder[T any] struct {
	mu     sync.Mutex
	states []State[T]
}

func (r *recorder[T]) observe(s State[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder[T]) all() []State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]State[T](nil), r.states...)
}

func (r *recorder[T]) terminal() []State[T] {
	var out []State[T]
	for _, s := range r.all() {
		if s.Phase.IsTerminal() {
			out = append(out, s)
		}
	}
	return out
}

func TestNewUseCase_Validation(t *testing.T) {
	location := mocks.NewLocationProvider(t)
	gateway := mocks.NewWeatherGateway(t)
	config := mocks.NewConfigurationStore(t)
	logger := mocks.NewLogger(t)

	tests := []struct {
		name   string
		deps   UseCaseDependencies
		errMsg string
	}{
		{
			name:   "MissingLocation",
			deps:   UseCaseDependencies{WeatherGateway: gateway, ConfigurationStore: config, Logger: logger},
			errMsg: "location provider is required",
		},
		{
			name:   "MissingGateway",
			deps:   UseCaseDependencies{LocationProvider: location, ConfigurationStore: config, Logger: logger},
			errMsg: "weather gateway is required",
		},
		{
			name:   "MissingConfig",
			deps:   UseCaseDependencies{LocationProvider: location, WeatherGateway: gateway, Logger: logger},
			errMsg: "configuration store is required",
		},
		{
			name:   "MissingLogger",
			deps:   UseCaseDependencies{LocationProvider: location, WeatherGateway: gateway, ConfigurationStore: config},
			errMsg: "logger is required",
		},
		{
			name: "NegativeDays",
			deps: UseCaseDependencies{
				LocationProvider: location, WeatherGateway: gateway, ConfigurationStore: config, Logger: logger,
				ForecastDays: -1,
			},
			errMsg: "forecast days cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs, err := NewUseCase(tt.deps)
			assert.Nil(t, vs)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestViewState_FetchCurrentWeather_Success(t *testing.T) {
	vs, m := newTestViewState(t)
	observed := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	data := &ports.CurrentWeatherData{
		Location:      "Kyiv",
		Temperature:   64.4,
		ConditionCode: 801,
		Description:   "few clouds",
		Humidity:      48,
		WindSpeed:     7.5,
		Units:         ports.UnitsImperial,
		Timestamp:     observed,
	}

	m.location.EXPECT().GetCurrentLocation(mock.Anything).Return(testCoords, nil).Once()
	m.config.EXPECT().GetUnits(mock.Anything).Return(ports.UnitsImperial).Once()
	m.gateway.EXPECT().FetchCurrentWeather(mock.Anything, ports.WeatherQuery{
		Coordinates: testCoords,
		APIKey:      "test-key",
		Units:       ports.UnitsImperial,
		Days:        3,
	}).Return(data, nil).Once()

	rec := &recorder[Weather]{}
	vs.SubscribeWeather(rec.observe)

	vs.FetchCurrentWeather(context.Background())
	vs.Wait()

	states := rec.all()
	require.Len(t, states, 2)
	assert.Equal(t, PhaseLoading, states[0].Phase)
	assert.Equal(t, PhaseSucceeded, states[1].Phase)
	assert.Equal(t, states[0].CycleID, states[1].CycleID)
	assert.NotEmpty(t, states[1].CycleID)

	w, ok := states[1].Result.Value()
	require.True(t, ok)
	assert.Equal(t, Weather{
		Location:      "Kyiv",
		Temperature:   64.4,
		ConditionCode: 801,
		Condition:     "few clouds",
		Humidity:      48,
		WindSpeed:     7.5,
		Units:         ports.UnitsImperial,
		LastUpdate:    observed,
	}, w)
}

func TestViewState_LocationFailureSkipsGateway(t *testing.T) {
	vs, m := newTestViewState(t)
	locErr := errors.NewLocationUnavailableError("no fix", nil)

	m.location.EXPECT().GetCurrentLocation(mock.Anything).Return(ports.Coordinates{}, locErr).Twice()

	weatherRec := &recorder[Weather]{}
	forecastRec := &recorder[[]ForecastEntry]{}
	vs.SubscribeWeather(weatherRec.observe)
	vs.SubscribeForecast(forecastRec.observe)

	vs.FetchCurrentWeather(context.Background())
	vs.FetchOneWeekForecast(context.Background())
	vs.Wait()

	m.gateway.AssertNotCalled(t, "FetchCurrentWeather", mock.Anything, mock.Anything)
	m.gateway.AssertNotCalled(t, "FetchForecast", mock.Anything, mock.Anything)

	weatherTerminal := weatherRec.terminal()
	require.Len(t, weatherTerminal, 1)
	assert.Equal(t, PhaseFailed, weatherTerminal[0].Phase)
	assert.Equal(t, ErrorKindLocationUnavailable, weatherTerminal[0].Result.Failure().Kind)
	assert.ErrorIs(t, weatherTerminal[0].Result.Failure(), locErr)

	forecastTerminal := forecastRec.terminal()
	require.Len(t, forecastTerminal, 1)
	assert.Equal(t, ErrorKindLocationUnavailable, forecastTerminal[0].Result.Failure().Kind)
}

func TestViewState_PlainLocationErrorIsLocationUnavailable(t *testing.T) {
	vs, m := newTestViewState(t)
	m.location.EXPECT().GetCurrentLocation(mock.Anything).Return(ports.Coordinates{}, assert.AnError).Once()

	vs.FetchCurrentWeather(context.Background())
	vs.Wait()

	state := vs.WeatherState()
	assert.Equal(t, PhaseFailed, state.Phase)
	assert.Equal(t, ErrorKindLocationUnavailable, state.Result.Failure().Kind)
}

func TestViewState_GatewayErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{name: "Network", err: errors.NewNetworkError("timeout", nil), expected: ErrorKindNetwork},
		{name: "ServiceUnavailable", err: errors.NewServiceUnavailableError("status 503", nil), expected: ErrorKindServiceUnavailable},
		{name: "Decode", err: errors.NewUnknownError("decode", assert.AnError), expected: ErrorKindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs, m := newTestViewState(t)
			m.location.EXPECT().GetCurrentLocation(mock.Anything).Return(testCoords, nil).Once()
			m.config.EXPECT().GetUnits(mock.Anything).Return(ports.UnitsMetric).Once()
			m.gateway.EXPECT().FetchForecast(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			vs.FetchOneWeekForecast(context.Background())
			vs.Wait()

			state := vs.ForecastState()
			assert.Equal(t, PhaseFailed, state.Phase)
			require.NotNil(t, state.Result.Failure())
			assert.Equal(t, tt.expected, state.Result.Failure().Kind)
			assert.ErrorIs(t, state.Result.Failure(), tt.err)
		})
	}
}

func TestViewState_ForecastSortedAndBounded(t *testing.T) {
	vs, m := newTestViewState(t)
	day := func(d int) time.Time { return time.Date(2024, 5, d, 12, 0, 0, 0, time.UTC) }

	m.location.EXPECT().GetCurrentLocation(mock.Anything).Return(testCoords, nil).Once()
	m.config.EXPECT().GetUnits(mock.Anything).Return(ports.UnitsMetric).Once()
	m.gateway.EXPECT().FetchForecast(mock.Anything, mock.Anything).Return([]ports.ForecastDayData{
		{Date: day(4), MinTemp: 4, MaxTemp: 14},
		{Date: day(2), MinTemp: 2, MaxTemp: 12},
		{Date: day(1), MinTemp: 1, MaxTemp: 11},
		{Date: day(3), MinTemp: 3, MaxTemp: 13},
	}, nil).Once()

	vs.FetchOneWeekForecast(context.Background())
	vs.Wait()

	entries, ok := vs.ForecastState().Result.Value()
	require.True(t, ok)
	require.Len(t, entries, 3)
	assert.Equal(t, day(1), entries[0].Date)
	assert.Equal(t, day(2), entries[1].Date)
	assert.Equal(t, day(3), entries[2].Date)
}

func TestViewState_SecondFetchSupersedesFirst(t *testing.T) {
	vs, m := newTestViewState(t)
	release := make(chan struct{})
	firstStarted := make(chan struct{})

	m.config.EXPECT().GetUnits(mock.Anything).Return(ports.UnitsMetric)
	m.location.EXPECT().GetCurrentLocation(mock.Anything).Return(testCoords, nil)
	m.gateway.EXPECT().FetchCurrentWeather(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, q ports.WeatherQuery) (*ports.CurrentWeatherData, error) {
			close(firstStarted)
			<-release
			return &ports.CurrentWeatherData{Temperature: 1, Description: "stale"}, nil
		}).Once()
	m.gateway.EXPECT().FetchCurrentWeather(mock.Anything, mock.Anything).
		Return(&ports.CurrentWeatherData{Temperature: 2, Description: "fresh"}, nil).Once()

	rec := &recorder[Weather]{}
	vs.SubscribeWeather(rec.observe)

	vs.FetchCurrentWeather(context.Background())
	<-firstStarted
	vs.FetchCurrentWeather(context.Background())

	require.Eventually(t, func() bool { return len(rec.terminal()) == 1 }, time.Second, 5*time.Millisecond)
	close(release)
	vs.Wait()

	terminal := rec.terminal()
	require.Len(t, terminal, 1)
	w, ok := terminal[0].Result.Value()
	require.True(t, ok)
	assert.Equal(t, "fresh", w.Condition)

	loading := 0
	for _, s := range rec.all() {
		if s.Phase == PhaseLoading {
			loading++
		}
	}
	assert.Equal(t, 2, loading)
	m.gateway.AssertNumberOfCalls(t, "FetchCurrentWeather", 2)
}

func TestViewState_SubscribeReplaysLatestOnly(t *testing.T) {
	vs, m := newTestViewState(t)
	m.location.EXPECT().GetCurrentLocation(mock.Anything).Return(testCoords, nil).Once()
	m.config.EXPECT().GetUnits(mock.Anything).Return(ports.UnitsMetric).Once()
	m.gateway.EXPECT().FetchCurrentWeather(mock.Anything, mock.Anything).
		Return(&ports.CurrentWeatherData{Temperature: 15, Description: "mist"}, nil).Once()

	vs.FetchCurrentWeather(context.Background())
	vs.Wait()

	rec := &recorder[Weather]{}
	vs.SubscribeWeather(rec.observe)

	states := rec.all()
	require.Len(t, states, 1)
	assert.Equal(t, PhaseSucceeded, states[0].Phase)
}

func TestViewState_SubscribeIdleDeliversNothing(t *testing.T) {
	vs, _ := newTestViewState(t)
	rec := &recorder[[]ForecastEntry]{}

	vs.SubscribeForecast(rec.observe)

	assert.Empty(t, rec.all())
	assert.Equal(t, PhaseIdle, vs.ForecastState().Phase)
}

func TestViewState_UnsubscribedObserverNotInvoked(t *testing.T) {
	vs, m := newTestViewState(t)
	release := make(chan struct{})

	m.location.EXPECT().GetCurrentLocation(mock.Anything).Return(testCoords, nil).Once()
	m.config.EXPECT().GetUnits(mock.Anything).Return(ports.UnitsMetric).Once()
	m.gateway.EXPECT().FetchCurrentWeather(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, q ports.WeatherQuery) (*ports.CurrentWeatherData, error) {
			<-release
			return &ports.CurrentWeatherData{Temperature: 10, Description: "rain"}, nil
		}).Once()

	rec := &recorder[Weather]{}
	unsubscribe := vs.SubscribeWeather(rec.observe)

	vs.FetchCurrentWeather(context.Background())
	unsubscribe()
	close(release)
	vs.Wait()

	states := rec.all()
	require.Len(t, states, 1)
	assert.Equal(t, PhaseLoading, states[0].Phase)
	assert.Equal(t, PhaseSucceeded, vs.WeatherState().Phase)
}

func TestViewState_ResubscribeReplacesObserver(t *testing.T) {
	vs, m := newTestViewState(t)
	m.location.EXPECT().GetCurrentLocation(mock.Anything).Return(testCoords, nil).Once()
	m.config.EXPECT().GetUnits(mock.Anything).Return(ports.UnitsMetric).Once()
	m.gateway.EXPECT().FetchCurrentWeather(mock.Anything, mock.Anything).
		Return(&ports.CurrentWeatherData{Temperature: 10, Description: "rain"}, nil).Once()

	first := &recorder[Weather]{}
	second := &recorder[Weather]{}
	unsubscribeFirst := vs.SubscribeWeather(first.observe)
	vs.SubscribeWeather(second.observe)

	vs.FetchCurrentWeather(context.Background())
	vs.Wait()
	unsubscribeFirst()

	assert.Empty(t, first.all())
	assert.Len(t, second.terminal(), 1)
}

func TestViewState_KindsAreIndependent(t *testing.T) {
	vs, m := newTestViewState(t)
	m.location.EXPECT().GetCurrentLocation(mock.Anything).Return(testCoords, nil).Twice()
	m.config.EXPECT().GetUnits(mock.Anything).Return(ports.UnitsMetric).Twice()
	m.gateway.EXPECT().FetchCurrentWeather(mock.Anything, mock.Anything).
		Return(nil, errors.NewNetworkError("offline", nil)).Once()
	m.gateway.EXPECT().FetchForecast(mock.Anything, mock.Anything).
		Return([]ports.ForecastDayData{{Date: time.Now(), MinTemp: 1, MaxTemp: 2}}, nil).Once()

	vs.FetchCurrentWeather(context.Background())
	vs.FetchOneWeekForecast(context.Background())
	vs.Wait()

	assert.Equal(t, PhaseFailed, vs.WeatherState().Phase)
	assert.Equal(t, PhaseSucceeded, vs.ForecastState().Phase)
}

func TestViewState_RecordsMetrics(t *testing.T) {
	location := mocks.NewLocationProvider(t)
	gateway := mocks.NewWeatherGateway(t)
	config := mocks.NewConfigurationStore(t)
	logger := mocks.NewLogger(t)
	metrics := mocks.NewFetchMetrics(t)
	allowLogging(logger)

	vs, err := NewUseCase(UseCaseDependencies{
		LocationProvider:   location,
		WeatherGateway:     gateway,
		ConfigurationStore: config,
		Logger:             logger,
		Metrics:            metrics,
	})
	require.NoError(t, err)

	location.EXPECT().GetCurrentLocation(mock.Anything).Return(ports.Coordinates{}, errors.NewLocationUnavailableError("off", nil)).Once()
	metrics.EXPECT().RecordFetch(ports.FetchKindWeather, "location_unavailable", mock.Anything).Once()

	vs.FetchCurrentWeather(context.Background())
	vs.Wait()
}

func TestViewState_GetConfig(t *testing.T) {
	vs, m := newTestViewState(t)
	expected := ports.Configuration{Units: ports.UnitsImperial, NetworkStatus: ports.NetworkConnected}
	m.config.EXPECT().GetConfiguration(mock.Anything).Return(expected).Once()

	assert.Equal(t, expected, vs.GetConfig(context.Background()))
}

func TestViewState_LoadingStateCarriesNoResult(t *testing.T) {
	vs, m := newTestViewState(t)
	release := make(chan struct{})
	m.location.EXPECT().GetCurrentLocation(mock.Anything).
		RunAndReturn(func(context.Context) (ports.Coordinates, error) {
			<-release
			return ports.Coordinates{}, errors.NewLocationUnavailableError("off", nil)
		}).Once()

	vs.FetchOneWeekForecast(context.Background())

	state := vs.ForecastState()
	assert.Equal(t, PhaseLoading, state.Phase)
	assert.False(t, state.Result.IsSet())
	_, ok := state.Result.Value()
	assert.False(t, ok)

	close(release)
	vs.Wait()
	assert.True(t, vs.ForecastState().Result.IsSet())
}

func TestViewState_ForecastHandedOutAsCopies(t *testing.T) {
	vs, m := newTestViewState(t)
	day := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m.location.EXPECT().GetCurrentLocation(mock.Anything).Return(testCoords, nil).Once()
	m.config.EXPECT().GetUnits(mock.Anything).Return(ports.UnitsMetric).Once()
	m.gateway.EXPECT().FetchForecast(mock.Anything, mock.Anything).
		Return([]ports.ForecastDayData{{Date: day, MinTemp: 1, MaxTemp: 11}}, nil).Once()

	vs.SubscribeForecast(func(s State[[]ForecastEntry]) {
		if entries, ok := s.Result.Value(); ok {
			entries[0].MaxTemp = 999
		}
	})

	vs.FetchOneWeekForecast(context.Background())
	vs.Wait()

	snapshot, ok := vs.ForecastState().Result.Value()
	require.True(t, ok)
	assert.Equal(t, 11.0, snapshot[0].MaxTemp)
	snapshot[0].MaxTemp = -5

	replayed := &recorder[[]ForecastEntry]{}
	vs.SubscribeForecast(replayed.observe)
	states := replayed.all()
	require.Len(t, states, 1)
	entries, ok := states[0].Result.Value()
	require.True(t, ok)
	assert.Equal(t, 11.0, entries[0].MaxTemp)
}

func TestViewState_ForecastEntriesCarryCycleUnits(t *testing.T) {
	vs, m := newTestViewState(t)
	m.location.EXPECT().GetCurrentLocation(mock.Anything).Return(testCoords, nil).Once()
	m.config.EXPECT().GetUnits(mock.Anything).Return(ports.UnitsImperial).Once()
	m.gateway.EXPECT().FetchForecast(mock.Anything, mock.Anything).
		Return([]ports.ForecastDayData{{Date: time.Now(), MinTemp: 40, MaxTemp: 60}}, nil).Once()

	vs.FetchOneWeekForecast(context.Background())
	vs.Wait()

	entries, ok := vs.ForecastState().Result.Value()
	require.True(t, ok)
	assert.Equal(t, ports.UnitsImperial, entries[0].Units)
}

func TestViewState_InvalidGatewayPayloadFails(t *testing.T) {
	t.Run("Weather", func(t *testing.T) {
		vs, m := newTestViewState(t)
		m.location.EXPECT().GetCurrentLocation(mock.Anything).Return(testCoords, nil).Once()
		m.config.EXPECT().GetUnits(mock.Anything).Return(ports.UnitsMetric).Once()
		m.gateway.EXPECT().FetchCurrentWeather(mock.Anything, mock.Anything).
			Return(&ports.CurrentWeatherData{Temperature: 20, Description: "clear sky", Humidity: 140}, nil).Once()

		vs.FetchCurrentWeather(context.Background())
		vs.Wait()

		state := vs.WeatherState()
		assert.Equal(t, PhaseFailed, state.Phase)
		require.NotNil(t, state.Result.Failure())
		assert.Equal(t, ErrorKindUnknown, state.Result.Failure().Kind)
		assert.Contains(t, state.Result.Failure().Error(), "humidity must be between 0 and 100")
	})

	t.Run("Forecast", func(t *testing.T) {
		vs, m := newTestViewState(t)
		m.location.EXPECT().GetCurrentLocation(mock.Anything).Return(testCoords, nil).Once()
		m.config.EXPECT().GetUnits(mock.Anything).Return(ports.UnitsMetric).Once()
		m.gateway.EXPECT().FetchForecast(mock.Anything, mock.Anything).
			Return([]ports.ForecastDayData{{Date: time.Now(), MinTemp: 20, MaxTemp: 10}}, nil).Once()

		vs.FetchOneWeekForecast(context.Background())
		vs.Wait()

		state := vs.ForecastState()
		assert.Equal(t, PhaseFailed, state.Phase)
		require.NotNil(t, state.Result.Failure())
		assert.Equal(t, ErrorKindUnknown, state.Result.Failure().Kind)
	})
}
