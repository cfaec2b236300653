package presentation

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"localweather.app/internal/core/weather"
	"localweather.app/internal/mocks"
	"localweather.app/internal/ports"
)

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

type recordingRenderer struct {
	mu        sync.Mutex
	splashes  []string
	loading   []bool
	weather   []ports.WeatherView
	forecasts [][]ports.ForecastItemView
	notices   []ports.Notice
}

func (r *recordingRenderer) ShowSplash(appName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.splashes = append(r.splashes, appName)
}

func (r *recordingRenderer) ShowLoading(loading bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = append(r.loading, loading)
}

func (r *recordingRenderer) ShowWeather(view ports.WeatherView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.weather = append(r.weather, view)
}

func (r *recordingRenderer) ShowForecast(items []ports.ForecastItemView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forecasts = append(r.forecasts, items)
}

func (r *recordingRenderer) ShowNotice(notice ports.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice)
}

type renderedOutput struct {
	splashes  []string
	loading   []bool
	weather   []ports.WeatherView
	forecasts [][]ports.ForecastItemView
	notices   []ports.Notice
}

func (r *recordingRenderer) snapshot() renderedOutput {
	r.mu.Lock()
	defer r.mu.Unlock()
	return renderedOutput{
		splashes:  append([]string(nil), r.splashes...),
		loading:   append([]bool(nil), r.loading...),
		weather:   append([]ports.WeatherView(nil), r.weather...),
		forecasts: append([][]ports.ForecastItemView(nil), r.forecasts...),
		notices:   append([]ports.Notice(nil), r.notices...),
	}
}

// fakeViewState lets tests push states straight to the surface's observers
type fakeViewState struct {
	mu               sync.Mutex
	config           ports.Configuration
	configReads      int
	weatherFetches   int
	forecastFetches  int
	weatherObserver  weather.Observer[weather.Weather]
	forecastObserver weather.Observer[[]weather.ForecastEntry]
}

func (f *fakeViewState) SubscribeWeather(observer weather.Observer[weather.Weather]) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.weatherObserver = observer
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.weatherObserver = nil
	}
}

func (f *fakeViewState) SubscribeForecast(observer weather.Observer[[]weather.ForecastEntry]) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forecastObserver = observer
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.forecastObserver = nil
	}
}

func (f *fakeViewState) FetchCurrentWeather(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.weatherFetches++
}

func (f *fakeViewState) FetchOneWeekForecast(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forecastFetches++
}

func (f *fakeViewState) GetConfig(context.Context) ports.Configuration {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configReads++
	return f.config
}

func (f *fakeViewState) pushWeather(state weather.State[weather.Weather]) {
	f.mu.Lock()
	observer := f.weatherObserver
	f.mu.Unlock()
	if observer != nil {
		observer(state)
	}
}

func (f *fakeViewState) pushForecast(state weather.State[[]weather.ForecastEntry]) {
	f.mu.Lock()
	observer := f.forecastObserver
	f.mu.Unlock()
	if observer != nil {
		observer(state)
	}
}

func (f *fakeViewState) fetchCounts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.weatherFetches, f.forecastFetches
}
