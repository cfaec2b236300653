package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"localweather.app/internal/adapters/api"
	"localweather.app/internal/adapters/infrastructure"
	"localweather.app/internal/config"
	"localweather.app/internal/core/weather"
	"localweather.app/internal/mockupstream"
	"localweather.app/pkg/errors"
)

// syncBuffer guards a bytes.Buffer shared between the renderer and assertions
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newUpstream(t *testing.T) *httptest.Server {
	gin.SetMode(gin.TestMode)
	server := httptest.NewServer(mockupstream.NewRouter(mockupstream.Options{}))
	t.Cleanup(server.Close)
	return server
}

func testConfig(upstreamURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Enabled: false},
		Weather: config.WeatherConfig{
			APIKey:         "test-key",
			BaseURL:        upstreamURL,
			TimeoutSeconds: 5,
			ForecastDays:   7,
		},
		Settings: config.SettingsConfig{Backend: config.SettingsBackendMemory},
		Location: config.LocationConfig{
			Source:          config.LocationSourceIP,
			IPLookupURL:     upstreamURL + "/json",
			TimeoutSeconds:  5,
			ServicesEnabled: false,
			AutoEnable:      true,
		},
		Permission: config.PermissionConfig{Mode: config.PermissionModeGrant, MaxAttempts: 3},
		Display:    config.DisplayConfig{Terminal: true},
		Log:        config.LogConfig{Level: "info", Format: "text"},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config, stdin io.Reader) (*Application, *syncBuffer) {
	out := &syncBuffer{}
	deps, err := NewDependencyContainer(cfg, DependencyOptions{
		Stdin:  stdin,
		Stdout: out,
		Logger: infrastructure.NewSlogLoggerAdapter(slog.New(slog.NewTextHandler(io.Discard, nil))),
	})
	require.NoError(t, err)

	application, err := NewApplicationWithDependencies(cfg, deps, clockwork.NewFakeClock())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = application.Shutdown(context.Background())
	})
	return application, out
}

func TestNewDependencyContainer_NilConfig(t *testing.T) {
	_, err := NewDependencyContainer(nil, DependencyOptions{})

	assert.True(t, errors.IsConfigurationError(err))
}

func TestApplication_Start_RendersWeatherAndForecast(t *testing.T) {
	upstream := newUpstream(t)
	application, out := newTestApplication(t, testConfig(upstream.URL), strings.NewReader(""))

	require.NoError(t, application.Start(context.Background()))

	text := out.String()
	assert.Contains(t, text, "LocalWeather")
	assert.Contains(t, text, "Loading weather...")
	assert.Contains(t, text, "Kyiv")
	assert.Contains(t, text, "14.0°C  Broken Clouds")
	assert.Contains(t, text, "Forecast")

	state := application.ViewState().ForecastState()
	assert.Equal(t, weather.PhaseSucceeded, state.Phase)
	entries, ok := state.Result.Value()
	require.True(t, ok)
	assert.Len(t, entries, 7)
}

func TestApplication_Start_PromptFlow(t *testing.T) {
	upstream := newUpstream(t)
	cfg := testConfig(upstream.URL)
	cfg.Permission.Mode = config.PermissionModePrompt

	application, out := newTestApplication(t, cfg, strings.NewReader("no\n\nyes\n"))

	require.NoError(t, application.Start(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Press Enter to continue.")
	assert.Equal(t, 2, strings.Count(text, "[y/N]"))
	assert.Contains(t, text, "Kyiv")
}

func TestApplication_Start_PermissionExhausted(t *testing.T) {
	upstream := newUpstream(t)
	cfg := testConfig(upstream.URL)
	cfg.Permission.Mode = config.PermissionModeDeny
	cfg.Permission.MaxAttempts = 2

	application, out := newTestApplication(t, cfg, strings.NewReader(""))

	err := application.Start(context.Background())

	assert.True(t, errors.IsPermissionDeniedError(err))
	assert.Contains(t, out.String(), "Location permission is required")
	assert.Equal(t, weather.PhaseIdle, application.ViewState().WeatherState().Phase)
}

func TestApplication_Start_UpstreamFailureShowsNotice(t *testing.T) {
	upstream := newUpstream(t)
	cfg := testConfig(upstream.URL)
	cfg.Weather.APIKey = mockupstream.FailingAPIKey

	application, out := newTestApplication(t, cfg, strings.NewReader(""))

	require.NoError(t, application.Start(context.Background()))

	assert.Contains(t, out.String(), "Weather data is unavailable right now")
	failure := application.ViewState().WeatherState().Result.Failure()
	require.NotNil(t, failure)
	assert.Equal(t, weather.ErrorKindServiceUnavailable, failure.Kind)
}

func TestApplication_Start_LocationServicesOffWithoutAutoEnable(t *testing.T) {
	upstream := newUpstream(t)
	cfg := testConfig(upstream.URL)
	cfg.Location.AutoEnable = false

	application, out := newTestApplication(t, cfg, strings.NewReader(""))

	require.NoError(t, application.Start(context.Background()))

	assert.Contains(t, out.String(), "Something went wrong")
	failure := application.ViewState().WeatherState().Result.Failure()
	require.NotNil(t, failure)
	assert.Equal(t, weather.ErrorKindLocationUnavailable, failure.Kind)
}

func TestApplication_Start_SQLiteSeededImperial(t *testing.T) {
	upstream := newUpstream(t)
	cfg := testConfig(upstream.URL)
	cfg.Settings.Backend = config.SettingsBackendSQLite
	cfg.Settings.SQLitePath = filepath.Join(t.TempDir(), "settings.db")
	cfg.Settings.SeedUnits = "imperial"
	cfg.Location.Source = config.LocationSourceStatic
	cfg.Location.Latitude = 48.86
	cfg.Location.Longitude = 2.35

	application, out := newTestApplication(t, cfg, strings.NewReader(""))

	require.NoError(t, application.Start(context.Background()))

	assert.Contains(t, out.String(), "Paris")
	assert.Contains(t, out.String(), "64.4°F")
}

func TestApplication_HTTPServer(t *testing.T) {
	upstream := newUpstream(t)
	cfg := testConfig(upstream.URL)
	cfg.Server = config.ServerConfig{Enabled: true, Port: 0}
	cfg.Display.Terminal = false

	application, _ := newTestApplication(t, cfg, strings.NewReader(""))
	require.NotNil(t, application.HTTPAdapter())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Start(ctx) }()

	router := application.HTTPAdapter().GetRouter()
	require.Eventually(t, func() bool {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/view", nil))
		var view api.ViewResponse
		if json.Unmarshal(w.Body.Bytes(), &view) != nil {
			return false
		}
		return view.Weather != nil && len(view.Forecast) == 7 && !view.Loading
	}, 5*time.Second, 20*time.Millisecond)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/refresh", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "localweather_fetch_cycles_total")
	assert.Contains(t, w.Body.String(), `localweather_permission_decisions_total{decision="granted"} 1`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("application did not stop")
	}
}

func TestMaskString(t *testing.T) {
	assert.Equal(t, "", maskString(""))
	assert.Equal(t, "****", maskString("abc"))
	assert.Equal(t, "ab******", maskString("abcdefgh"))
}

func TestLogConfig_MasksSecrets(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig("http://upstream")
	cfg.Weather.APIKey = "supersecretkey"

	LogConfig(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

	assert.NotContains(t, buf.String(), "supersecretkey")
	assert.Contains(t, buf.String(), "weather.api_key=sup")
}

func TestApplication_RefreshRejectedWithoutPermission(t *testing.T) {
	upstream := newUpstream(t)
	cfg := testConfig(upstream.URL)
	cfg.Server = config.ServerConfig{Enabled: true, Port: 0}
	cfg.Display.Terminal = false
	cfg.Permission.Mode = config.PermissionModeDeny
	cfg.Permission.MaxAttempts = 1

	application, _ := newTestApplication(t, cfg, strings.NewReader(""))

	err := application.Start(context.Background())
	require.True(t, errors.IsPermissionDeniedError(err))

	w := httptest.NewRecorder()
	application.HTTPAdapter().GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/refresh", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	application.ViewState().Wait()
	assert.Equal(t, weather.PhaseIdle, application.ViewState().WeatherState().Phase)
	assert.Equal(t, weather.PhaseIdle, application.ViewState().ForecastState().Phase)
}
