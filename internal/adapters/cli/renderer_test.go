package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"localweather.app/internal/ports"
)

func TestTerminalRenderer_ShowSplash(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(&out, newTestLogger(t))

	r.ShowSplash("LocalWeather")

	assert.Equal(t, "====================\n    LocalWeather\n====================\n", out.String())
}

func TestTerminalRenderer_ShowLoading(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(&out, newTestLogger(t))

	r.ShowLoading(true)
	r.ShowLoading(false)

	assert.Equal(t, "Loading weather...\n", out.String())
}

func TestTerminalRenderer_ShowWeather(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(&out, newTestLogger(t))

	r.ShowWeather(ports.WeatherView{
		Location:    "Kyiv",
		Temperature: 21.46,
		UnitSymbol:  "C",
		Condition:   "light rain",
		Icon:        "rain",
		Humidity:    64,
		WindSpeed:   3.5,
		LastUpdate:  "Last update: 5 minutes ago",
	})

	text := out.String()
	assert.Contains(t, text, "Kyiv")
	assert.Contains(t, text, "21.5°C  Light Rain [rain]")
	assert.Contains(t, text, "Humidity 64%  Wind 3.5")
	assert.Contains(t, text, "Last update: 5 minutes ago")
}

func TestTerminalRenderer_ShowForecast(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(&out, newTestLogger(t))
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	r.ShowForecast([]ports.ForecastItemView{
		{Date: date, Day: "Mon 04 Mar", MinTemp: 1, MaxTemp: 7.5, UnitSymbol: "C", Condition: "scattered clouds"},
	})

	assert.Contains(t, out.String(), "Forecast\n")
	assert.Contains(t, out.String(), "Mon 04 Mar   1.0 /   7.5°C  Scattered Clouds")
}

func TestTerminalRenderer_ShowNotice(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(&out, newTestLogger(t))

	r.ShowNotice(ports.NoticePermissionRequired)

	assert.Equal(t, "! "+ports.NoticePermissionRequired.Message()+"\n", out.String())
}
