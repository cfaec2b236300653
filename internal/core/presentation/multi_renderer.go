package presentation

import "localweather.app/internal/ports"

// MultiRenderer fans every call out to each renderer in order
type MultiRenderer []ports.Renderer

func (m MultiRenderer) ShowSplash(appName string) {
	for _, r := range m {
		r.ShowSplash(appName)
	}
}

func (m MultiRenderer) ShowLoading(loading bool) {
	for _, r := range m {
		r.ShowLoading(loading)
	}
}

func (m MultiRenderer) ShowWeather(view ports.WeatherView) {
	for _, r := range m {
		r.ShowWeather(view)
	}
}

func (m MultiRenderer) ShowForecast(items []ports.ForecastItemView) {
	for _, r := range m {
		r.ShowForecast(items)
	}
}

func (m MultiRenderer) ShowNotice(notice ports.Notice) {
	for _, r := range m {
		r.ShowNotice(notice)
	}
}
