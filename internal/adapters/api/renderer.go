package api

import "localweather.app/internal/ports"

func (s *HTTPServerAdapter) ShowSplash(appName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.AppName = appName
}

func (s *HTTPServerAdapter) ShowLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Loading = loading
	if loading {
		s.view.Notice = ""
	}
}

func (s *HTTPServerAdapter) ShowWeather(view ports.WeatherView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Weather = &view
}

func (s *HTTPServerAdapter) ShowForecast(items []ports.ForecastItemView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Forecast = append([]ports.ForecastItemView{}, items...)
}

func (s *HTTPServerAdapter) ShowNotice(notice ports.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Notice = notice.Message()
}

func (s *HTTPServerAdapter) snapshot() ViewResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := s.view
	if view.Weather != nil {
		w := *view.Weather
		view.Weather = &w
	}
	if view.Forecast != nil {
		view.Forecast = append([]ports.ForecastItemView{}, view.Forecast...)
	}
	return view
}
