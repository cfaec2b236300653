package presentation

// ConditionIcon maps an OpenWeatherMap condition code to an icon name
func ConditionIcon(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "thunderstorm"
	case code >= 300 && code < 400:
		return "drizzle"
	case code == 511:
		return "sleet"
	case code >= 500 && code < 600:
		return "rain"
	case code >= 600 && code < 700:
		return "snow"
	case code >= 700 && code < 800:
		return "mist"
	case code == 800:
		return "clear"
	case code == 801:
		return "few_clouds"
	case code > 801 && code < 900:
		return "clouds"
	default:
		return "unknown"
	}
}
