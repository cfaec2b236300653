package app

import (
	"log/slog"
	"strings"

	"localweather.app/internal/config"
)

// LogConfig writes the effective configuration with secrets masked
func LogConfig(logger *slog.Logger, cfg *config.Config) {
	logger.Info("Application configuration",
		slog.Group("server",
			"enabled", cfg.Server.Enabled,
			"port", cfg.Server.Port),
		slog.Group("weather",
			"api_key", maskString(cfg.Weather.APIKey),
			"base_url", cfg.Weather.BaseURL,
			"timeout", cfg.Weather.Timeout().String(),
			"forecast_days", cfg.Weather.ForecastDays,
			"logging", cfg.Weather.EnableLogging),
		slog.Group("settings",
			"backend", cfg.Settings.Backend.String(),
			"redis_addr", cfg.Settings.Redis.Addr,
			"redis_password", maskString(cfg.Settings.Redis.Password),
			"db_host", cfg.Settings.Database.Host,
			"db_password", maskString(cfg.Settings.Database.Password)),
		slog.Group("location",
			"source", string(cfg.Location.Source),
			"services_enabled", cfg.Location.ServicesEnabled,
			"auto_enable", cfg.Location.AutoEnable),
		slog.Group("permission",
			"mode", string(cfg.Permission.Mode),
			"max_attempts", cfg.Permission.MaxAttempts),
		slog.Group("display",
			"splash_delay", cfg.Display.SplashDelay().String(),
			"terminal", cfg.Display.Terminal))
}

// maskString masks sensitive information like passwords and API keys
func maskString(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	visible := len(s) / 4
	return s[:visible] + strings.Repeat("*", len(s)-visible)
}
