package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"localweather.app/internal/ports"
	"localweather.app/pkg/errors"
)

const (
	maxRedisDB         = 15
	maxPortNumber      = 65535
	maxForecastDays    = 16
	maxTimeoutSeconds  = 120
	maxSplashDelayMs   = 10000
	defaultUnitsSeeded = ""
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig     `split_words:"true"`
	Weather    WeatherConfig    `split_words:"true"`
	Settings   SettingsConfig   `split_words:"true"`
	Location   LocationConfig   `split_words:"true"`
	Permission PermissionConfig `split_words:"true"`
	Display    DisplayConfig    `split_words:"true"`
	Log        LogConfig        `split_words:"true"`
}

type ServerConfig struct {
	Enabled bool `envconfig:"SERVER_ENABLED" default:"true"`
	Port    int  `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	APIKey         string `envconfig:"WEATHER_API_KEY"`
	BaseURL        string `envconfig:"WEATHER_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	TimeoutSeconds int    `envconfig:"WEATHER_TIMEOUT_SECONDS" default:"10"`
	ForecastDays   int    `envconfig:"WEATHER_FORECAST_DAYS" default:"7"`
	EnableLogging  bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"false"`
	LogFilePath    string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_gateway.log"`
}

// Timeout returns the HTTP timeout of the weather gateway
func (w WeatherConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

// SettingsBackend represents the persistence used for user settings
type SettingsBackend int

const (
	SettingsBackendUnknown SettingsBackend = iota
	SettingsBackendMemory
	SettingsBackendRedis
	SettingsBackendSQLite
	SettingsBackendPostgres
)

// String returns the string representation of the settings backend
func (b SettingsBackend) String() string {
	switch b {
	case SettingsBackendMemory:
		return "memory"
	case SettingsBackendRedis:
		return "redis"
	case SettingsBackendSQLite:
		return "sqlite"
	case SettingsBackendPostgres:
		return "postgres"
	default:
		return "unknown"
	}
}

// IsValid checks if the settings backend is valid
func (b SettingsBackend) IsValid() bool {
	return b >= SettingsBackendMemory && b <= SettingsBackendPostgres
}

// SettingsBackendFromString converts string to SettingsBackend enum
func SettingsBackendFromString(s string) SettingsBackend {
	switch strings.ToLower(s) {
	case "memory":
		return SettingsBackendMemory
	case "redis":
		return SettingsBackendRedis
	case "sqlite":
		return SettingsBackendSQLite
	case "postgres":
		return SettingsBackendPostgres
	default:
		return SettingsBackendUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (b *SettingsBackend) UnmarshalText(text []byte) error {
	*b = SettingsBackendFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (b SettingsBackend) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

type SettingsConfig struct {
	Backend    SettingsBackend `envconfig:"SETTINGS_BACKEND" default:"memory"`
	SQLitePath string          `envconfig:"SETTINGS_SQLITE_PATH" default:"settings.db"`
	SeedUnits  string          `envconfig:"SETTINGS_SEED_UNITS" default:""`
	Redis      RedisConfig     `split_words:"true"`
	Database   DatabaseConfig  `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"localweather"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// LocationSource selects how the current position is obtained
type LocationSource string

const (
	LocationSourceIP     LocationSource = "ip"
	LocationSourceStatic LocationSource = "static"
)

type LocationConfig struct {
	Source          LocationSource `envconfig:"LOCATION_SOURCE" default:"ip"`
	Latitude        float64        `envconfig:"LOCATION_LATITUDE" default:"0"`
	Longitude       float64        `envconfig:"LOCATION_LONGITUDE" default:"0"`
	IPLookupURL     string         `envconfig:"LOCATION_IP_LOOKUP_URL" default:"http://ip-api.com/json"`
	TimeoutSeconds  int            `envconfig:"LOCATION_TIMEOUT_SECONDS" default:"10"`
	ServicesEnabled bool           `envconfig:"LOCATION_SERVICES_ENABLED" default:"true"`
	AutoEnable      bool           `envconfig:"LOCATION_AUTO_ENABLE" default:"true"`
}

// Timeout returns the time allowed for one location fix
func (l LocationConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// PermissionMode selects how location permission is answered
type PermissionMode string

const (
	PermissionModePrompt PermissionMode = "prompt"
	PermissionModeGrant  PermissionMode = "grant"
	PermissionModeDeny   PermissionMode = "deny"
)

type PermissionConfig struct {
	Mode        PermissionMode `envconfig:"PERMISSION_MODE" default:"prompt"`
	MaxAttempts int            `envconfig:"PERMISSION_MAX_ATTEMPTS" default:"3"`
}

type DisplayConfig struct {
	SplashDelayMs        int  `envconfig:"DISPLAY_SPLASH_DELAY_MS" default:"1500"`
	CoerceForecastErrors bool `envconfig:"DISPLAY_COERCE_FORECAST_ERRORS" default:"false"`
	Terminal             bool `envconfig:"DISPLAY_TERMINAL" default:"true"`
}

// SplashDelay returns how long the splash banner is held
func (d DisplayConfig) SplashDelay() time.Duration {
	return time.Duration(d.SplashDelayMs) * time.Millisecond
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Settings.Validate(); err != nil {
		return err
	}
	if err := c.Location.Validate(); err != nil {
		return err
	}
	if err := c.Permission.Validate(); err != nil {
		return err
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

func (s *ServerConfig) Validate() error {
	if !s.Enabled {
		return nil
	}
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if strings.TrimSpace(w.APIKey) == "" {
		return errors.NewConfigurationError("WEATHER_API_KEY must be configured", nil)
	}
	if err := validateHTTPURL("WEATHER_API_BASE_URL", w.BaseURL); err != nil {
		return err
	}
	if w.TimeoutSeconds < 1 || w.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("WEATHER_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	if w.ForecastDays < 1 || w.ForecastDays > maxForecastDays {
		return errors.NewConfigurationError("WEATHER_FORECAST_DAYS must be between 1 and 16", nil)
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when logging is enabled", nil)
	}
	return nil
}

func (s *SettingsConfig) Validate() error {
	if !s.Backend.IsValid() {
		return errors.NewConfigurationError("SETTINGS_BACKEND must be one of: memory, redis, sqlite, postgres", nil)
	}

	switch s.Backend {
	case SettingsBackendRedis:
		if err := s.Redis.Validate(); err != nil {
			return err
		}
	case SettingsBackendSQLite:
		if strings.TrimSpace(s.SQLitePath) == "" {
			return errors.NewConfigurationError("SETTINGS_SQLITE_PATH cannot be empty when using sqlite", nil)
		}
	case SettingsBackendPostgres:
		if err := s.Database.Validate(); err != nil {
			return err
		}
	}

	if s.SeedUnits != defaultUnitsSeeded &&
		s.SeedUnits != ports.UnitsValueSI && s.SeedUnits != ports.UnitsValueImperial {
		return errors.NewConfigurationError("SETTINGS_SEED_UNITS must be one of: si, imperial", nil)
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis settings", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (l *LocationConfig) Validate() error {
	switch l.Source {
	case LocationSourceIP:
		if err := validateHTTPURL("LOCATION_IP_LOOKUP_URL", l.IPLookupURL); err != nil {
			return err
		}
	case LocationSourceStatic:
		if l.Latitude < -90 || l.Latitude > 90 {
			return errors.NewConfigurationError("LOCATION_LATITUDE must be between -90 and 90", nil)
		}
		if l.Longitude < -180 || l.Longitude > 180 {
			return errors.NewConfigurationError("LOCATION_LONGITUDE must be between -180 and 180", nil)
		}
	default:
		return errors.NewConfigurationError("LOCATION_SOURCE must be one of: ip, static", nil)
	}
	if l.TimeoutSeconds < 1 || l.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("LOCATION_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	return nil
}

func (p *PermissionConfig) Validate() error {
	switch p.Mode {
	case PermissionModePrompt, PermissionModeGrant, PermissionModeDeny:
	default:
		return errors.NewConfigurationError("PERMISSION_MODE must be one of: prompt, grant, deny", nil)
	}
	if p.MaxAttempts < 0 {
		return errors.NewConfigurationError("PERMISSION_MAX_ATTEMPTS cannot be negative", nil)
	}
	if p.Mode == PermissionModeDeny && p.MaxAttempts == 0 {
		return errors.NewConfigurationError("PERMISSION_MAX_ATTEMPTS must be bounded when PERMISSION_MODE is deny", nil)
	}
	return nil
}

func (d *DisplayConfig) Validate() error {
	if d.SplashDelayMs < 0 || d.SplashDelayMs > maxSplashDelayMs {
		return errors.NewConfigurationError("DISPLAY_SPLASH_DELAY_MS must be between 0 and 10000", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Format) {
	case "text", "json":
		return nil
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: text, json", nil)
	}
}

func validateHTTPURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}
