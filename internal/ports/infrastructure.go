package ports

import "time"

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Fetch kinds and outcomes reported to FetchMetrics
const (
	FetchKindWeather  = "weather"
	FetchKindForecast = "forecast"

	FetchOutcomeSuccess = "success"
)

// FetchMetrics defines the contract for recording fetch cycle outcomes.
// Outcome is FetchOutcomeSuccess or the failure kind name.
type FetchMetrics interface {
	RecordFetch(kind, outcome string, duration time.Duration)
	RecordPermissionDecision(decision PermissionDecision)
}
