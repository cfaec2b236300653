package ports

import "context"

// Health status values reported by checkers. The worst one wins when aggregated.
const (
	HealthHealthy   = "healthy"
	HealthDegraded  = "degraded"
	HealthUnhealthy = "unhealthy"
)

// HealthChecker checks one dependency of the weather view: settings, network or the weather API
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// HealthStatus is the outcome of one check as served on /health
type HealthStatus struct {
	Component string         `json:"component"`
	Status    string         `json:"status"`
	Details   map[string]any `json:"details,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// SystemHealthChecker runs every registered check keyed by component name
type SystemHealthChecker interface {
	CheckAll(ctx context.Context) map[string]HealthStatus
}
