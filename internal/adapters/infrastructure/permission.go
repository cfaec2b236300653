package infrastructure

import (
	"context"

	"localweather.app/internal/ports"
)

// StaticPermissionPrompter implements the PermissionPrompter port with a fixed answer,
// for unattended runs where no one can answer a prompt
type StaticPermissionPrompter struct {
	decision ports.PermissionDecision
	logger   ports.Logger
}

// NewStaticPermissionPrompter creates a prompter that always answers decision
func NewStaticPermissionPrompter(decision ports.PermissionDecision, logger ports.Logger) *StaticPermissionPrompter {
	return &StaticPermissionPrompter{decision: decision, logger: logger}
}

func (p *StaticPermissionPrompter) RequestLocationPermission(ctx context.Context) (ports.PermissionDecision, error) {
	if err := ctx.Err(); err != nil {
		return ports.PermissionDenied, err
	}
	p.logger.Debug("Answering location permission request", ports.F("decision", p.decision.String()))
	return p.decision, nil
}

func (p *StaticPermissionPrompter) ShowRationale(ctx context.Context) error {
	p.logger.Info(ports.NoticePermissionRequired.Message())
	return ctx.Err()
}
