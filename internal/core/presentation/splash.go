package presentation

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"localweather.app/internal/ports"
)

const DefaultSplashDelay = 1500 * time.Millisecond

// Splash shows the banner and holds for delay before the main surface is created
func Splash(ctx context.Context, renderer ports.Renderer, clock clockwork.Clock, appName string, delay time.Duration) error {
	renderer.ShowSplash(appName)
	if delay <= 0 {
		return nil
	}

	select {
	case <-clock.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
