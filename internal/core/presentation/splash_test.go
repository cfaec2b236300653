package presentation

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplash_WaitsForDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	renderer := &recordingRenderer{}
	done := make(chan error, 1)

	go func() {
		done <- Splash(context.Background(), renderer, clock, "localweather", DefaultSplashDelay)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	select {
	case <-done:
		t.Fatal("splash returned before the delay elapsed")
	default:
	}

	clock.Advance(DefaultSplashDelay)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"localweather"}, renderer.snapshot().splashes)
}

func TestSplash_Cancelled(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Splash(ctx, &recordingRenderer{}, clock, "localweather", time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSplash_NoDelay(t *testing.T) {
	renderer := &recordingRenderer{}
	assert.NoError(t, Splash(context.Background(), renderer, clockwork.NewFakeClock(), "localweather", 0))
	assert.Len(t, renderer.snapshot().splashes, 1)
}
