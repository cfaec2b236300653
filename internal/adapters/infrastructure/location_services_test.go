package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"localweather.app/internal/mocks"
	"localweather.app/pkg/errors"
)

func TestSwitchLocationServices(t *testing.T) {
	ctx := context.Background()

	t.Run("AlreadyEnabled", func(t *testing.T) {
		s := NewSwitchLocationServices(true, false, mocks.NewLogger(t))
		assert.True(t, s.Enabled(ctx))
		assert.NoError(t, s.Enable(ctx))
	})

	t.Run("AutoEnable", func(t *testing.T) {
		logger := mocks.NewLogger(t)
		logger.EXPECT().Info("Location services enabled").Once()

		s := NewSwitchLocationServices(false, true, logger)
		assert.False(t, s.Enabled(ctx))
		assert.NoError(t, s.Enable(ctx))
		assert.True(t, s.Enabled(ctx))
	})

	t.Run("EnableRefused", func(t *testing.T) {
		s := NewSwitchLocationServices(false, false, mocks.NewLogger(t))
		err := s.Enable(ctx)
		assert.True(t, errors.IsLocationUnavailableError(err))
		assert.False(t, s.Enabled(ctx))
	})
}
