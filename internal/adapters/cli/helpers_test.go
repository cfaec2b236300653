package cli

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"localweather.app/internal/mocks"
)

func newTestLogger(t *testing.T) *mocks.Logger {
	logger := mocks.NewLogger(t)
	for n := 0; n <= 2; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		logger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		logger.EXPECT().Info(mock.Anything, fields...).Maybe()
		logger.EXPECT().Warn(mock.Anything, fields...).Maybe()
		logger.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
	return logger
}
