package weather

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"localweather.app/pkg/errors"
)

func TestResult_Success(t *testing.T) {
	r := Success(42)

	assert.True(t, r.IsSuccess())
	assert.Nil(t, r.Failure())
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestResult_Failed(t *testing.T) {
	cause := fmt.Errorf("boom")
	r := Failed[int](ErrorKindNetwork, cause)

	assert.False(t, r.IsSuccess())
	v, ok := r.Value()
	assert.False(t, ok)
	assert.Zero(t, v)
	require.NotNil(t, r.Failure())
	assert.Equal(t, ErrorKindNetwork, r.Failure().Kind)
	assert.ErrorIs(t, r.Failure(), cause)
}

func TestResult_ZeroValueIsNeitherVariant(t *testing.T) {
	var r Result[[]ForecastEntry]

	assert.False(t, r.IsSet())
	assert.False(t, r.IsSuccess())
	assert.Nil(t, r.Failure())
	v, ok := r.Value()
	assert.False(t, ok)
	assert.Nil(t, v)

	assert.True(t, Success(0).IsSet())
	assert.True(t, Failed[int](ErrorKindUnknown, nil).IsSet())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{name: "Network", err: errors.NewNetworkError("timeout", nil), expected: ErrorKindNetwork},
		{name: "ServiceUnavailable", err: errors.NewServiceUnavailableError("503", nil), expected: ErrorKindServiceUnavailable},
		{name: "LocationUnavailable", err: errors.NewLocationUnavailableError("no fix", nil), expected: ErrorKindLocationUnavailable},
		{name: "Wrapped", err: fmt.Errorf("cycle: %w", errors.NewNetworkError("reset", nil)), expected: ErrorKindNetwork},
		{name: "Validation", err: errors.NewValidationError("bad"), expected: ErrorKindUnknown},
		{name: "Plain", err: fmt.Errorf("plain"), expected: ErrorKindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestFailure_Error(t *testing.T) {
	assert.Equal(t, "unknown", (&Failure{Kind: ErrorKindUnknown}).Error())
	assert.Equal(t, "network: reset", (&Failure{Kind: ErrorKindNetwork, Cause: fmt.Errorf("reset")}).Error())
}
