package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"localweather.app/internal/ports"
	"localweather.app/pkg/errors"
)

func TestTerminalPermissionPrompter_Grant(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminalPermissionPrompter(strings.NewReader("Yes\n"), &out, newTestLogger(t))

	decision, err := p.RequestLocationPermission(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ports.PermissionGranted, decision)
	assert.Contains(t, out.String(), "[y/N]")
}

func TestTerminalPermissionPrompter_RationaleThenDeny(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminalPermissionPrompter(strings.NewReader("n\n\nno\n"), &out, newTestLogger(t))
	ctx := context.Background()

	decision, err := p.RequestLocationPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, ports.PermissionRationaleNeeded, decision)

	require.NoError(t, p.ShowRationale(ctx))
	assert.Contains(t, out.String(), "Press Enter to continue.")

	decision, err = p.RequestLocationPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, ports.PermissionDenied, decision)
}

func TestTerminalPermissionPrompter_LastLineWithoutNewline(t *testing.T) {
	p := NewTerminalPermissionPrompter(strings.NewReader("y"), io.Discard, newTestLogger(t))

	decision, err := p.RequestLocationPermission(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ports.PermissionGranted, decision)
}

func TestTerminalPermissionPrompter_EOF(t *testing.T) {
	p := NewTerminalPermissionPrompter(strings.NewReader(""), io.Discard, newTestLogger(t))

	decision, err := p.RequestLocationPermission(context.Background())

	assert.Equal(t, ports.PermissionDenied, decision)
	assert.True(t, errors.IsPermissionDeniedError(err))

	_, err = p.RequestLocationPermission(context.Background())
	assert.True(t, errors.IsPermissionDeniedError(err))
}

func TestTerminalPermissionPrompter_ContextCancelled(t *testing.T) {
	reader, writer := io.Pipe()
	defer func() { _ = writer.Close() }()
	p := NewTerminalPermissionPrompter(reader, io.Discard, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	decision, err := p.RequestLocationPermission(ctx)

	assert.Equal(t, ports.PermissionDenied, decision)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTerminalPermissionPrompter_CloseReleasesPendingLine(t *testing.T) {
	reader, writer := io.Pipe()
	defer func() { _ = writer.Close() }()
	p := NewTerminalPermissionPrompter(reader, io.Discard, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.RequestLocationPermission(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// the reader goroutine picks up this line and waits for a caller
	written := make(chan error, 1)
	go func() {
		_, err := writer.Write([]byte("y\n"))
		written <- err
	}()
	require.NoError(t, <-written)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	decision, err := p.RequestLocationPermission(context.Background())
	assert.Equal(t, ports.PermissionDenied, decision)
	assert.True(t, errors.IsPermissionDeniedError(err))
	assert.Contains(t, err.Error(), "terminal prompt closed")
}
