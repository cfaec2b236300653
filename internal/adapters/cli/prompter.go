package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"localweather.app/internal/ports"
	"localweather.app/pkg/errors"
)

const (
	permissionQuestion  = "Allow LocalWeather to use this device's location? [y/N]: "
	permissionRationale = "LocalWeather shows the weather where you are. " +
		"Without your location it cannot pick a forecast for you."
)

type lineResult struct {
	line string
	err  error
}

// TerminalPermissionPrompter implements PermissionPrompter over a line-oriented terminal.
// The first refusal asks for a rationale, later refusals are plain denials.
type TerminalPermissionPrompter struct {
	out    io.Writer
	lines  chan lineResult
	done   chan struct{}
	logger ports.Logger

	mu             sync.Mutex
	rationaleShown bool
	readOnce       sync.Once
	closeOnce      sync.Once
	in             *bufio.Reader
}

// NewTerminalPermissionPrompter creates a prompter reading answers from in
func NewTerminalPermissionPrompter(in io.Reader, out io.Writer, logger ports.Logger) *TerminalPermissionPrompter {
	return &TerminalPermissionPrompter{
		out:    out,
		in:     bufio.NewReader(in),
		lines:  make(chan lineResult),
		done:   make(chan struct{}),
		logger: logger,
	}
}

func (p *TerminalPermissionPrompter) RequestLocationPermission(ctx context.Context) (ports.PermissionDecision, error) {
	p.print(permissionQuestion)

	line, err := p.readLine(ctx)
	if err != nil {
		return ports.PermissionDenied, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return ports.PermissionGranted, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.rationaleShown {
		return ports.PermissionRationaleNeeded, nil
	}
	return ports.PermissionDenied, nil
}

func (p *TerminalPermissionPrompter) ShowRationale(ctx context.Context) error {
	p.mu.Lock()
	p.rationaleShown = true
	p.mu.Unlock()

	p.print(permissionRationale + "\nPress Enter to continue.\n")
	_, err := p.readLine(ctx)
	return err
}

// readLine waits for the next input line. A single reader goroutine serves all calls
// so an abandoned read is picked up by the next caller.
func (p *TerminalPermissionPrompter) readLine(ctx context.Context) (string, error) {
	p.readOnce.Do(func() {
		go func() {
			for {
				line, err := p.in.ReadString('\n')
				if err == io.EOF && line != "" {
					err = nil
				}
				select {
				case p.lines <- lineResult{line: line, err: err}:
				case <-p.done:
					return
				}
				if err != nil {
					close(p.lines)
					return
				}
			}
		}()
	})

	select {
	case <-p.done:
		return "", errors.NewPermissionDeniedError("terminal prompt closed")
	default:
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", errors.NewPermissionDeniedError("terminal prompt closed")
	case res, ok := <-p.lines:
		if !ok || res.err != nil {
			return "", errors.NewPermissionDeniedError("no answer on terminal input")
		}
		return res.line, nil
	}
}

// Close releases the input reader. A read blocked on the underlying input ends when that input does.
func (p *TerminalPermissionPrompter) Close() error {
	p.closeOnce.Do(func() { close(p.done) })
	return nil
}

func (p *TerminalPermissionPrompter) print(s string) {
	if _, err := fmt.Fprint(p.out, s); err != nil {
		p.logger.Warn("Failed to write prompt", ports.F("error", err))
	}
}
