package weather

import "sync"

// Phase is the lifecycle position of one stream
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// IsTerminal reports whether the phase ends a fetch cycle
func (p Phase) IsTerminal() bool {
	return p == PhaseSucceeded || p == PhaseFailed
}

// State is what observers of a stream receive. Result is only meaningful in a terminal phase.
type State[T any] struct {
	Phase   Phase
	CycleID string
	Result  Result[T]
}

// Observer receives state changes of one stream
type Observer[T any] func(State[T])

type subscription[T any] struct {
	observer Observer[T]
	active   bool
}

// stream holds the latest state of one fetch kind and at most one observer.
// Observers run with the stream lock held, so they are invoked serially and
// must not call back into the same stream.
type stream[T any] struct {
	mu     sync.Mutex
	seq    uint64
	latest State[T]
	sub    *subscription[T]
	// clone copies a success value before it leaves the stream. Nil for value types.
	clone func(T) T
}

// begin starts a new cycle, publishes Loading and returns the cycle's sequence number
func (s *stream[T]) begin(cycleID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.latest = State[T]{Phase: PhaseLoading, CycleID: cycleID}
	s.deliverLocked()
	return s.seq
}

// finish publishes the terminal state of a cycle unless a newer cycle has started
func (s *stream[T]) finish(seq uint64, cycleID string, result Result[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}

	phase := PhaseSucceeded
	if !result.IsSuccess() {
		phase = PhaseFailed
	}
	s.latest = State[T]{Phase: phase, CycleID: cycleID, Result: result}
	s.deliverLocked()
	return true
}

// subscribe replaces the current observer and replays the latest non-idle state
func (s *stream[T]) subscribe(observer Observer[T]) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub != nil {
		s.sub.active = false
	}
	sub := &subscription[T]{observer: observer, active: true}
	s.sub = sub

	if s.latest.Phase != PhaseIdle {
		observer(s.outgoing())
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		sub.active = false
		if s.sub == sub {
			s.sub = nil
		}
	}
}

func (s *stream[T]) snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outgoing()
}

// outgoing is the latest state as handed to callers, never sharing its value with the stream
func (s *stream[T]) outgoing() State[T] {
	state := s.latest
	state.Result = state.Result.withValue(s.clone)
	return state
}

func (s *stream[T]) deliverLocked() {
	if s.sub == nil || !s.sub.active {
		return
	}
	s.sub.observer(s.outgoing())
}
