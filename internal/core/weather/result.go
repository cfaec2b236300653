package weather

import (
	"localweather.app/pkg/errors"
)

// ErrorKind classifies why a fetch cycle failed
type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindNetwork
	ErrorKindServiceUnavailable
	ErrorKindLocationUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNetwork:
		return "network"
	case ErrorKindServiceUnavailable:
		return "service_unavailable"
	case ErrorKindLocationUnavailable:
		return "location_unavailable"
	default:
		return "unknown"
	}
}

// KindOf maps an adapter error to the kind the presentation layer understands
func KindOf(err error) ErrorKind {
	switch errors.TypeOf(err) {
	case errors.ErrorTypeNetwork:
		return ErrorKindNetwork
	case errors.ErrorTypeServiceUnavailable:
		return ErrorKindServiceUnavailable
	case errors.ErrorTypeLocationUnavailable:
		return ErrorKindLocationUnavailable
	default:
		return ErrorKindUnknown
	}
}

// Failure is the error variant of a Result
type Failure struct {
	Kind  ErrorKind
	Cause error
}

func (f *Failure) Error() string {
	if f.Cause == nil {
		return f.Kind.String()
	}
	return f.Kind.String() + ": " + f.Cause.Error()
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

// Result holds either a value or a failure, never both.
// The zero Result is neither and marks a stream that has not finished a cycle.
type Result[T any] struct {
	value   T
	ok      bool
	failure *Failure
}

// Success builds a successful result
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failed builds a failed result
func Failed[T any](kind ErrorKind, cause error) Result[T] {
	return Result[T]{failure: &Failure{Kind: kind, Cause: cause}}
}

// FailedWith builds a failed result classifying err with KindOf
func FailedWith[T any](err error) Result[T] {
	return Failed[T](KindOf(err), err)
}

func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsSet reports whether r is a success or a failure
func (r Result[T]) IsSet() bool {
	return r.ok || r.failure != nil
}

// Value returns the success value and true, or the zero value and false
func (r Result[T]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// withValue returns r with its success value passed through fn
func (r Result[T]) withValue(fn func(T) T) Result[T] {
	if !r.ok || fn == nil {
		return r
	}
	r.value = fn(r.value)
	return r
}

// Failure returns the failure or nil on success
func (r Result[T]) Failure() *Failure {
	return r.failure
}
