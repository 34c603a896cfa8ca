// Package state implements the per-screen UI state holder: a tagged
// Loading/Success/Error union that every fetch re-enters Loading on, plus a
// store that stops accepting transitions once its screen is gone.
package state

import (
	"sync"

	"marketplace-catalog/internal/catalog/outcome"
)

// Phase identifies the active variant of a State.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	default:
		return "error"
	}
}

// State is one published UI state. Data is meaningful only in PhaseSuccess;
// Message, Code and MessageKey only in PhaseError. Code 0 means no
// transport code; MessageKey is an optional localization key a screen policy
// may attach.
type State[T any] struct {
	Phase      Phase
	Data       T
	Message    string
	Code       int
	MessageKey string
}

func Loading[T any]() State[T] {
	return State[T]{Phase: PhaseLoading}
}

func Success[T any](data T) State[T] {
	return State[T]{Phase: PhaseSuccess, Data: data}
}

func Error[T any](message string, code int) State[T] {
	return State[T]{Phase: PhaseError, Message: message, Code: code}
}

// ErrorWithKey attaches a localization key for screens that render a
// dedicated presentation for the condition.
func ErrorWithKey[T any](message string, code int, key string) State[T] {
	return State[T]{Phase: PhaseError, Message: message, Code: code, MessageKey: key}
}

// FromOutcome translates a repository outcome into the terminal state: a
// GenericFailure keeps no code, a NetworkFailure carries its status code.
func FromOutcome[T any](o outcome.Outcome[T]) State[T] {
	if o.IsSuccess() {
		return Success(o.Value())
	}
	msg, code, _ := o.Failure()
	return Error[T](msg, code)
}

// Store holds the current state of one screen. It starts in Loading, is
// mutated only via Publish, and ignores every Publish after Close — a
// destroyed screen cannot receive transitions, and that is not an error.
type Store[T any] struct {
	mu      sync.Mutex
	current State[T]
	subs    []chan State[T]
	closed  bool
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{current: Loading[T]()}
}

// Current returns the last published state.
func (s *Store[T]) Current() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Publish replaces the current state and notifies subscribers. Concurrent
// publishers are not deduplicated; the last write wins.
func (s *Store[T]) Publish(st State[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.current = st
	for _, ch := range s.subs {
		select {
		case ch <- st:
		default: // slow subscriber, drop rather than block the fetch task
		}
	}
}

// Subscribe returns a channel of state transitions. The channel is closed
// when the store closes.
func (s *Store[T]) Subscribe() <-chan State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan State[T], 16)
	if s.closed {
		close(ch)
		return ch
	}
	s.subs = append(s.subs, ch)
	return ch
}

// Close marks the store destroyed. Subsequent Publish calls are no-ops.
func (s *Store[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
}
