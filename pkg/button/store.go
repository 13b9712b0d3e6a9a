package button

import (
	"github.com/go-drift/sol/pkg/core"
	"github.com/go-drift/sol/pkg/errors"
)

// Store binds a trigger discipline to a two-valued observable. The
// observable itself may be shared with and mutated by external
// collaborators (a keyboard shortcut, instrumentation replay); the
// discipline re-derives its state from the current value on every
// event, so programmatic and physical changes behave identically.
//
// The store holding any value outside its two-value domain is a
// contract violation unless lenient validation was requested.
type Store[T comparable] struct {
	obs     *core.Observable[T]
	off, on T
	lenient bool
}

// NewStore wraps obs as a two-valued store with the given domain.
// The current value is validated immediately.
func NewStore[T comparable](obs *core.Observable[T], off, on T, opts Options) *Store[T] {
	s := &Store[T]{obs: obs, off: off, on: on, lenient: opts.LenientValues}
	s.validate("button.NewStore", obs.Value())
	return s
}

// Value returns the store's current value, validated against the
// domain so external writes of illegal values surface at the first
// read rather than corrupting a discipline's state machine.
func (s *Store[T]) Value() T {
	v := s.obs.Value()
	s.validate("button.Store.Value", v)
	return v
}

// Set writes a value into the store.
func (s *Store[T]) Set(v T) {
	s.validate("button.Store.Set", v)
	s.obs.Set(v)
}

// Off returns the store's off value.
func (s *Store[T]) Off() T { return s.off }

// On returns the store's on value.
func (s *Store[T]) On() T { return s.on }

// AddListener registers fn for store changes, external ones included.
// It returns an unsubscribe function.
func (s *Store[T]) AddListener(fn func(T)) func() {
	return s.obs.AddListener(fn)
}

// Observable returns the underlying observable, the handle external
// collaborators use to read or mutate the bound value directly.
func (s *Store[T]) Observable() *core.Observable[T] {
	return s.obs
}

func (s *Store[T]) validate(op string, v T) {
	if s.lenient {
		return
	}
	errors.Assertf(v == s.off || v == s.on, op, errors.KindValue,
		"store holds %v, want %v or %v", v, s.off, s.on)
}
