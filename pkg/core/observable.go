// Package core provides the reactive primitives the sol button models
// are built on: observables, notifiers, and derived boolean aggregation.
//
// All primitives are safe for concurrent use, but sol itself assumes a
// single-threaded, cooperatively scheduled host loop: listeners run
// synchronously inside the Set or Notify call that triggered them, and
// every derived value is up to date before that call returns.
package core

import "sync"

// Disposable releases resources when no longer needed.
type Disposable interface {
	Dispose()
}

// Observable holds a value and notifies listeners when it changes.
//
// Set is reentrant: a listener may call Set on the same observable it
// is observing. Each Set notifies a snapshot of the listeners that were
// registered when the value changed, so nested writes run to completion
// without corrupting iteration. A pass superseded by a nested write
// stops early: the nested write already announced the fresh value to
// every current listener, and no listener observes an older value
// after a newer one.
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	gen       uint64
	equals    func(a, b T) bool
	listeners []*listener[T]
}

type listener[T any] struct {
	fn      func(T)
	removed bool
}

// NewObservable creates an observable with the given initial value.
// Values are compared with a shallow any-equality; use
// NewObservableWithEquality for custom comparison.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// NewObservableWithEquality creates an observable whose change detection
// uses equals. Listeners fire only when equals(old, new) reports false.
func NewObservableWithEquality[T any](initial T, equals func(a, b T) bool) *Observable[T] {
	return &Observable[T]{value: initial, equals: equals}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set updates the value and notifies listeners if it changed.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.sameLocked(value) {
		o.mu.Unlock()
		return
	}
	o.value = value
	o.gen++
	gen := o.gen
	snapshot := make([]*listener[T], len(o.listeners))
	copy(snapshot, o.listeners)
	o.mu.Unlock()

	for _, l := range snapshot {
		o.mu.Lock()
		superseded := o.gen != gen
		removed := l.removed
		o.mu.Unlock()
		if superseded {
			// A nested Set changed the value again and notified every
			// current listener with the newer one; delivering the rest
			// of this pass would hand out a stale value after the
			// fresh one was announced.
			return
		}
		if !removed {
			l.fn(value)
		}
	}
}

// AddListener registers fn to be called on every change.
// It returns an unsubscribe function.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	l := &listener[T]{fn: fn}
	o.mu.Lock()
	o.listeners = append(o.listeners, l)
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		l.removed = true
		for i, cur := range o.listeners {
			if cur == l {
				o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
				break
			}
		}
	}
}

// HasListeners reports whether any listener is registered.
func (o *Observable[T]) HasListeners() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.listeners) > 0
}

func (o *Observable[T]) sameLocked(value T) bool {
	if o.equals != nil {
		return o.equals(o.value, value)
	}
	return shallowEqual(o.value, value)
}

// shallowEqual compares via interface equality. Non-comparable types
// (slices, maps) always report unequal, which errs on the side of
// notifying.
func shallowEqual[T any](a, b T) (eq bool) {
	defer func() { _ = recover() }()
	eq = any(a) == any(b)
	return eq
}
