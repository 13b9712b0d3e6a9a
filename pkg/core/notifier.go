package core

import "sync"

// Notifier broadcasts valueless events to listeners.
// Unlike Observable, it carries no state; every Notify reaches every
// currently registered listener.
type Notifier struct {
	mu        sync.Mutex
	listeners []*notifierListener
}

type notifierListener struct {
	fn      func()
	removed bool
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddListener registers fn and returns an unsubscribe function.
func (n *Notifier) AddListener(fn func()) func() {
	l := &notifierListener{fn: fn}
	n.mu.Lock()
	n.listeners = append(n.listeners, l)
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		l.removed = true
		for i, cur := range n.listeners {
			if cur == l {
				n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
				break
			}
		}
	}
}

// Notify calls every registered listener in registration order.
func (n *Notifier) Notify() {
	n.mu.Lock()
	snapshot := make([]*notifierListener, len(n.listeners))
	copy(snapshot, n.listeners)
	n.mu.Unlock()

	for _, l := range snapshot {
		if !l.removed {
			l.fn()
		}
	}
}

// HasListeners reports whether any listener is registered.
func (n *Notifier) HasListeners() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners) > 0
}
