package button

import "github.com/go-drift/sol/pkg/core"

// MomentaryModel is the gesture-duration discipline: the store is a
// live mirror of Down. Press sets the on value (when enabled), release
// restores the off value unconditionally, and disabling while on
// forces the off value immediately; a momentary control must never be
// left latched on. There is no edge-triggered firing.
type MomentaryModel[T comparable] struct {
	// Model is the composed interaction core.
	Model *Model
	// Store is the bound two-valued store.
	Store *Store[T]
	// Changed notifies once per store mutation, after it completes.
	Changed *core.Notifier

	unsubs []func()
}

// NewMomentaryModel creates a momentary trigger over the given
// observable, holding on while pressed and off otherwise.
func NewMomentaryModel[T comparable](obs *core.Observable[T], off, on T, opts Options) *MomentaryModel[T] {
	m := &MomentaryModel[T]{
		Model:   NewModel(),
		Store:   NewStore(obs, off, on, opts),
		Changed: core.NewNotifier(),
	}
	m.unsubs = append(m.unsubs,
		m.Model.Down.AddListener(m.onDown),
		m.Model.Enabled.AddListener(m.onEnabled),
	)
	return m
}

// Dispose releases the trigger and its interaction core.
func (m *MomentaryModel[T]) Dispose() {
	if m.Model.IsDisposed() {
		return
	}
	for _, unsub := range m.unsubs {
		unsub()
	}
	m.unsubs = nil
	m.Model.Dispose()
}

func (m *MomentaryModel[T]) onDown(down bool) {
	if down {
		if m.Model.Enabled.Value() {
			m.setStore(m.Store.On())
		}
		return
	}
	// Release restores off unconditionally, interrupted or not.
	m.setStore(m.Store.Off())
}

func (m *MomentaryModel[T]) onEnabled(enabled bool) {
	if !enabled && m.Store.Value() == m.Store.On() {
		m.setStore(m.Store.Off())
	}
}

func (m *MomentaryModel[T]) setStore(v T) {
	if m.Store.Value() == v {
		return
	}
	m.Store.Set(v)
	m.Changed.Notify()
}
