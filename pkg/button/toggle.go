package button

import "github.com/go-drift/sol/pkg/core"

// ToggleModel is the release-fired trigger discipline: when Down falls
// while the button is enabled, the gesture ends over the button, and
// the release was not a forced interruption, the bound store flips
// between its off and on values. Releasing after the pointer left the
// button's bounds does not fire.
type ToggleModel[T comparable] struct {
	// Model is the composed interaction core.
	Model *Model
	// Store is the bound two-valued store.
	Store *Store[T]
	// Toggled notifies once per flip, after the store mutation.
	Toggled *core.Notifier

	unsubs []func()
}

// NewToggleModel creates a toggle trigger over the given observable,
// flipping it between off and on.
func NewToggleModel[T comparable](obs *core.Observable[T], off, on T, opts Options) *ToggleModel[T] {
	t := &ToggleModel[T]{
		Model:   NewModel(),
		Store:   NewStore(obs, off, on, opts),
		Toggled: core.NewNotifier(),
	}
	t.unsubs = append(t.unsubs, t.Model.Down.AddListener(t.onDown))
	return t
}

// Dispose releases the trigger and its interaction core.
func (t *ToggleModel[T]) Dispose() {
	if t.Model.IsDisposed() {
		return
	}
	for _, unsub := range t.unsubs {
		unsub()
	}
	t.unsubs = nil
	t.Model.Dispose()
}

func (t *ToggleModel[T]) onDown(down bool) {
	if down {
		return
	}
	if !t.Model.Enabled.Value() || t.Model.Interrupted.Value() || !t.Model.Over.Value() {
		return
	}
	current := t.Store.Value()
	if current == t.Store.Off() {
		t.Store.Set(t.Store.On())
	} else {
		t.Store.Set(t.Store.Off())
	}
	t.Toggled.Notify()
}
