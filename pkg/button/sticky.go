package button

import "github.com/go-drift/sol/pkg/core"

// StickyModel is the press-fired toggle discipline: the store flips to
// its down value on the down edge, so the button visually sticks, and a
// later, independent press-and-release pops it back up.
//
// The subtlety is the release that immediately follows the press which
// set the store: a naive "toggle on any edge" would undo the press on
// the very gesture that made it. StickyModel consumes that first
// release as a no-op via the pressedWhileDown guard, so only the next
// full cycle releases the latch.
//
// The Up/Down machine state is re-derived from the store's current
// value on every event, never cached, so external store mutation (a
// keyboard shortcut elsewhere, instrumentation replay) stays
// consistent with physical input.
type StickyModel[T comparable] struct {
	// Model is the composed interaction core.
	Model *Model
	// Store is the bound two-valued store; Up corresponds to the off
	// value, Down (latched) to the on value.
	Store *Store[T]
	// Toggled notifies once per store flip, after the mutation.
	Toggled *core.Notifier

	pressedWhileDown bool
	mutating         bool
	unsubs           []func()
}

// NewStickyModel creates a sticky toggle trigger over the given
// observable, with up as the unlatched and down as the latched value.
func NewStickyModel[T comparable](obs *core.Observable[T], up, down T, opts Options) *StickyModel[T] {
	s := &StickyModel[T]{
		Model:   NewModel(),
		Store:   NewStore(obs, up, down, opts),
		Toggled: core.NewNotifier(),
	}
	s.unsubs = append(s.unsubs,
		s.Model.Down.AddListener(s.onDown),
		s.Model.Enabled.AddListener(s.onEnabled),
		s.Store.AddListener(s.onStoreChanged),
	)
	return s
}

// IsLatched reports whether the store holds the down value.
func (s *StickyModel[T]) IsLatched() bool {
	return s.Store.Value() == s.Store.On()
}

// Dispose releases the trigger and its interaction core.
func (s *StickyModel[T]) Dispose() {
	if s.Model.IsDisposed() {
		return
	}
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
	s.Model.Dispose()
}

func (s *StickyModel[T]) onDown(down bool) {
	if !s.Model.Enabled.Value() {
		return
	}
	if down {
		if !s.IsLatched() {
			s.setStore(s.Store.On())
			s.pressedWhileDown = false
		}
		return
	}
	if s.Model.Interrupted.Value() {
		// An interrupted gesture can never be the latch's consuming
		// release. Arm the guard so the next full cycle unlatches,
		// even when the cancelled gesture was the one that latched.
		if s.IsLatched() {
			s.pressedWhileDown = true
		}
		return
	}
	if !s.IsLatched() {
		return
	}
	if !s.Model.Over.Value() {
		// Released off-button after dragging out: don't unlatch, but
		// arm the guard so the next cycle behaves normally instead of
		// leaving the button stuck.
		s.pressedWhileDown = true
		return
	}
	if s.pressedWhileDown {
		s.setStore(s.Store.Off())
	} else {
		// The release of the same gesture that latched the button is
		// consumed as a no-op.
		s.pressedWhileDown = true
	}
}

func (s *StickyModel[T]) onEnabled(enabled bool) {
	if enabled {
		// Whatever gesture state existed before the disable is gone;
		// the next release must unlatch.
		s.pressedWhileDown = true
	}
}

// onStoreChanged arms the guard when the store was mutated externally,
// so a following independent press/release cycle toggles as expected.
func (s *StickyModel[T]) onStoreChanged(T) {
	if !s.mutating {
		s.pressedWhileDown = true
	}
}

func (s *StickyModel[T]) setStore(v T) {
	s.mutating = true
	s.Store.Set(v)
	s.mutating = false
	s.Toggled.Notify()
}
