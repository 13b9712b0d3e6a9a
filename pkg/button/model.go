package button

import (
	"github.com/go-drift/sol/pkg/core"
	"github.com/go-drift/sol/pkg/errors"
)

// Model is the interaction core shared by every concrete button. It
// aggregates any number of attached [Source]s, owns the canonical
// over/down/focused/enabled flags, and derives the visual looks-pressed
// and looks-over state by OR-reduction across sources.
//
// Down may also be written directly, which supports headless and
// programmatic buttons with no attached sources; it is recomputed from
// raw source state whenever any attached source's pressed state
// changes, so one logical gesture spanning several pointers yields a
// single Down transition.
type Model struct {
	// Over is true while any attached source is over the button.
	Over *core.Observable[bool]
	// Down is true while any attached source is pressed. Writable
	// directly for headless buttons. Tolerates being re-written from
	// within its own change notification.
	Down *core.Observable[bool]
	// Focused is true while any attached source has focus.
	Focused *core.Observable[bool]
	// Enabled gates all triggering. Use SetEnabled to change it so
	// that disabling interrupts in-flight gestures.
	Enabled *core.Observable[bool]
	// Interrupted is raised for exactly one update cycle while forced
	// teardown drops engagement, whether from a disable or from an
	// attached source's Interrupt, letting trigger disciplines
	// distinguish "forced off" from "user released".
	Interrupted *core.Observable[bool]
	// LooksPressed is the OR of Down and every attached source's
	// looks-pressed state.
	LooksPressed *core.OrProperty
	// LooksOver is the OR of every attached source's looks-over state.
	LooksOver *core.OrProperty
	// Interaction is the derived visual state, recomputed synchronously
	// on every input change.
	Interaction *core.Observable[InteractionState]
	// Activated relays synthetic activations from attached sources.
	Activated *core.Notifier

	sources      []*Source
	sourceUnsubs map[*Source][]func()
	unsubs       []func()
	disposed     bool
}

// NewModel creates an interaction core with no attached sources,
// enabled, with all flags false.
func NewModel() *Model {
	m := &Model{
		Over:         core.NewObservable(false),
		Down:         core.NewObservable(false),
		Focused:      core.NewObservable(false),
		Enabled:      core.NewObservable(true),
		Interrupted:  core.NewObservable(false),
		Interaction:  core.NewObservable(StateIdle),
		Activated:    core.NewNotifier(),
		sourceUnsubs: make(map[*Source][]func()),
	}
	m.LooksPressed = core.NewOrProperty(m.Down)
	m.LooksOver = core.NewOrProperty()

	m.unsubs = append(m.unsubs,
		m.Enabled.AddListener(func(bool) { m.deriveInteraction() }),
		m.LooksPressed.AddListener(func(bool) { m.deriveInteraction() }),
		m.LooksOver.AddListener(func(bool) { m.deriveInteraction() }),
	)
	return m
}

// AttachSource registers a source with this model and returns it, so
// the input layer can keep ownership of the engagement it created.
// Attaching the same source twice is a contract violation.
func (m *Model) AttachSource(s *Source) *Source {
	const op = "button.Model.AttachSource"
	m.checkLive(op)
	errors.Assertf(!m.isAttached(s), op, errors.KindContract, "source already attached")

	m.sources = append(m.sources, s)
	m.sourceUnsubs[s] = []func(){
		s.Pressed.AddListener(func(pressed bool) {
			if !pressed && s.Interrupted.Value() {
				m.recomputeRawInterrupted()
				return
			}
			m.recomputeRaw()
		}),
		s.Over.AddListener(func(bool) { m.recomputeRaw() }),
		s.Focused.AddListener(func(bool) { m.recomputeRaw() }),
		s.Activated.AddListener(func() { m.Activated.Notify() }),
	}
	m.relinkLooks()
	m.recomputeRaw()
	return s
}

// DetachSource unregisters a source without disposing it. Detaching a
// source that is not attached is a contract violation.
func (m *Model) DetachSource(s *Source) {
	const op = "button.Model.DetachSource"
	m.checkLive(op)
	errors.Assertf(m.isAttached(s), op, errors.KindContract, "source not attached")

	for _, unsub := range m.sourceUnsubs[s] {
		unsub()
	}
	delete(m.sourceUnsubs, s)
	for i, cur := range m.sources {
		if cur == s {
			m.sources = append(m.sources[:i], m.sources[i+1:]...)
			break
		}
	}
	m.relinkLooks()
	m.recomputeRaw()
}

// Sources returns the attached sources in attachment order.
func (m *Model) Sources() []*Source {
	out := make([]*Source, len(m.sources))
	copy(out, m.sources)
	return out
}

// SetEnabled enables or disables the button.
//
// Disabling interrupts every attached source in attachment order and
// forces Down off, so LooksPressed is false before SetEnabled returns;
// Interrupted reads true for the duration of that forced shutdown.
// Enabling takes no special action: a fresh gesture is required.
func (m *Model) SetEnabled(enabled bool) {
	m.checkLive("button.Model.SetEnabled")
	if enabled == m.Enabled.Value() {
		return
	}
	if enabled {
		m.Enabled.Set(true)
		return
	}
	m.Interrupted.Set(true)
	for _, s := range m.sources {
		s.Interrupt()
	}
	m.Down.Set(false)
	m.Enabled.Set(false)
	m.Interrupted.Set(false)
}

// Dispose detaches and disposes all sources and releases the derived
// state wiring. Further use of the model is a contract violation.
func (m *Model) Dispose() {
	if m.disposed {
		return
	}
	for _, s := range m.sources {
		for _, unsub := range m.sourceUnsubs[s] {
			unsub()
		}
		s.Dispose()
	}
	m.sources = nil
	m.sourceUnsubs = nil
	for _, unsub := range m.unsubs {
		unsub()
	}
	m.unsubs = nil
	m.LooksPressed.Dispose()
	m.LooksOver.Dispose()
	m.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (m *Model) IsDisposed() bool {
	return m.disposed
}

func (m *Model) isAttached(s *Source) bool {
	for _, cur := range m.sources {
		if cur == s {
			return true
		}
	}
	return false
}

// relinkLooks rebuilds the OR-aggregation over the current source set.
// LooksPressed additionally folds in Down to support headless buttons.
func (m *Model) relinkLooks() {
	pressedDeps := []*core.Observable[bool]{m.Down}
	overDeps := make([]*core.Observable[bool], 0, len(m.sources))
	for _, s := range m.sources {
		pressedDeps = append(pressedDeps, s.LooksPressed)
		overDeps = append(overDeps, s.LooksOver)
	}
	m.LooksPressed.Relink(pressedDeps...)
	m.LooksOver.Relink(overDeps...)
}

// recomputeRaw refreshes the canonical flags from raw source state.
// The OR is over current values only, so the result is independent of
// the order in which sources changed.
func (m *Model) recomputeRaw() {
	anyPressed, anyOver, anyFocused := false, false, false
	for _, s := range m.sources {
		anyPressed = anyPressed || s.Pressed.Value()
		anyOver = anyOver || s.Over.Value()
		anyFocused = anyFocused || s.Focused.Value()
	}
	m.Over.Set(anyOver)
	m.Focused.Set(anyFocused)
	m.Down.Set(anyPressed)
}

// recomputeRawInterrupted is recomputeRaw under a raised Interrupted
// flag, used when a source's press dropped because it was interrupted
// rather than released: a trigger discipline observing the resulting
// Down fall must see the cancellation, not a valid release. The flag
// is left alone when already raised (SetEnabled interrupts sources
// under its own cycle).
func (m *Model) recomputeRawInterrupted() {
	if m.Interrupted.Value() {
		m.recomputeRaw()
		return
	}
	m.Interrupted.Set(true)
	m.recomputeRaw()
	m.Interrupted.Set(false)
}

func (m *Model) deriveInteraction() {
	m.Interaction.Set(DeriveState(m.Enabled.Value(), m.LooksOver.Value(), m.LooksPressed.Value()))
}

func (m *Model) checkLive(op string) {
	errors.Assertf(!m.disposed, op, errors.KindDisposed, "model used after Dispose")
}
