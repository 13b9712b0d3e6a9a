package button

import (
	"time"

	"github.com/go-drift/sol/pkg/core"
	"github.com/go-drift/sol/pkg/errors"
	"github.com/go-drift/sol/pkg/timing"
)

// Source is one active input channel engaging a button: a finger of a
// multi-touch gesture, the mouse, or the keyboard. The input layer
// creates a Source when a channel begins targeting a button, feeds raw
// events into it, and disposes it when the channel disengages.
//
// Raw state (Pressed, Over, Focused) tracks the physical channel.
// Visual state (LooksPressed, LooksOver) normally mirrors it, diverging
// only while a synthetic activation highlight is in effect: Activate
// completes press and release instantaneously, but the button keeps its
// pressed look for a minimum interval so the user sees confirmation.
type Source struct {
	// Pressed is the raw pressed state of this channel.
	Pressed *core.Observable[bool]
	// Over is the raw over state of this channel.
	Over *core.Observable[bool]
	// Focused is the raw focus state of this channel.
	Focused *core.Observable[bool]
	// LooksPressed is the visually communicated pressed state.
	LooksPressed *core.Observable[bool]
	// LooksOver is the visually communicated over state.
	LooksOver *core.Observable[bool]
	// Interrupted is true after Interrupt until the next engagement.
	Interrupted *core.Observable[bool]
	// Activated fires once per synthetic activation.
	Activated *core.Notifier

	highlight      bool
	highlightTimer *timing.Timer
	highlightFor   time.Duration
	unsubs         []func()
	disposed       bool
}

// NewSource creates a source with the given options.
func NewSource(opts Options) *Source {
	s := &Source{
		Pressed:      core.NewObservable(false),
		Over:         core.NewObservable(false),
		Focused:      core.NewObservable(false),
		LooksPressed: core.NewObservable(false),
		LooksOver:    core.NewObservable(false),
		Interrupted:  core.NewObservable(false),
		Activated:    core.NewNotifier(),
		highlightFor: opts.pressHighlight(),
	}
	s.unsubs = append(s.unsubs,
		s.Pressed.AddListener(func(bool) { s.updateLooks() }),
		s.Over.AddListener(func(bool) { s.updateLooks() }),
	)
	return s
}

// SetPressed updates the raw pressed state. A fresh press clears any
// prior interruption.
func (s *Source) SetPressed(pressed bool) {
	s.checkLive("button.Source.SetPressed")
	if pressed {
		s.Interrupted.Set(false)
	}
	s.Pressed.Set(pressed)
}

// SetOver updates the raw over state.
func (s *Source) SetOver(over bool) {
	s.checkLive("button.Source.SetOver")
	s.Over.Set(over)
}

// SetFocused updates the raw focus state.
func (s *Source) SetFocused(focused bool) {
	s.checkLive("button.Source.SetFocused")
	s.Focused.Set(focused)
}

// Interrupt forcibly terminates the engagement: raw pressed and over
// drop to false, any pending activation highlight is cancelled, and
// Interrupted is raised so downstream consumers can distinguish a
// forced release from a user release. Used on disable and on external
// input cancellation such as a scroll take-over.
func (s *Source) Interrupt() {
	s.checkLive("button.Source.Interrupt")
	s.clearHighlight()
	s.Interrupted.Set(true)
	s.Pressed.Set(false)
	s.Over.Set(false)
}

// Activate performs a synthetic activation on behalf of assistive
// technology: the logical press and release complete before Activate
// returns, while the pressed look is held for the configured minimum
// highlight interval and cleared by a scheduled callback.
func (s *Source) Activate() {
	s.checkLive("button.Source.Activate")
	if s.highlightTimer != nil {
		s.highlightTimer.Stop()
	}
	s.highlight = true
	s.updateLooks()
	s.highlightTimer = timing.After(s.highlightFor, func() {
		s.highlight = false
		s.highlightTimer = nil
		if !s.disposed {
			s.updateLooks()
		}
	})
	s.Activated.Notify()
}

// Dispose releases the source. Further use is a contract violation.
func (s *Source) Dispose() {
	if s.disposed {
		return
	}
	s.clearHighlight()
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
	s.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (s *Source) IsDisposed() bool {
	return s.disposed
}

func (s *Source) updateLooks() {
	s.LooksPressed.Set(s.Pressed.Value() || s.highlight)
	s.LooksOver.Set(s.Over.Value() || s.highlight)
}

func (s *Source) clearHighlight() {
	if s.highlightTimer != nil {
		s.highlightTimer.Stop()
		s.highlightTimer = nil
	}
	s.highlight = false
}

func (s *Source) checkLive(op string) {
	errors.Assertf(!s.disposed, op, errors.KindDisposed, "source used after Dispose")
}
