package button

import (
	"time"

	"github.com/go-drift/sol/pkg/core"
	"github.com/go-drift/sol/pkg/timing"
)

// PushOptions configures a PushModel.
type PushOptions struct {
	// FireOnDown fires the action on the down edge instead of the
	// release; the release goes unobserved.
	FireOnDown bool
	// FireOnHold repeats the action while the button is held: one fire
	// after HoldDelay, then one every HoldInterval until release or
	// disable.
	FireOnHold bool
	// Options carries shared timing and validation configuration.
	Options Options
}

// PushModel is the edge-fired trigger discipline. By default it fires
// exactly once when Down falls while the gesture ends over the button,
// or on a synthetic activation; with FireOnDown it fires on the rising
// edge instead. It never fires from steady state and never fires when
// the gesture was interrupted rather than released.
type PushModel struct {
	// Model is the composed interaction core.
	Model *Model
	// Fired notifies once per logical action, after all side effects.
	Fired *core.Notifier

	fireOnDown bool
	hold       *holdRepeater
	unsubs     []func()
}

// NewPushModel creates a push trigger with a fresh interaction core.
func NewPushModel(opts PushOptions) *PushModel {
	p := &PushModel{
		Model:      NewModel(),
		Fired:      core.NewNotifier(),
		fireOnDown: opts.FireOnDown,
	}
	if opts.FireOnHold {
		p.hold = newHoldRepeater(opts.Options.holdDelay(), opts.Options.holdInterval(), p.fire)
	}
	p.unsubs = append(p.unsubs,
		p.Model.Down.AddListener(p.onDown),
		p.Model.Activated.AddListener(p.onActivated),
		p.Model.Enabled.AddListener(p.onEnabled),
	)
	return p
}

// Dispose releases the trigger and its interaction core.
func (p *PushModel) Dispose() {
	if p.Model.IsDisposed() {
		return
	}
	if p.hold != nil {
		p.hold.cancel()
	}
	for _, unsub := range p.unsubs {
		unsub()
	}
	p.unsubs = nil
	p.Model.Dispose()
}

func (p *PushModel) onDown(down bool) {
	enabled := p.Model.Enabled.Value()
	if down {
		if !enabled {
			return
		}
		if p.fireOnDown {
			p.fire()
		}
		if p.hold != nil {
			p.hold.begin()
		}
		return
	}
	holdFired := false
	if p.hold != nil {
		holdFired = p.hold.fired > 0
		p.hold.cancel()
	}
	if !enabled || p.fireOnDown {
		return
	}
	// Release-fired: the gesture must end over the button, and a
	// forced interruption is not a release. Once the hold repeater
	// has fired, the release adds nothing; a quick tap that never
	// reached the first delay still fires once.
	if holdFired {
		return
	}
	if p.Model.Over.Value() && !p.Model.Interrupted.Value() {
		p.fire()
	}
}

func (p *PushModel) onActivated() {
	if p.Model.Enabled.Value() {
		p.fire()
	}
}

func (p *PushModel) onEnabled(enabled bool) {
	if !enabled && p.hold != nil {
		p.hold.cancel()
	}
}

func (p *PushModel) fire() {
	p.Fired.Notify()
}

// holdRepeater is the fire-on-hold sub-state machine: Idle until a
// press begins, WaitingFirstDelay until D1 elapses, then Repeating with
// one fire per D2. Fires are derived from total elapsed time rather
// than per-tick increments, so step granularity cannot drop or double
// a repeat.
type holdRepeater struct {
	delay    time.Duration
	interval time.Duration
	fire     func()

	ticker    *timing.Ticker
	repeating bool
	fired     int
}

func newHoldRepeater(delay, interval time.Duration, fire func()) *holdRepeater {
	h := &holdRepeater{delay: delay, interval: interval, fire: fire}
	h.ticker = timing.NewTicker(h.tick)
	return h
}

func (h *holdRepeater) begin() {
	h.repeating = false
	h.fired = 0
	h.ticker.Start()
}

// cancel stops the repeater immediately; any pending fire is dropped.
func (h *holdRepeater) cancel() {
	h.ticker.Stop()
	h.repeating = false
	h.fired = 0
}

func (h *holdRepeater) tick(elapsed time.Duration) {
	if elapsed < h.delay {
		return
	}
	h.repeating = true
	want := 1 + int((elapsed-h.delay)/h.interval)
	for h.fired < want {
		h.fired++
		h.fire()
		if !h.ticker.IsActive() {
			// A fire's side effects cancelled the hold.
			return
		}
	}
}
