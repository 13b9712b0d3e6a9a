package button

import "time"

// Defaults for trigger timing. Overridable per model via Options, or
// globally through a loaded config.Config.
const (
	// DefaultHoldDelay is the initial delay before a fire-on-hold
	// push button starts repeating.
	DefaultHoldDelay = 400 * time.Millisecond
	// DefaultHoldInterval is the repeat interval once a fire-on-hold
	// push button is repeating.
	DefaultHoldInterval = 100 * time.Millisecond
	// DefaultPressHighlight is the minimum interval a button keeps its
	// pressed look after a synthetic (assistive technology) activation,
	// so the user gets visible confirmation of an instantaneous
	// press-and-release.
	DefaultPressHighlight = 100 * time.Millisecond
)

// Options carries cross-cutting model configuration. The zero value is
// usable; zero durations fall back to the package defaults. Callers
// that previously reached for ambient switches (a global fuzz flag, a
// global timing table) pass them here instead.
type Options struct {
	// HoldDelay is the fire-on-hold initial delay (D1).
	HoldDelay time.Duration
	// HoldInterval is the fire-on-hold repeat interval (D2).
	HoldInterval time.Duration
	// PressHighlight is the minimum synthetic-activation highlight
	// interval.
	PressHighlight time.Duration
	// LenientValues disables the two-value domain assertion on bound
	// stores. Intended for fuzz harnesses that drive stores with
	// arbitrary values; leave false in production.
	LenientValues bool
}

func (o Options) holdDelay() time.Duration {
	if o.HoldDelay > 0 {
		return o.HoldDelay
	}
	return DefaultHoldDelay
}

func (o Options) holdInterval() time.Duration {
	if o.HoldInterval > 0 {
		return o.HoldInterval
	}
	return DefaultHoldInterval
}

func (o Options) pressHighlight() time.Duration {
	if o.PressHighlight > 0 {
		return o.PressHighlight
	}
	return DefaultPressHighlight
}
