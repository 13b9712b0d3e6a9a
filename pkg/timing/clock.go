// Package timing provides the cooperative, frame-stepped timing
// primitives behind deferred button behavior: the fire-on-hold repeat
// machinery and the accessibility press-highlight interval.
//
// Nothing here blocks. Hosts call [Step] once per frame; due timers and
// active tickers run their callbacks synchronously inside that call.
// Tests drive time explicitly with a fake [Clock] installed via
// [SetClock] and repeated Step calls.
package timing

import "time"

// Clock provides time for scheduled callbacks. The default
// implementation uses system time. Tests can inject a fake clock via
// SetClock to control timing deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the timing clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
