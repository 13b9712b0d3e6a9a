// Package testing provides test support for sol: a controllable clock
// for the timing package and a pointer simulator for driving button
// engagement sources through gestures. Import it as soltest.
package testing

import (
	"sync"
	"testing"
	"time"

	"github.com/go-drift/sol/pkg/timing"
)

// FakeClock provides controllable time for deterministic timer tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// AdvanceAndStep moves the clock forward by d and runs one timing step,
// firing whatever came due.
func (c *FakeClock) AdvanceAndStep(d time.Duration) {
	c.Advance(d)
	timing.Step()
}

// InstallClock installs a fresh FakeClock into the timing package and
// restores the previous clock when the test finishes.
func InstallClock(t *testing.T) *FakeClock {
	t.Helper()
	c := NewFakeClock()
	prev := timing.SetClock(c)
	t.Cleanup(func() { timing.SetClock(prev) })
	return c
}
