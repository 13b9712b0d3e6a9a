package timing

import (
	"sync"
	"time"
)

var (
	timerMu       sync.Mutex
	activeTimers  []*Timer
	activeTickers []*Ticker
)

// Timer is a one-shot scheduled callback. It fires during the first
// [Step] call whose clock time is at or past the deadline, then
// deactivates itself. Stop cancels a pending timer; stopping a fired
// timer is a no-op.
type Timer struct {
	callback func()
	deadline time.Time
	isActive bool
}

// After schedules fn to run d from now and returns the timer.
func After(d time.Duration, fn func()) *Timer {
	t := &Timer{
		callback: fn,
		deadline: Now().Add(d),
		isActive: true,
	}
	timerMu.Lock()
	activeTimers = append(activeTimers, t)
	timerMu.Unlock()
	return t
}

// Stop cancels the timer if it has not fired yet.
func (t *Timer) Stop() {
	timerMu.Lock()
	defer timerMu.Unlock()
	t.deactivateLocked()
}

// IsActive reports whether the timer is still pending.
func (t *Timer) IsActive() bool {
	timerMu.Lock()
	defer timerMu.Unlock()
	return t.isActive
}

func (t *Timer) deactivateLocked() {
	if !t.isActive {
		return
	}
	t.isActive = false
	for i, cur := range activeTimers {
		if cur == t {
			activeTimers = append(activeTimers[:i], activeTimers[i+1:]...)
			break
		}
	}
}

// Ticker calls a callback on each Step while active. The callback
// receives the elapsed time since Start, letting callers derive
// interval counts independent of step granularity.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	timerMu.Lock()
	activeTickers = append(activeTickers, t)
	timerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	timerMu.Lock()
	for i, cur := range activeTickers {
		if cur == t {
			activeTickers = append(activeTickers[:i], activeTickers[i+1:]...)
			break
		}
	}
	timerMu.Unlock()
}

// IsActive reports whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// Step fires due timers and ticks active tickers.
// Hosts call this once per frame from their event loop.
func Step() {
	now := Now()

	timerMu.Lock()
	var due []*Timer
	for _, t := range activeTimers {
		if !now.Before(t.deadline) {
			due = append(due, t)
		}
	}
	for _, t := range due {
		t.deactivateLocked()
	}
	tickers := make([]*Ticker, len(activeTickers))
	copy(tickers, activeTickers)
	timerMu.Unlock()

	for _, t := range due {
		if t.callback != nil {
			t.callback()
		}
	}
	for _, t := range tickers {
		if t.isActive && t.callback != nil {
			t.callback(now.Sub(t.start))
		}
	}
}

// HasScheduled reports whether any timer or ticker is active.
func HasScheduled() bool {
	timerMu.Lock()
	defer timerMu.Unlock()
	return len(activeTimers) > 0 || len(activeTickers) > 0
}
