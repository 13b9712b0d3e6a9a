package timing_test

import (
	"testing"
	"time"

	soltest "github.com/go-drift/sol/pkg/testing"
	"github.com/go-drift/sol/pkg/timing"
)

func TestTimer_FiresAtDeadline(t *testing.T) {
	clock := soltest.InstallClock(t)

	fired := 0
	timer := timing.After(100*time.Millisecond, func() { fired++ })

	clock.AdvanceAndStep(99 * time.Millisecond)
	if fired != 0 {
		t.Errorf("fired %d times before deadline", fired)
	}

	clock.AdvanceAndStep(1 * time.Millisecond)
	if fired != 1 {
		t.Errorf("fired %d times at deadline, want 1", fired)
	}
	if timer.IsActive() {
		t.Error("timer should deactivate after firing")
	}

	// One-shot: further steps must not re-fire.
	clock.AdvanceAndStep(200 * time.Millisecond)
	if fired != 1 {
		t.Errorf("fired %d times total, want 1", fired)
	}
}

func TestTimer_Stop(t *testing.T) {
	clock := soltest.InstallClock(t)

	fired := false
	timer := timing.After(50*time.Millisecond, func() { fired = true })
	timer.Stop()

	clock.AdvanceAndStep(100 * time.Millisecond)
	if fired {
		t.Error("stopped timer must not fire")
	}
}

func TestTicker_ElapsedPerStep(t *testing.T) {
	clock := soltest.InstallClock(t)

	var seen []time.Duration
	ticker := timing.NewTicker(func(elapsed time.Duration) {
		seen = append(seen, elapsed)
	})
	ticker.Start()
	defer ticker.Stop()

	clock.AdvanceAndStep(10 * time.Millisecond)
	clock.AdvanceAndStep(15 * time.Millisecond)

	if len(seen) != 2 || seen[0] != 10*time.Millisecond || seen[1] != 25*time.Millisecond {
		t.Errorf("ticker saw %v, want [10ms 25ms]", seen)
	}
}

func TestTicker_StopInsideCallback(t *testing.T) {
	clock := soltest.InstallClock(t)

	var ticker *timing.Ticker
	ticks := 0
	ticker = timing.NewTicker(func(time.Duration) {
		ticks++
		ticker.Stop()
	})
	ticker.Start()

	clock.AdvanceAndStep(5 * time.Millisecond)
	clock.AdvanceAndStep(5 * time.Millisecond)

	if ticks != 1 {
		t.Errorf("ticks = %d, want 1 after self-stop", ticks)
	}
	if timing.HasScheduled() {
		t.Error("expected no scheduled work after stop")
	}
}

func TestStep_MultipleDueTimersFireOnce(t *testing.T) {
	clock := soltest.InstallClock(t)

	var order []int
	timing.After(10*time.Millisecond, func() { order = append(order, 1) })
	timing.After(20*time.Millisecond, func() { order = append(order, 2) })

	// Both come due within a single step.
	clock.AdvanceAndStep(30 * time.Millisecond)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("fire order = %v, want [1 2]", order)
	}
}
