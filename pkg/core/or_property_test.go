package core_test

import (
	"testing"

	"github.com/go-drift/sol/pkg/core"
)

func TestOrProperty_Empty(t *testing.T) {
	p := core.NewOrProperty()
	if p.Value() {
		t.Error("OR over no dependencies should be false")
	}
}

func TestOrProperty_TracksDependencies(t *testing.T) {
	a := core.NewObservable(false)
	b := core.NewObservable(false)
	p := core.NewOrProperty(a, b)

	var seen []bool
	p.AddListener(func(v bool) { seen = append(seen, v) })

	a.Set(true)
	if !p.Value() {
		t.Error("expected true after a=true")
	}
	b.Set(true)
	a.Set(false)
	if !p.Value() {
		t.Error("expected true while b still true")
	}
	b.Set(false)
	if p.Value() {
		t.Error("expected false after all dependencies false")
	}

	// Only genuine transitions notify: false->true, true->false.
	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Errorf("listener saw %v, want [true false]", seen)
	}
}

// The derived value must depend only on current dependency values,
// never on the order in which they changed.
func TestOrProperty_OrderIndependent(t *testing.T) {
	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 0, 2}}
	for _, order := range orders {
		deps := []*core.Observable[bool]{
			core.NewObservable(false),
			core.NewObservable(false),
			core.NewObservable(false),
		}
		p := core.NewOrProperty(deps...)

		for _, i := range order {
			deps[i].Set(true)
			if !p.Value() {
				t.Fatalf("order %v: expected true after setting dep %d", order, i)
			}
		}
		for _, i := range order {
			deps[i].Set(false)
		}
		if p.Value() {
			t.Errorf("order %v: expected false after clearing all deps", order)
		}
	}
}

func TestOrProperty_Relink(t *testing.T) {
	a := core.NewObservable(true)
	b := core.NewObservable(false)
	p := core.NewOrProperty(a)

	if !p.Value() {
		t.Fatal("expected true with a=true")
	}

	p.Relink(b)
	if p.Value() {
		t.Error("expected false after relinking to b=false")
	}

	// Old dependency must be unlinked.
	a.Set(false)
	a.Set(true)
	if p.Value() {
		t.Error("unlinked dependency should not affect the value")
	}

	b.Set(true)
	if !p.Value() {
		t.Error("expected true after b=true")
	}
}

func TestOrProperty_Dispose(t *testing.T) {
	a := core.NewObservable(false)
	p := core.NewOrProperty(a)
	p.Dispose()

	a.Set(true)
	if p.Value() {
		t.Error("disposed property should stop updating")
	}
}
