package button_test

import (
	"testing"

	"github.com/go-drift/sol/pkg/button"
	"github.com/go-drift/sol/pkg/core"
)

func TestStore_Accessors(t *testing.T) {
	store := button.NewStore(core.NewObservable("a"), "a", "b", button.Options{})
	if store.Off() != "a" || store.On() != "b" {
		t.Errorf("Off/On = %q/%q, want a/b", store.Off(), store.On())
	}
	if store.Value() != "a" {
		t.Errorf("Value = %q, want a", store.Value())
	}
	store.Set("b")
	if store.Value() != "b" {
		t.Errorf("Value = %q after Set, want b", store.Value())
	}
}

func TestStore_ListenerSeesExternalWrites(t *testing.T) {
	obs := core.NewObservable(0)
	store := button.NewStore(obs, 0, 1, button.Options{})

	var got []int
	unsub := store.AddListener(func(v int) { got = append(got, v) })
	defer unsub()

	store.Set(1)
	obs.Set(0) // external collaborator writing the shared observable

	if len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Errorf("listener saw %v, want [1 0]", got)
	}
}

func TestStore_InitialOutOfDomainPanics(t *testing.T) {
	quietErrors(t)
	defer func() {
		if recover() == nil {
			t.Error("expected out-of-domain initial value to panic")
		}
	}()
	button.NewStore(core.NewObservable(5), 0, 1, button.Options{})
}

func TestStore_SetOutOfDomainPanics(t *testing.T) {
	quietErrors(t)
	store := button.NewStore(core.NewObservable(0), 0, 1, button.Options{})
	defer func() {
		if recover() == nil {
			t.Error("expected out-of-domain Set to panic")
		}
	}()
	store.Set(7)
}

func TestStore_ReadSurfacesExternalIllegalWrite(t *testing.T) {
	quietErrors(t)
	obs := core.NewObservable(0)
	store := button.NewStore(obs, 0, 1, button.Options{})

	obs.Set(9) // bypasses the store's own validation

	defer func() {
		if recover() == nil {
			t.Error("expected the first read of an illegal value to panic")
		}
	}()
	store.Value()
}

func TestStore_LenientSkipsValidation(t *testing.T) {
	obs := core.NewObservable(5)
	store := button.NewStore(obs, 0, 1, button.Options{LenientValues: true})
	if store.Value() != 5 {
		t.Errorf("Value = %d, want 5", store.Value())
	}
	store.Set(9)
	if store.Value() != 9 {
		t.Errorf("Value = %d after Set, want 9", store.Value())
	}
}
