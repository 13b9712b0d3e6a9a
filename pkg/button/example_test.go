package button_test

import (
	"fmt"

	"github.com/go-drift/sol/pkg/button"
	"github.com/go-drift/sol/pkg/core"
)

// This example shows how to wire a push trigger to an engagement source.
// In an application the source's setters would be driven by a platform
// pointer stream; here we drive them directly.
func ExamplePushModel() {
	push := button.NewPushModel(button.PushOptions{})
	defer push.Dispose()

	// React to fires
	push.Fired.AddListener(func() {
		fmt.Println("fired!")
	})

	// Attach a source and play one press-and-release over the button
	src := push.Model.AttachSource(button.NewSource(button.Options{}))
	src.SetOver(true)
	src.SetPressed(true)
	src.SetPressed(false)

	// Output:
	// fired!
}

// This example shows a toggle trigger bound to a shared observable.
// The observable can also be read or written by other collaborators.
func ExampleToggleModel() {
	muted := core.NewObservable(false)
	toggle := button.NewToggleModel(muted, false, true, button.Options{})
	defer toggle.Dispose()

	muted.AddListener(func(v bool) {
		fmt.Printf("muted: %v\n", v)
	})

	// Two full press-and-release cycles flip the value there and back
	src := toggle.Model.AttachSource(button.NewSource(button.Options{}))
	src.SetOver(true)
	for i := 0; i < 2; i++ {
		src.SetPressed(true)
		src.SetPressed(false)
	}

	// Output:
	// muted: true
	// muted: false
}

// This example shows how the interaction state drives presentation:
// the model folds its flags into a single paint state on every change.
func ExampleModel_states() {
	m := button.NewModel()
	defer m.Dispose()

	m.Interaction.AddListener(func(s button.InteractionState) {
		fmt.Println(s)
	})

	src := m.AttachSource(button.NewSource(button.Options{}))
	src.SetOver(true)     // pointer enters the bounds
	src.SetPressed(true)  // press
	src.SetPressed(false) // release
	src.SetOver(false)    // pointer leaves

	// Output:
	// over
	// pressed
	// over
	// idle
}

// This example shows a momentary trigger, whose store simply mirrors
// whether the button is held.
func ExampleMomentaryModel() {
	talking := core.NewObservable("idle")
	ptt := button.NewMomentaryModel(talking, "idle", "transmit", button.Options{})
	defer ptt.Dispose()

	talking.AddListener(func(v string) {
		fmt.Println(v)
	})

	src := ptt.Model.AttachSource(button.NewSource(button.Options{}))
	src.SetOver(true)
	src.SetPressed(true)
	src.SetPressed(false)

	// Output:
	// transmit
	// idle
}
