// Package button implements the shared interaction model behind every
// sol button: the state machine that turns raw pointer and keyboard
// engagement into a small, well-defined visual state, plus the four
// trigger disciplines that govern when a button's action fires.
//
// # Architecture
//
// Raw input flows through three layers, each owned by the one above it:
//
//   - [Source] — one active input channel (a finger, the mouse, the
//     keyboard) currently engaging a button. Tracks raw pressed, over,
//     and focused state plus the visual looks-pressed and looks-over
//     state, which may briefly diverge from raw state for assistive
//     technology activation feedback.
//
//   - [Model] — aggregates any number of Sources attached to one
//     button. Canonical Over/Down/Focused/Enabled flags, OR-reduced
//     LooksPressed and LooksOver, and a derived [InteractionState]
//     read by paint strategies. Disabling interrupts every attached
//     source synchronously; no gesture survives a disable.
//
//   - Trigger disciplines — [PushModel], [ToggleModel], [StickyModel],
//     and [MomentaryModel] each compose exactly one Model and mutate a
//     bound two-valued [Store] according to their own rules.
//
// # Threading
//
// The package assumes a single-threaded, cooperatively scheduled host
// loop: every derivation completes synchronously inside the input
// callback that caused it, so observers never see a stale value.
// Deferred behavior (fire-on-hold repeats, the accessibility press
// highlight) runs on scheduled callbacks via the timing package, never
// blocking sleeps.
//
// # Contract violations
//
// Double-attaching a source, writing a bound store to a value outside
// its two-value domain, and operating on a disposed model are caller
// bugs. They panic via errors.Assertf rather than being silently
// recovered.
package button
