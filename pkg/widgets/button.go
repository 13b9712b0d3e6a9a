// Package widgets provides concrete buttons as thin skins over the
// interaction models in pkg/button: each widget owns one trigger
// model, resolves per-state colors from a theme, and forwards state
// changes to read-only appearance subscribers. Geometry and painting
// belong to the host scene graph, not to this package.
package widgets

import (
	"image/color"

	"github.com/go-drift/sol/pkg/button"
	"github.com/go-drift/sol/pkg/core"
	"github.com/go-drift/sol/pkg/theme"
)

// Appearance is a paint strategy: a read-only subscriber told whenever
// the button's visual state changes. Implementations must not mutate
// model state.
type Appearance interface {
	// InteractionChanged receives the new state and the theme color
	// resolved for it.
	InteractionChanged(state button.InteractionState, fill color.RGBA)
}

// AppearanceFunc adapts a function to the Appearance interface.
type AppearanceFunc func(state button.InteractionState, fill color.RGBA)

func (f AppearanceFunc) InteractionChanged(state button.InteractionState, fill color.RGBA) {
	f(state, fill)
}

// skin is the wiring shared by every concrete button: theme resolution
// and appearance fan-out over one interaction core.
type skin struct {
	model       *button.Model
	theme       theme.ButtonThemeData
	appearances []Appearance
	unsub       func()
}

func newSkin(m *button.Model, th theme.ButtonThemeData) *skin {
	s := &skin{model: m, theme: th}
	s.unsub = m.Interaction.AddListener(func(state button.InteractionState) {
		s.notify(state)
	})
	return s
}

func (s *skin) addAppearance(a Appearance) {
	s.appearances = append(s.appearances, a)
	state := s.model.Interaction.Value()
	a.InteractionChanged(state, s.theme.ColorFor(state))
}

func (s *skin) notify(state button.InteractionState) {
	fill := s.theme.ColorFor(state)
	for _, a := range s.appearances {
		a.InteractionChanged(state, fill)
	}
}

func (s *skin) dispose() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
	s.appearances = nil
}

// PushButton is a push-triggered button skin.
type PushButton struct {
	trigger *button.PushModel
	skin    *skin
}

// NewPushButton creates a push button with the given trigger options
// and the default theme.
func NewPushButton(opts button.PushOptions) *PushButton {
	return NewThemedPushButton(opts, theme.DefaultButtonTheme())
}

// NewThemedPushButton is NewPushButton with an explicit theme.
func NewThemedPushButton(opts button.PushOptions, th theme.ButtonThemeData) *PushButton {
	trigger := button.NewPushModel(opts)
	return &PushButton{trigger: trigger, skin: newSkin(trigger.Model, th)}
}

// Model returns the interaction core, for the input layer.
func (b *PushButton) Model() *button.Model { return b.trigger.Model }

// Fired returns the trigger's action notifier, for sound and
// narration layers.
func (b *PushButton) Fired() *core.Notifier { return b.trigger.Fired }

// AddAppearance registers a paint strategy and primes it with the
// current state.
func (b *PushButton) AddAppearance(a Appearance) { b.skin.addAppearance(a) }

// SetEnabled enables or disables the button, interrupting any
// in-flight gesture on disable.
func (b *PushButton) SetEnabled(enabled bool) { b.trigger.Model.SetEnabled(enabled) }

// Dispose releases the skin and its trigger model.
func (b *PushButton) Dispose() {
	b.skin.dispose()
	b.trigger.Dispose()
}

// ToggleButton is a release-fired toggle button skin.
type ToggleButton[T comparable] struct {
	trigger *button.ToggleModel[T]
	skin    *skin
}

// NewToggleButton creates a toggle button over obs with the default theme.
func NewToggleButton[T comparable](obs *core.Observable[T], off, on T, opts button.Options) *ToggleButton[T] {
	trigger := button.NewToggleModel(obs, off, on, opts)
	return &ToggleButton[T]{trigger: trigger, skin: newSkin(trigger.Model, theme.DefaultButtonTheme())}
}

// Model returns the interaction core, for the input layer.
func (b *ToggleButton[T]) Model() *button.Model { return b.trigger.Model }

// Toggled returns the trigger's flip notifier.
func (b *ToggleButton[T]) Toggled() *core.Notifier { return b.trigger.Toggled }

// AddAppearance registers a paint strategy and primes it with the
// current state.
func (b *ToggleButton[T]) AddAppearance(a Appearance) { b.skin.addAppearance(a) }

// SetEnabled enables or disables the button.
func (b *ToggleButton[T]) SetEnabled(enabled bool) { b.trigger.Model.SetEnabled(enabled) }

// Dispose releases the skin and its trigger model.
func (b *ToggleButton[T]) Dispose() {
	b.skin.dispose()
	b.trigger.Dispose()
}

// StickyButton is a press-latched toggle button skin.
type StickyButton[T comparable] struct {
	trigger *button.StickyModel[T]
	skin    *skin
}

// NewStickyButton creates a sticky toggle button over obs with the
// default theme.
func NewStickyButton[T comparable](obs *core.Observable[T], up, down T, opts button.Options) *StickyButton[T] {
	trigger := button.NewStickyModel(obs, up, down, opts)
	return &StickyButton[T]{trigger: trigger, skin: newSkin(trigger.Model, theme.DefaultButtonTheme())}
}

// Model returns the interaction core, for the input layer.
func (b *StickyButton[T]) Model() *button.Model { return b.trigger.Model }

// Toggled returns the trigger's flip notifier.
func (b *StickyButton[T]) Toggled() *core.Notifier { return b.trigger.Toggled }

// AddAppearance registers a paint strategy and primes it with the
// current state.
func (b *StickyButton[T]) AddAppearance(a Appearance) { b.skin.addAppearance(a) }

// SetEnabled enables or disables the button.
func (b *StickyButton[T]) SetEnabled(enabled bool) { b.trigger.Model.SetEnabled(enabled) }

// Dispose releases the skin and its trigger model.
func (b *StickyButton[T]) Dispose() {
	b.skin.dispose()
	b.trigger.Dispose()
}

// MomentaryButton is a gesture-duration button skin.
type MomentaryButton[T comparable] struct {
	trigger *button.MomentaryModel[T]
	skin    *skin
}

// NewMomentaryButton creates a momentary button over obs with the
// default theme.
func NewMomentaryButton[T comparable](obs *core.Observable[T], off, on T, opts button.Options) *MomentaryButton[T] {
	trigger := button.NewMomentaryModel(obs, off, on, opts)
	return &MomentaryButton[T]{trigger: trigger, skin: newSkin(trigger.Model, theme.DefaultButtonTheme())}
}

// Model returns the interaction core, for the input layer.
func (b *MomentaryButton[T]) Model() *button.Model { return b.trigger.Model }

// Changed returns the trigger's mutation notifier.
func (b *MomentaryButton[T]) Changed() *core.Notifier { return b.trigger.Changed }

// AddAppearance registers a paint strategy and primes it with the
// current state.
func (b *MomentaryButton[T]) AddAppearance(a Appearance) { b.skin.addAppearance(a) }

// SetEnabled enables or disables the button.
func (b *MomentaryButton[T]) SetEnabled(enabled bool) { b.trigger.Model.SetEnabled(enabled) }

// Dispose releases the skin and its trigger model.
func (b *MomentaryButton[T]) Dispose() {
	b.skin.dispose()
	b.trigger.Dispose()
}
