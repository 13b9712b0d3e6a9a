// Package theme provides default appearance values for sol buttons.
// Paint strategies resolve a color per interaction state from a theme
// and are otherwise read-only consumers of the interaction model.
package theme

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/go-drift/sol/pkg/button"
)

// ButtonThemeData defines the per-state colors for a button.
type ButtonThemeData struct {
	// BaseColor is the fill when idle.
	BaseColor color.RGBA
	// OverColor is the fill while a pointer hovers the button.
	OverColor color.RGBA
	// PressedColor is the fill while the button looks pressed.
	PressedColor color.RGBA
	// DisabledColor is the fill when disabled.
	DisabledColor color.RGBA
	// DisabledPressedColor is the fill when disabled while still
	// looking pressed (e.g. a latched sticky button).
	DisabledPressedColor color.RGBA
}

// DefaultButtonTheme returns the stock button palette.
func DefaultButtonTheme() ButtonThemeData {
	return ButtonThemeData{
		BaseColor:            colornames.Lightsteelblue,
		OverColor:            colornames.Lightblue,
		PressedColor:         colornames.Steelblue,
		DisabledColor:        colornames.Lightgray,
		DisabledPressedColor: colornames.Darkgray,
	}
}

// WithBaseColor returns a copy of the theme with the specified base color.
func (t ButtonThemeData) WithBaseColor(c color.RGBA) ButtonThemeData {
	t.BaseColor = c
	return t
}

// ColorFor resolves the fill color for an interaction state.
func (t ButtonThemeData) ColorFor(state button.InteractionState) color.RGBA {
	switch state {
	case button.StateOver:
		return t.OverColor
	case button.StatePressed:
		return t.PressedColor
	case button.StateDisabled:
		return t.DisabledColor
	case button.StateDisabledPressed:
		return t.DisabledPressedColor
	default:
		return t.BaseColor
	}
}
