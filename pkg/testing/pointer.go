package testing

import (
	"github.com/go-drift/sol/pkg/button"
)

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// Pointer simulates one input channel engaging a button: it owns an
// engagement source attached to the model under test and drives it
// through press, move, release, and cancel, the way the input layer
// would. Create several against one model to exercise multi-touch.
type Pointer struct {
	id     int64
	model  *button.Model
	source *button.Source
}

// NewPointer attaches a fresh engagement source to m and returns a
// simulator for it. The pointer starts off the button, not pressed.
func NewPointer(m *button.Model) *Pointer {
	return NewPointerWithOptions(m, button.Options{})
}

// NewPointerWithOptions is NewPointer with explicit source options.
func NewPointerWithOptions(m *button.Model, opts button.Options) *Pointer {
	src := button.NewSource(opts)
	m.AttachSource(src)
	return &Pointer{
		id:     allocPointerID(),
		model:  m,
		source: src,
	}
}

// ID returns the simulated pointer's unique ID.
func (p *Pointer) ID() int64 { return p.id }

// Source returns the engagement source this pointer drives.
func (p *Pointer) Source() *button.Source { return p.source }

// Down presses over the button: enter then press, the order a hit-test
// driven input layer produces.
func (p *Pointer) Down() {
	p.source.SetOver(true)
	p.source.SetPressed(true)
}

// Up releases the pointer at its current position.
func (p *Pointer) Up() {
	p.source.SetPressed(false)
}

// MoveOff drags the pointer outside the button's bounds.
func (p *Pointer) MoveOff() {
	p.source.SetOver(false)
}

// MoveOver drags the pointer back over the button.
func (p *Pointer) MoveOver() {
	p.source.SetOver(true)
}

// Leave ends a hover: move off, used for pointers that never pressed.
func (p *Pointer) Leave() {
	p.source.SetOver(false)
}

// Cancel interrupts the engagement, as a scroll take-over would.
func (p *Pointer) Cancel() {
	p.source.Interrupt()
}

// Tap performs a complete down-up gesture over the button.
func (p *Pointer) Tap() {
	p.Down()
	p.Up()
}

// Detach removes the pointer's source from the model and disposes it.
func (p *Pointer) Detach() {
	p.model.DetachSource(p.source)
	p.source.Dispose()
}
