package core

// OrProperty is a derived boolean: the logical OR of a set of boolean
// observables. The dependency set can be swapped at runtime with Relink,
// which is how button models track sources as they attach and detach.
//
// Recomputation is synchronous: by the time any dependency's Set call
// returns, the OrProperty and its listeners have already seen the new
// value. The result depends only on the current dependency values,
// never on the order in which they changed.
type OrProperty struct {
	out      *Observable[bool]
	deps     []*Observable[bool]
	unsubs   []func()
	disposed bool
}

// NewOrProperty creates an OrProperty over the given dependencies.
// An empty dependency set yields false.
func NewOrProperty(deps ...*Observable[bool]) *OrProperty {
	p := &OrProperty{out: NewObservable(false)}
	p.Relink(deps...)
	return p
}

// Value returns the current OR of all dependencies.
func (p *OrProperty) Value() bool {
	return p.out.Value()
}

// AddListener registers fn for changes of the derived value.
// It returns an unsubscribe function.
func (p *OrProperty) AddListener(fn func(bool)) func() {
	return p.out.AddListener(fn)
}

// Relink replaces the dependency set and recomputes immediately.
func (p *OrProperty) Relink(deps ...*Observable[bool]) {
	if p.disposed {
		return
	}
	p.unlink()
	p.deps = deps
	for _, dep := range deps {
		p.unsubs = append(p.unsubs, dep.AddListener(func(bool) {
			p.recompute()
		}))
	}
	p.recompute()
}

// Dispose unsubscribes from all dependencies. The derived value stops
// updating; further Relink calls are ignored.
func (p *OrProperty) Dispose() {
	p.unlink()
	p.deps = nil
	p.disposed = true
}

func (p *OrProperty) unlink() {
	for _, unsub := range p.unsubs {
		unsub()
	}
	p.unsubs = nil
}

func (p *OrProperty) recompute() {
	result := false
	for _, dep := range p.deps {
		if dep.Value() {
			result = true
			break
		}
	}
	p.out.Set(result)
}
