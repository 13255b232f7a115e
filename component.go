package lambda

// Component is a unit of behavior attached to exactly one entity.
// Init runs once, synchronously, when the component is attached; the
// component keeps owner as its back reference. Update and Draw then run
// every frame as part of the owner's pass.
type Component interface {
	Init(owner *Entity)
	Update(dt float64)
	Draw(g Graphics)
}

// BaseComponent is an embeddable Component with no-op hooks that records
// its owner. Types overriding Init should call BaseComponent.Init.
type BaseComponent struct {
	owner *Entity
}

func (b *BaseComponent) Init(owner *Entity) { b.owner = owner }
func (b *BaseComponent) Update(float64)     {}
func (b *BaseComponent) Draw(Graphics)      {}

// Owner returns the entity this component is attached to.
func (b *BaseComponent) Owner() *Entity {
	return b.owner
}

// ComponentKind names a category of component for ComponentByKind lookups.
type ComponentKind string

// Kinded is implemented by components that report a kind.
type Kinded interface {
	Kind() ComponentKind
}

// FuncComponent adapts closures into a Component. Nil hooks are skipped.
type FuncComponent struct {
	BaseComponent
	ComponentKind ComponentKind
	InitFunc      func(owner *Entity)
	UpdateFunc    func(owner *Entity, dt float64)
	DrawFunc      func(owner *Entity, g Graphics)
}

func (f *FuncComponent) Init(owner *Entity) {
	f.BaseComponent.Init(owner)
	if f.InitFunc != nil {
		f.InitFunc(owner)
	}
}

func (f *FuncComponent) Update(dt float64) {
	if f.UpdateFunc != nil {
		f.UpdateFunc(f.owner, dt)
	}
}

func (f *FuncComponent) Draw(g Graphics) {
	if f.DrawFunc != nil {
		f.DrawFunc(f.owner, g)
	}
}

// Kind implements Kinded.
func (f *FuncComponent) Kind() ComponentKind {
	return f.ComponentKind
}

// AddComponent attaches c and runs its Init before returning.
// Panics if c is nil.
func (e *Entity) AddComponent(c Component) {
	if c == nil {
		panic("lambda: cannot add nil component")
	}
	e.mutate(func() { e.components = append(e.components, c) })
	c.Init(e)
}

// RemoveComponent detaches c. It reports whether c was attached.
func (e *Entity) RemoveComponent(c Component) bool {
	i := e.componentIndex(c)
	if i < 0 {
		return false
	}
	e.mutate(func() {
		if j := e.componentIndex(c); j >= 0 {
			e.components = append(e.components[:j], e.components[j+1:]...)
		}
	})
	return true
}

// Components returns the attached components in attachment order.
// The returned slice MUST NOT be mutated by the caller.
func (e *Entity) Components() []Component {
	return e.components
}

// ComponentByKind returns the first attached component whose Kind matches.
func (e *Entity) ComponentByKind(kind ComponentKind) (Component, bool) {
	for _, c := range e.components {
		if k, ok := c.(Kinded); ok && k.Kind() == kind {
			return c, true
		}
	}
	return nil, false
}

// ComponentOf returns the first component on e that implements T.
// T is usually a concrete pointer type or a capability interface.
func ComponentOf[T any](e *Entity) (T, bool) {
	for _, c := range e.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

func (e *Entity) componentIndex(c Component) int {
	for i, have := range e.components {
		if have == c {
			return i
		}
	}
	return -1
}
