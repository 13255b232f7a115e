package lambda

import "slices"

// ClickFunc handles a pointer event that hit an entity. local is the hit
// point in the entity's local space, relative to its Bounds origin.
// Returning true consumes the event.
type ClickFunc func(ev ClickEvent, local Vec2) bool

// KeyFunc handles a key event. Returning true consumes the event.
type KeyFunc func(ev KeyEvent) bool

// Entity is the scene graph element: a positioned, rotatable, uniformly
// scalable node that owns its children, components and callbacks.
//
// Entities are not safe for concurrent use. All mutation happens on the
// goroutine running the update/draw loop.
type Entity struct {
	Name string

	// Local transform.
	Position Vec2
	Rotation float64 // radians
	Scale    float64 // uniform

	// Bounds is the hit-test rectangle in local space.
	Bounds Rect

	// Inherit* select which parts of the parent chain InheritedTransform
	// applies. WorldTransform ignores them.
	InheritPosition bool
	InheritRotation bool
	InheritScale    bool

	Props Props

	parent     *Entity
	children   []*Entity
	components []Component
	updaters   []func(e *Entity, dt float64)
	drawers    []func(e *Entity, g Graphics)
	onClick    ClickFunc
	onKey      KeyFunc
	focused    bool

	// Mutations requested while this entity is inside Update are queued
	// here and applied when its update pass ends.
	updating bool
	deferred []func()
	// adding holds children attached during the pass whose append is
	// still queued in deferred.
	adding []*Entity
}

// NewEntity creates a detached entity with unit scale at the origin.
func NewEntity(name string) *Entity {
	return &Entity{
		Name:            name,
		Scale:           1,
		InheritPosition: true,
		InheritScale:    true,
	}
}

// --- Tree manipulation ---

// AddChild appends child to this entity's children and returns it.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this entity (cycle).
func (e *Entity) AddChild(child *Entity) *Entity {
	if child == nil {
		panic("lambda: cannot add nil child")
	}
	if isAncestor(child, e) {
		panic("lambda: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	if e.updating {
		e.adding = append(e.adding, child)
	}
	e.mutate(func() {
		e.children = append(e.children, child)
		if debugEnabled {
			debugCheckTreeDepth(child)
			debugCheckChildCount(e)
		}
	})
	return child
}

// Add creates a new entity, lets build configure it, and adds it as a child.
func (e *Entity) Add(name string, build func(child *Entity)) *Entity {
	child := NewEntity(name)
	if build != nil {
		build(child)
	}
	return e.AddChild(child)
}

// RemoveChild detaches child from this entity and clears its parent.
// Panics if child's parent is not this entity.
func (e *Entity) RemoveChild(child *Entity) {
	if child.parent != e {
		panic("lambda: child's parent is not this entity")
	}
	child.parent = nil
	e.mutate(func() { e.removeChildByPtr(child) })
}

// RemoveFromParent detaches this entity from its parent.
// No-op if this entity has no parent.
func (e *Entity) RemoveFromParent() {
	if e.parent == nil {
		return
	}
	e.parent.RemoveChild(e)
}

// RemoveChildren detaches all children from this entity.
func (e *Entity) RemoveChildren() {
	for _, list := range [][]*Entity{e.children, e.adding} {
		for _, child := range list {
			if child.parent == e {
				child.parent = nil
			}
		}
	}
	e.mutate(func() {
		clear(e.children)
		e.children = e.children[:0]
	})
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Entity) Children() []*Entity {
	return e.children
}

// Parent returns the parent entity, or nil for a detached entity or root.
func (e *Entity) Parent() *Entity {
	return e.parent
}

// Root returns the topmost ancestor (e itself when detached).
func (e *Entity) Root() *Entity {
	r := e
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// All flattens the subtree rooted at e in pre-order: e first, then each
// child's subtree in child order.
func (e *Entity) All() []*Entity {
	return e.appendAll(nil)
}

func (e *Entity) appendAll(buf []*Entity) []*Entity {
	buf = append(buf, e)
	for _, child := range e.children {
		buf = child.appendAll(buf)
	}
	return buf
}

// --- Callbacks ---

// OnUpdate registers a per-frame update callback. Callbacks run after
// components, in registration order.
func (e *Entity) OnUpdate(fn func(e *Entity, dt float64)) {
	e.mutate(func() { e.updaters = append(e.updaters, fn) })
}

// OnDraw registers a draw callback. Callbacks run after components, in
// registration order, with the entity's world transform applied.
func (e *Entity) OnDraw(fn func(e *Entity, g Graphics)) {
	e.mutate(func() { e.drawers = append(e.drawers, fn) })
}

// OnClick sets the click handler, replacing any previous one. nil removes it.
func (e *Entity) OnClick(fn ClickFunc) {
	e.onClick = fn
}

// OnKey sets the key handler, replacing any previous one. nil removes it.
func (e *Entity) OnKey(fn KeyFunc) {
	e.onKey = fn
}

// --- Focus ---

// SetFocus sets this entity's focus flag without touching other entities.
func (e *Entity) SetFocus(focused bool) {
	e.focused = focused
}

// HasFocus reports whether this entity holds keyboard focus.
func (e *Entity) HasFocus() bool {
	return e.focused
}

// Focus gives this entity keyboard focus and clears it from every other
// entity in the same tree.
func (e *Entity) Focus() {
	for _, other := range e.Root().All() {
		other.focused = false
	}
	e.focused = true
}

// Focused returns the first focused entity in this subtree, in pre-order.
func (e *Entity) Focused() *Entity {
	for _, n := range e.All() {
		if n.focused {
			return n
		}
	}
	return nil
}

// --- Frame ---

// Update advances components, then update callbacks, then each child,
// depth-first. Tree and component changes made from inside the pass are
// applied once this entity's pass is over.
func (e *Entity) Update(dt float64) {
	e.updating = true
	for _, c := range e.components {
		c.Update(dt)
	}
	for _, fn := range e.updaters {
		fn(e, dt)
	}
	for _, child := range e.children {
		if child.parent != e {
			continue // removed or moved earlier in this pass
		}
		child.Update(dt)
	}
	e.updating = false
	e.flush()
}

// Draw renders the subtree. The graphics transform is replaced by this
// entity's world transform for its components, draw callbacks and children,
// and restored on return. Children are drawn from a snapshot taken on entry,
// so handlers may mutate the tree mid-draw without affecting the current pass.
func (e *Entity) Draw(g Graphics) {
	saved := g.Transform()
	defer g.SetTransform(saved)
	children := slices.Clone(e.children)

	g.SetTransform(e.WorldTransform(TransformAll))
	for _, c := range e.components {
		c.Draw(g)
	}
	for _, fn := range e.drawers {
		fn(e, g)
	}
	for _, child := range children {
		child.Draw(g)
	}
}

// --- Helpers ---

// mutate runs fn now, or queues it until the current update pass ends.
func (e *Entity) mutate(fn func()) {
	if e.updating {
		e.deferred = append(e.deferred, fn)
		return
	}
	fn()
}

func (e *Entity) flush() {
	clear(e.adding)
	e.adding = e.adding[:0]
	for len(e.deferred) > 0 {
		ops := e.deferred
		e.deferred = nil
		for _, op := range ops {
			op()
		}
	}
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Entity) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Entity) removeChildByPtr(child *Entity) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
