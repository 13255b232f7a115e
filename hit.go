package lambda

// hit is an entity whose bounds contain a probe point, with the point in
// the entity's local space.
type hit struct {
	entity *Entity
	local  Vec2
}

// hitsAt flattens the subtree in pre-order and keeps the entities whose
// Bounds contain p once p is mapped into their local space. Entities with
// a singular world transform never match.
func (e *Entity) hitsAt(p Vec2) []hit {
	var hits []hit
	for _, n := range e.All() {
		local, ok := n.WorldToLocal(p)
		if !ok {
			continue
		}
		if n.Bounds.Contains(local.X, local.Y) {
			hits = append(hits, hit{entity: n, local: local})
		}
	}
	return hits
}

// Click dispatches ev to the click handlers of every entity in the subtree
// whose bounds contain the event point, walking the pre-order list
// backwards so descendants are tried before their ancestors and later
// siblings before earlier ones. Dispatch stops at the first handler that
// returns true. Entities without a handler are skipped.
func (e *Entity) Click(ev ClickEvent) bool {
	hits := e.hitsAt(ev.Point)
	for i := len(hits) - 1; i >= 0; i-- {
		h := hits[i]
		if h.entity.onClick == nil {
			continue
		}
		origin := Vec2{h.entity.Bounds.X, h.entity.Bounds.Y}
		if h.entity.onClick(ev, h.local.Sub(origin)) {
			return true
		}
	}
	return false
}

// EntityByClick returns the last entity in pre-order whose bounds contain p,
// or nil. Unlike Click it ignores handlers and does not reverse the order
// among siblings' subtrees.
func (e *Entity) EntityByClick(p Vec2) *Entity {
	hits := e.hitsAt(p)
	if len(hits) == 0 {
		return nil
	}
	return hits[len(hits)-1].entity
}

// KeyEvent routes ev through the subtree. When any entity is focused, only
// the first focused entity (pre-order) sees the event. Otherwise key
// handlers are tried in pre-order until one returns true.
//
// Best effort: focus is a plain flag, so a stale focus on an entity with
// no key handler swallows every event.
func (e *Entity) KeyEvent(ev KeyEvent) bool {
	all := e.All()
	for _, n := range all {
		if n.focused {
			return n.onKey != nil && n.onKey(ev)
		}
	}
	for _, n := range all {
		if n.onKey != nil && n.onKey(ev) {
			return true
		}
	}
	return false
}
