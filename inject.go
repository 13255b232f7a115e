package lambda

// injectedEvent is a single queued synthetic input event. Exactly one of
// click or key is set.
type injectedEvent struct {
	click *ClickEvent
	key   *KeyEvent
}

// InjectClick queues a left-button click at the world point (x, y).
func (a *App) InjectClick(x, y float64) {
	a.InjectPointer(ClickEvent{Point: Vec2{x, y}, Button: MouseButtonLeft, Kind: PointerClick})
}

// InjectPointer queues a single pointer event. Each queued event is
// delivered on its own Update.
func (a *App) InjectPointer(ev ClickEvent) {
	a.injectQueue = append(a.injectQueue, injectedEvent{click: &ev})
}

// InjectKey queues a key event.
func (a *App) InjectKey(ev KeyEvent) {
	a.injectQueue = append(a.injectQueue, injectedEvent{key: &ev})
}

// InjectText queues one KeyTyped event per rune of s.
func (a *App) InjectText(s string) {
	for _, r := range s {
		a.InjectKey(KeyEvent{Rune: r, Kind: KeyTyped})
	}
}

// Pending returns the number of injected events not yet delivered.
func (a *App) Pending() int {
	return len(a.injectQueue)
}

// processInjected pops one event from the queue and routes it through the
// same path as host input. Reports whether an event was consumed.
func (a *App) processInjected() bool {
	if len(a.injectQueue) == 0 {
		return false
	}
	ev := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue[len(a.injectQueue)-1] = injectedEvent{}
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]

	switch {
	case ev.click != nil:
		a.Click(*ev.click)
	case ev.key != nil:
		a.KeyEvent(*ev.key)
	}
	return true
}
