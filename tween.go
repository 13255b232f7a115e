package lambda

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween is a Component that animates up to 4 float64 fields of its owner
// simultaneously with gween. Create one via TweenPosition, TweenScale or
// TweenRotation and attach it with AddComponent; it advances with the
// owner's update pass.
type Tween struct {
	BaseComponent

	// Detach removes the tween from its owner once it finishes.
	Detach bool
	// OnDone runs once, on the frame the tween finishes.
	OnDone func(owner *Entity)

	Done bool

	tweens [4]*gween.Tween
	count  int
	set    [4]func(e *Entity, v float64)
}

// Kind implements Kinded.
func (t *Tween) Kind() ComponentKind { return "tween" }

// Update advances all channels by dt seconds and writes the values into
// the owner's fields.
func (t *Tween) Update(dt float64) {
	if t.Done || t.owner == nil {
		return
	}

	allDone := true
	for i := 0; i < t.count; i++ {
		val, finished := t.tweens[i].Update(float32(dt))
		t.set[i](t.owner, float64(val))
		if !finished {
			allDone = false
		}
	}
	if !allDone {
		return
	}
	t.Done = true
	if t.OnDone != nil {
		t.OnDone(t.owner)
	}
	if t.Detach {
		t.owner.RemoveComponent(t)
	}
}

// TweenPosition animates Position from its current value to (toX, toY).
func TweenPosition(e *Entity, toX, toY float64, duration float32, fn ease.TweenFunc) *Tween {
	t := &Tween{count: 2}
	t.tweens[0] = gween.New(float32(e.Position.X), float32(toX), duration, fn)
	t.tweens[1] = gween.New(float32(e.Position.Y), float32(toY), duration, fn)
	t.set[0] = func(e *Entity, v float64) { e.Position.X = v }
	t.set[1] = func(e *Entity, v float64) { e.Position.Y = v }
	return t
}

// TweenScale animates Scale from its current value to the target.
func TweenScale(e *Entity, to float64, duration float32, fn ease.TweenFunc) *Tween {
	t := &Tween{count: 1}
	t.tweens[0] = gween.New(float32(e.Scale), float32(to), duration, fn)
	t.set[0] = func(e *Entity, v float64) { e.Scale = v }
	return t
}

// TweenRotation animates Rotation from its current value to the target.
func TweenRotation(e *Entity, to float64, duration float32, fn ease.TweenFunc) *Tween {
	t := &Tween{count: 1}
	t.tweens[0] = gween.New(float32(e.Rotation), float32(to), duration, fn)
	t.set[0] = func(e *Entity, v float64) { e.Rotation = v }
	return t
}

// TweenProp animates a float prop from its current value (0 when absent)
// to the target.
func TweenProp(e *Entity, key string, to float64, duration float32, fn ease.TweenFunc) *Tween {
	from, _ := e.Props.Float(key)
	t := &Tween{count: 1}
	t.tweens[0] = gween.New(float32(from), float32(to), duration, fn)
	t.set[0] = func(e *Entity, v float64) { e.Props.Set(key, FloatValue(v)) }
	return t
}
