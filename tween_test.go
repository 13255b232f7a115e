package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestTweenPosition(t *testing.T) {
	e := NewEntity("e")
	e.Position = Pt(0, 100)
	tw := TweenPosition(e, 50, 0, 1, ease.Linear)
	e.AddComponent(tw)

	e.Update(0.5)
	assert.InDelta(t, 25, e.Position.X, 1e-3)
	assert.InDelta(t, 50, e.Position.Y, 1e-3)
	assert.False(t, tw.Done)

	e.Update(0.5)
	assert.InDelta(t, 50, e.Position.X, 1e-3)
	assert.InDelta(t, 0, e.Position.Y, 1e-3)
	assert.True(t, tw.Done)
}

func TestTweenDone(t *testing.T) {
	t.Run("should call OnDone once", func(t *testing.T) {
		e := NewEntity("e")
		tw := TweenScale(e, 3, 0.2, ease.OutQuad)
		calls := 0
		tw.OnDone = func(owner *Entity) {
			calls++
			assert.Same(t, e, owner)
		}
		e.AddComponent(tw)
		for i := 0; i < 5; i++ {
			e.Update(0.1)
		}
		assert.Equal(t, 1, calls)
		assert.InDelta(t, 3, e.Scale, 1e-6)
	})
	t.Run("should detach when asked", func(t *testing.T) {
		e := NewEntity("e")
		tw := TweenRotation(e, 1, 0.1, ease.Linear)
		tw.Detach = true
		e.AddComponent(tw)
		e.Update(0.2)
		assert.Empty(t, e.Components())
		assert.InDelta(t, 1, e.Rotation, 1e-6)
	})
	t.Run("should do nothing unattached", func(t *testing.T) {
		e := NewEntity("e")
		tw := TweenScale(e, 2, 1, ease.Linear)
		tw.Update(1)
		assert.False(t, tw.Done)
		assert.Equal(t, 1.0, e.Scale)
	})
}

func TestTweenProp(t *testing.T) {
	e := NewEntity("e")
	e.AddComponent(TweenProp(e, "glow", 10, 1, ease.Linear))
	e.Update(0.5)
	v, ok := e.Props.Float("glow")
	assert.True(t, ok)
	assert.InDelta(t, 5, v, 1e-3)
}

func TestTweenKind(t *testing.T) {
	e := NewEntity("e")
	tw := TweenScale(e, 2, 1, ease.Linear)
	e.AddComponent(tw)
	got, ok := e.ComponentByKind("tween")
	assert.True(t, ok)
	assert.Same(t, tw, got)
}
