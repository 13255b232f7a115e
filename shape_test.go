package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectShape(t *testing.T) {
	r := RectShape{-4, -4, 8, 8}
	assert.True(t, r.Contains(0, 0))
	assert.True(t, r.Contains(4, -4))
	assert.False(t, r.Contains(4.5, 0))
	assert.Equal(t, R(-4, -4, 8, 8), r.Bounds())
	assert.Equal(t, []Vec2{{-4, -4}, {4, -4}, {4, 4}, {-4, 4}}, r.Outline())
}

func TestCircleShape(t *testing.T) {
	c := CircleShape{CenterX: 10, CenterY: 0, Radius: 5}
	assert.True(t, c.Contains(15, 0))
	assert.False(t, c.Contains(14, 4))
	assert.Equal(t, R(5, -5, 10, 10), c.Bounds())

	pts := c.Outline()
	assert.Len(t, pts, circleSegments)
	for _, p := range pts {
		assert.True(t, c.Contains(p.X*0.999+10*0.001, p.Y*0.999))
	}
}

func TestPolygonShape(t *testing.T) {
	tri := PolygonShape{Points: []Vec2{{0, 0}, {10, 0}, {0, 10}}}
	rev := PolygonShape{Points: []Vec2{{0, 10}, {10, 0}, {0, 0}}}

	for _, p := range []PolygonShape{tri, rev} {
		assert.True(t, p.Contains(2, 2))
		assert.True(t, p.Contains(5, 5))
		assert.False(t, p.Contains(6, 6))
		assert.False(t, p.Contains(-1, 1))
	}
	assert.Equal(t, R(0, 0, 10, 10), tri.Bounds())
	assert.False(t, PolygonShape{Points: []Vec2{{0, 0}, {1, 1}}}.Contains(0, 0))
	assert.Equal(t, Rect{}, PolygonShape{}.Bounds())
}

func TestEasing(t *testing.T) {
	for name, fn := range map[string]Easing{
		"linear":        Linear,
		"smooth start":  SmoothStart,
		"smooth stop":   SmoothStop,
		"smooth start2": SmoothStart2,
		"smooth stop2":  SmoothStop2,
	} {
		assert.InDelta(t, 0, fn(0), 1e-6, name)
		assert.InDelta(t, 1, fn(1), 1e-6, name)
	}
	assert.InDelta(t, 0.25, SmoothStart(0.5), 1e-6)
	assert.InDelta(t, 0.75, SmoothStop(0.5), 1e-6)
	assert.InDelta(t, 0.125, SmoothStart2(0.5), 1e-6)
}
