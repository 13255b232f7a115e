package lambda

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func assertMatrix(t *testing.T, want, got Affine) {
	t.Helper()
	for i := range got {
		assert.InDelta(t, want[i], got[i], epsilon, "element %d of %v", i, got)
	}
}

func assertVec(t *testing.T, want, got Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, epsilon, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, epsilon, "y of %v", got)
}

// --- Affine ---

func TestAffineIdentity(t *testing.T) {
	x, y := Identity().Apply(3, -4)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, -4.0, y)
}

func TestAffineTranslateThenRotate(t *testing.T) {
	// Rotation applies to the point first, then the translation.
	m := Identity().Translate(10, 0).Rotate(math.Pi / 2)
	assertVec(t, Vec2{10, 1}, m.ApplyVec(Vec2{1, 0}))
}

func TestAffineRotate90(t *testing.T) {
	assertMatrix(t, Affine{0, 1, -1, 0, 0, 0}, Identity().Rotate(math.Pi/2))
}

func TestAffineScale(t *testing.T) {
	m := Identity().Scale(2, 3)
	assertVec(t, Vec2{2, 3}, m.ApplyVec(Vec2{1, 1}))
}

func TestAffineInvert(t *testing.T) {
	m := Identity().Translate(5, -7).Rotate(0.7).Scale(2, 0.5)
	inv, ok := m.Invert()
	require.True(t, ok)
	assertMatrix(t, Identity(), m.Concat(inv))

	p := Vec2{3, 9}
	assertVec(t, p, inv.ApplyVec(m.ApplyVec(p)))
}

func TestAffineInvertSingular(t *testing.T) {
	inv, ok := Identity().Scale(0, 1).Invert()
	assert.False(t, ok)
	assert.Equal(t, Identity(), inv)
}

func TestAffineApplyRect(t *testing.T) {
	r := Identity().Rotate(math.Pi/2).ApplyRect(R(0, 0, 10, 4))
	assert.InDelta(t, -4, r.X, epsilon)
	assert.InDelta(t, 0, r.Y, epsilon)
	assert.InDelta(t, 4, r.Width, epsilon)
	assert.InDelta(t, 10, r.Height, epsilon)
}

// --- Entity transforms ---

func TestLocalTransformParts(t *testing.T) {
	e := NewEntity("e")
	e.Position = Pt(10, 20)
	e.Rotation = math.Pi / 2
	e.Scale = 2

	t.Run("should build translate then rotate then scale", func(t *testing.T) {
		assertMatrix(t, Affine{0, 2, -2, 0, 10, 20}, e.LocalTransform(TransformAll))
	})
	t.Run("should skip unselected parts", func(t *testing.T) {
		assertMatrix(t, Affine{1, 0, 0, 1, 10, 20}, e.LocalTransform(TransformPosition))
		assertMatrix(t, Affine{2, 0, 0, 2, 0, 0}, e.LocalTransform(TransformScale))
		assertMatrix(t, Identity(), e.LocalTransform(0))
	})
}

func TestWorldTransformComposesAncestors(t *testing.T) {
	root := NewEntity("root")
	a := root.Add("a", func(a *Entity) {
		a.Position = Pt(10, 0)
		a.Rotation = math.Pi / 2
	})
	b := a.Add("b", func(b *Entity) {
		b.Position = Pt(5, 0)
	})

	assertVec(t, Vec2{10, 5}, b.LocalToWorld(Vec2{}))

	local, ok := b.WorldToLocal(Vec2{10, 5})
	require.True(t, ok)
	assertVec(t, Vec2{}, local)
}

func TestWorldTransformRoundTrip(t *testing.T) {
	root := NewEntity("root")
	root.Scale = 1.5
	a := root.Add("a", func(a *Entity) {
		a.Position = Pt(-3, 8)
		a.Rotation = 1.1
		a.Scale = 0.25
	})
	b := a.Add("b", func(b *Entity) {
		b.Position = Pt(40, 2)
		b.Rotation = -0.4
	})

	for _, p := range []Vec2{{0, 0}, {1, 2}, {-30, 17.5}} {
		local, ok := b.WorldToLocal(b.LocalToWorld(p))
		require.True(t, ok)
		assertVec(t, p, local)
	}
}

func TestWorldToLocalSingular(t *testing.T) {
	root := NewEntity("root")
	child := root.Add("child", func(c *Entity) { c.Scale = 0 })

	_, ok := child.WorldToLocal(Vec2{1, 1})
	assert.False(t, ok)
}

func TestInheritedTransform(t *testing.T) {
	root := NewEntity("root")
	parent := root.Add("parent", func(p *Entity) {
		p.Position = Pt(100, 0)
		p.Rotation = math.Pi / 2
		p.Scale = 2
	})
	child := parent.Add("child", func(c *Entity) {
		c.Position = Pt(10, 0)
	})

	t.Run("should inherit position and scale by default", func(t *testing.T) {
		assertVec(t, Vec2{120, 0}, child.InheritedTransform().ApplyVec(Vec2{}))
	})
	t.Run("should follow the full chain when everything is inherited", func(t *testing.T) {
		child.InheritRotation = true
		defer func() { child.InheritRotation = false }()
		assertMatrix(t, child.WorldTransform(TransformAll), child.InheritedTransform())
	})
	t.Run("should keep only position when scale is not inherited", func(t *testing.T) {
		child.InheritScale = false
		defer func() { child.InheritScale = true }()
		assertVec(t, Vec2{110, 0}, child.InheritedTransform().ApplyVec(Vec2{}))
	})
	t.Run("should leave WorldTransform alone", func(t *testing.T) {
		assertVec(t, Vec2{100, 20}, child.LocalToWorld(Vec2{}))
	})
}

func TestActualBounds(t *testing.T) {
	root := NewEntity("root")
	e := root.Add("e", func(e *Entity) {
		e.Position = Pt(50, 50)
		e.Scale = 2
		e.Bounds = R(-5, -5, 10, 10)
	})
	b := e.ActualBounds()
	assert.InDelta(t, 40, b.X, epsilon)
	assert.InDelta(t, 40, b.Y, epsilon)
	assert.InDelta(t, 20, b.Width, epsilon)
	assert.InDelta(t, 20, b.Height, epsilon)
}

func TestWorldTransformNestedTranslation(t *testing.T) {
	root := NewEntity("root")
	root.Position = Pt(10, 0)
	childA := root.Add("childA", func(a *Entity) { a.Position = Pt(0, 5) })
	childB := childA.Add("childB", nil)

	assertVec(t, Vec2{10, 5}, childB.WorldTransform(TransformAll).ApplyVec(Vec2{}))
	assertVec(t, Vec2{}, childB.WorldTransform(TransformRotation|TransformScale).ApplyVec(Vec2{}))
}
