package lambda

import "math"

// Affine is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// Identity returns the identity matrix.
func Identity() Affine {
	return Affine{1, 0, 0, 1, 0, 0}
}

// Concat returns m * c. Points transformed by the result go through c first.
func (m Affine) Concat(c Affine) Affine {
	return Affine{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Translate returns m followed (in point space, first) by a translation.
func (m Affine) Translate(x, y float64) Affine {
	return m.Concat(Affine{1, 0, 0, 1, x, y})
}

// Rotate returns m concatenated with a rotation of theta radians.
func (m Affine) Rotate(theta float64) Affine {
	sin, cos := math.Sincos(theta)
	return m.Concat(Affine{cos, sin, -sin, cos, 0, 0})
}

// Scale returns m concatenated with a scale of (sx, sy).
func (m Affine) Scale(sx, sy float64) Affine {
	return m.Concat(Affine{sx, 0, 0, sy, 0, 0})
}

// Invert computes the inverse matrix. ok is false when the matrix is
// singular (determinant ≈ 0), in which case the identity is returned.
func (m Affine) Invert() (inv Affine, ok bool) {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity(), false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// Apply transforms the point (x, y).
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// ApplyVec transforms p.
func (m Affine) ApplyVec(p Vec2) Vec2 {
	x, y := m.Apply(p.X, p.Y)
	return Vec2{x, y}
}

// ApplyRect returns the axis-aligned bounding box of r's transformed corners.
func (m Affine) ApplyRect(r Rect) Rect {
	x0, y0 := m.Apply(r.X, r.Y)
	minX, minY, maxX, maxY := x0, y0, x0, y0
	for _, c := range [3][2]float64{
		{r.X + r.Width, r.Y},
		{r.X, r.Y + r.Height},
		{r.X + r.Width, r.Y + r.Height},
	} {
		x, y := m.Apply(c[0], c[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// TransformParts selects which parts of an entity's local transform are
// included when building a transform.
type TransformParts uint8

const (
	TransformPosition TransformParts = 1 << iota
	TransformRotation
	TransformScale

	TransformAll = TransformPosition | TransformRotation | TransformScale
)

// LocalTransform builds this entity's local matrix from identity by
// translating by Position, rotating by Rotation, then scaling by Scale,
// each only when selected by parts.
func (e *Entity) LocalTransform(parts TransformParts) Affine {
	m := Identity()
	if parts&TransformPosition != 0 {
		m = m.Translate(e.Position.X, e.Position.Y)
	}
	if parts&TransformRotation != 0 {
		m = m.Rotate(e.Rotation)
	}
	if parts&TransformScale != 0 {
		m = m.Scale(e.Scale, e.Scale)
	}
	return m
}

// WorldTransform composes the local transforms from the root down to this
// entity. The same parts are applied at every level. Nothing is cached; the
// result reflects the tree as it is right now.
func (e *Entity) WorldTransform(parts TransformParts) Affine {
	if e.parent == nil {
		return e.LocalTransform(parts)
	}
	return e.parent.WorldTransform(parts).Concat(e.LocalTransform(parts))
}

// InheritedTransform is like WorldTransform(TransformAll) but takes from
// the parent chain only the parts this entity's Inherit* flags allow.
// Each ancestor applies its own flags to the chain above it.
func (e *Entity) InheritedTransform() Affine {
	local := e.LocalTransform(TransformAll)
	if e.parent == nil {
		return local
	}
	return e.parent.inheritedPart(e.inheritParts()).Concat(local)
}

func (e *Entity) inheritedPart(parts TransformParts) Affine {
	local := e.LocalTransform(parts)
	if e.parent == nil {
		return local
	}
	return e.parent.inheritedPart(parts & e.inheritParts()).Concat(local)
}

func (e *Entity) inheritParts() TransformParts {
	var p TransformParts
	if e.InheritPosition {
		p |= TransformPosition
	}
	if e.InheritRotation {
		p |= TransformRotation
	}
	if e.InheritScale {
		p |= TransformScale
	}
	return p
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this entity's local space.
// ok is false when the world transform cannot be inverted (zero scale).
func (e *Entity) WorldToLocal(p Vec2) (local Vec2, ok bool) {
	inv, ok := e.WorldTransform(TransformAll).Invert()
	if !ok {
		return Vec2{}, false
	}
	return inv.ApplyVec(p), true
}

// LocalToWorld converts a local-space point to world space.
func (e *Entity) LocalToWorld(p Vec2) Vec2 {
	return e.WorldTransform(TransformAll).ApplyVec(p)
}

// ActualBounds returns the world-space bounding box of Bounds.
func (e *Entity) ActualBounds() Rect {
	return e.WorldTransform(TransformAll).ApplyRect(e.Bounds)
}
