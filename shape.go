package lambda

import "math"

// Shape is a fillable, hit-testable region in local coordinates.
// Outline returns the boundary as a closed polygon (last point connects to
// the first) for hosts that fill paths.
type Shape interface {
	Contains(x, y float64) bool
	Bounds() Rect
	Outline() []Vec2
}

// RectShape is an axis-aligned rectangle in local coordinates.
type RectShape struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r RectShape) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Bounds returns the rectangle itself.
func (r RectShape) Bounds() Rect {
	return Rect(r)
}

// Outline returns the four corners clockwise from the top-left.
func (r RectShape) Outline() []Vec2 {
	return []Vec2{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, r.Y + r.Height},
		{r.X, r.Y + r.Height},
	}
}

// circleSegments is the polygon resolution used for CircleShape outlines.
const circleSegments = 24

// CircleShape is a circular region in local coordinates.
type CircleShape struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c CircleShape) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Bounds returns the circle's bounding square.
func (c CircleShape) Bounds() Rect {
	return Rect{c.CenterX - c.Radius, c.CenterY - c.Radius, 2 * c.Radius, 2 * c.Radius}
}

// Outline approximates the circle with a regular polygon.
func (c CircleShape) Outline() []Vec2 {
	pts := make([]Vec2, circleSegments)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		pts[i] = Vec2{c.CenterX + cos*c.Radius, c.CenterY + sin*c.Radius}
	}
	return pts
}

// PolygonShape is a convex polygon in local coordinates.
// Points must define a convex polygon in either winding order.
type PolygonShape struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside the polygon using a
// cross-product sign test.
func (p PolygonShape) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Bounds returns the bounding box of the points.
func (p PolygonShape) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	minX, minY := p.Points[0].X, p.Points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.Points[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// Outline returns the polygon's points.
func (p PolygonShape) Outline() []Vec2 {
	return p.Points
}
