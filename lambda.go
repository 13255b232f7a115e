package lambda

import "math/rand/v2"

// Vec2 is a 2D vector used for positions, velocities, and sizes throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Pt is shorthand for Vec2{x, y}.
func Pt(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h float64) Rect {
	return Rect{x, y, w, h}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Range is a general-purpose min/max range.
// Used by EmitterConfig and the particle randomizers.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Key is a host-defined key code. The ebiten host uses ebiten.Key values;
// the terminal host uses tcell.Key values.
type Key int

// PointerKind identifies the phase of a pointer event.
type PointerKind uint8

const (
	PointerPress   PointerKind = iota // button went down
	PointerRelease                    // button went up
	PointerClick                      // press then release at the same spot
)

// KeyKind identifies the phase of a key event.
type KeyKind uint8

const (
	KeyPress   KeyKind = iota // key went down
	KeyRelease                // key went up
	KeyTyped                  // a character was produced
)

// ClickEvent is a pointer event in screen space.
type ClickEvent struct {
	Point  Vec2
	Button MouseButton
	Kind   PointerKind
}

// KeyEvent is a keyboard event. Rune is zero for non-character keys.
type KeyEvent struct {
	Code Key
	Rune rune
	Kind KeyKind
}
