package lambda

// Graphics is the drawing surface the engine renders through. Hosts
// implement it on top of a real backend; the engine never rasterizes.
//
// Translate, Rotate and Scale concatenate onto the current transform in the
// same way Affine's methods do.
type Graphics interface {
	Transform() Affine
	SetTransform(m Affine)
	Translate(x, y float64)
	Rotate(theta float64)
	Scale(sx, sy float64)
	SetColor(c Color)
	Fill(s Shape)
}

// InputSource reports polled input state. Pressed means "went down since
// the previous tick"; Held means "currently down".
type InputSource interface {
	KeyHeld(k Key) bool
	KeyPressed(k Key) bool
	MouseHeld(b MouseButton) bool
	MousePressed(b MouseButton) bool
	Cursor() Vec2
}

// AnyKeyHeld reports whether any of keys is held.
func AnyKeyHeld(in InputSource, keys ...Key) bool {
	for _, k := range keys {
		if in.KeyHeld(k) {
			return true
		}
	}
	return false
}

// AnyKeyPressed reports whether any of keys was pressed this tick.
func AnyKeyPressed(in InputSource, keys ...Key) bool {
	for _, k := range keys {
		if in.KeyPressed(k) {
			return true
		}
	}
	return false
}
