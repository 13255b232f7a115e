package lambda

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorOrange = Color{1, 200.0 / 255, 0, 1} // default particle color
)

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// HSB builds an opaque color from hue, saturation and brightness in [0, 1].
// The hue wraps, so 1.25 and -0.75 both mean 0.25.
func HSB(hue, sat, bright float64) Color {
	hue -= math.Floor(hue)
	c := colorful.Hsv(hue*360, Clamp(sat, 0, 1), Clamp(bright, 0, 1)).Clamped()
	return Color{c.R, c.G, c.B, 1}
}

// RandomColor returns an opaque color with uniformly random hue,
// saturation and brightness.
func RandomColor() Color {
	return HSB(rand.Float64(), rand.Float64(), rand.Float64())
}

// HSB returns the hue, saturation and brightness of c, each in [0, 1].
func (c Color) HSB() (hue, sat, bright float64) {
	h, s, v := c.colorful().Hsv()
	return h / 360, s, v
}

// Invert returns the color with its hue rotated half way around the wheel.
// Alpha is preserved.
func (c Color) Invert() Color {
	h, s, v := c.HSB()
	out := HSB(h+0.5, s, v)
	out.A = c.A
	return out
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA converts to a premultiplied 8-bit color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := Clamp(c.A, 0, 1)
	return color.RGBA{
		R: uint8(Clamp(c.R, 0, 1)*a*255 + 0.5),
		G: uint8(Clamp(c.G, 0, 1)*a*255 + 0.5),
		B: uint8(Clamp(c.B, 0, 1)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}
