package lambda

import "github.com/tanema/gween/ease"

// Easing maps linear progress t in [0, 1] to eased progress.
type Easing func(t float64) float64

// FromTween adapts a gween easing function.
func FromTween(fn ease.TweenFunc) Easing {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var (
	Linear       Easing = func(t float64) float64 { return t }
	SmoothStart         = FromTween(ease.InQuad)   // t²
	SmoothStop          = FromTween(ease.OutQuad)  // 1-(1-t)²
	SmoothStart2        = FromTween(ease.InCubic)  // t³
	SmoothStop2         = FromTween(ease.OutCubic) // 1-(1-t)³
)
