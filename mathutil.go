package lambda

import (
	"cmp"
	"math/rand/v2"
)

// Clamp limits value to [lo, hi].
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Noise1D is smooth 1D value noise over [0, width]: random samples at
// integer positions, linearly interpolated between them.
type Noise1D struct {
	width   int
	samples []float64
}

// NewNoise1D creates a noise line with width+1 random samples in [0, 1).
// A nil rng uses the global source.
func NewNoise1D(width int, rng *rand.Rand) *Noise1D {
	if width < 1 {
		width = 1
	}
	n := &Noise1D{width: width, samples: make([]float64, width+1)}
	for i := range n.samples {
		if rng != nil {
			n.samples[i] = rng.Float64()
		} else {
			n.samples[i] = rand.Float64()
		}
	}
	return n
}

// Width returns the noise line length.
func (n *Noise1D) Width() int {
	return n.width
}

// At samples the noise at x. Positions outside [0, width] clamp to the ends.
func (n *Noise1D) At(x float64) float64 {
	if x <= 0 {
		return n.samples[0]
	}
	if x >= float64(n.width) {
		return n.samples[n.width]
	}
	i := int(x)
	return Lerp(n.samples[i], n.samples[i+1], x-float64(i))
}
