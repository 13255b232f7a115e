package lambda

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFloat(t *testing.T, values []float64, mode LoopMode, duration float64) *AnimateFloat {
	t.Helper()
	a, err := NewAnimateFloat(values, mode, duration)
	require.NoError(t, err)
	return a
}

func TestNewAnimateFloat(t *testing.T) {
	t.Run("should reject fewer than two keyframes", func(t *testing.T) {
		for _, vs := range [][]float64{nil, {1}} {
			_, err := NewAnimateFloat(vs, LoopOnce, 1)
			assert.ErrorIs(t, err, ErrTooFewKeyframes)
		}
	})
	t.Run("should reject bad durations", func(t *testing.T) {
		for _, d := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			_, err := NewAnimateFloat([]float64{0, 1}, LoopOnce, d)
			assert.ErrorIs(t, err, ErrInvalidDuration, "duration %v", d)
		}
	})
	t.Run("should copy the keyframes", func(t *testing.T) {
		vs := []float64{0, 10}
		a := mustFloat(t, vs, LoopOnce, 1)
		vs[1] = 99
		assert.Equal(t, 10.0, a.End())
	})
	t.Run("should start playing at the first keyframe", func(t *testing.T) {
		a := mustFloat(t, []float64{3, 7}, LoopRepeat, 2)
		assert.False(t, a.Finished())
		assert.Equal(t, 3.0, a.Value())
		assert.Equal(t, 3.0, a.Begin())
		assert.Equal(t, 7.0, a.End())
		assert.Equal(t, 0, a.LoopCount())
		assert.Equal(t, LoopRepeat, a.Mode())
		assert.Equal(t, 2.0, a.Duration())
	})
}

func TestAnimateFloatValue(t *testing.T) {
	t.Run("should interpolate within the bracketing segment", func(t *testing.T) {
		a := mustFloat(t, []float64{0, 10, 30}, LoopOnce, 1)
		a.SetProgress(0.75)
		assert.InDelta(t, 20, a.Value(), 1e-9)
		a.SetProgress(0.25)
		assert.InDelta(t, 5, a.Value(), 1e-9)
	})
	t.Run("should ease within each segment", func(t *testing.T) {
		a := mustFloat(t, []float64{0, 10}, LoopOnce, 1)
		a.SetEasing(SmoothStart)
		a.SetProgress(0.5)
		assert.InDelta(t, 2.5, a.Value(), 1e-6)
		a.SetEasing(nil)
		assert.InDelta(t, 5, a.Value(), 1e-9)
	})
}

func TestAnimateFloatOnce(t *testing.T) {
	a := mustFloat(t, []float64{0, 10}, LoopOnce, 1)
	require.NoError(t, a.Update(0.5))
	assert.InDelta(t, 5, a.Value(), 1e-9)

	require.NoError(t, a.Update(0.75))
	assert.True(t, a.Finished())
	assert.Equal(t, a.End(), a.Value())
	assert.Equal(t, 1, a.LoopCount())

	for i := 0; i < 5; i++ {
		require.NoError(t, a.Update(0.3))
		assert.Equal(t, 10.0, a.Value())
	}
}

func TestAnimateFloatRepeat(t *testing.T) {
	t.Run("should be periodic", func(t *testing.T) {
		a := mustFloat(t, []float64{0, 10}, LoopRepeat, 2)
		b := mustFloat(t, []float64{0, 10}, LoopRepeat, 2)
		require.NoError(t, a.Update(0.5))
		require.NoError(t, b.Update(0.5))
		require.NoError(t, b.Update(2))
		assert.InDelta(t, a.Value(), b.Value(), 1e-9)
		assert.Equal(t, 1, b.LoopCount())
	})
	t.Run("should count every period crossed", func(t *testing.T) {
		a := mustFloat(t, []float64{0, 10}, LoopRepeat, 1)
		for i := 0; i < 80; i++ {
			require.NoError(t, a.Update(0.125))
		}
		assert.Equal(t, 10, a.LoopCount())
		assert.False(t, a.Finished())
	})
	t.Run("should count several periods in one step", func(t *testing.T) {
		a := mustFloat(t, []float64{0, 10}, LoopRepeat, 1)
		require.NoError(t, a.Update(2.5))
		assert.Equal(t, 2, a.LoopCount())
		assert.InDelta(t, 5, a.Value(), 1e-9)
	})
}

func TestAnimateFloatBackward(t *testing.T) {
	for _, mode := range []LoopMode{LoopOnce, LoopRepeat} {
		t.Run(mode.String(), func(t *testing.T) {
			a := mustFloat(t, []float64{0, 10}, mode, 1)
			err := a.Update(-0.1)
			assert.ErrorIs(t, err, ErrBackward)
			assert.Equal(t, 0.0, a.Progress())
			assert.Equal(t, a.Begin(), a.Value())
		})
	}
}

func TestAnimateFloatPingPongReset(t *testing.T) {
	a := mustFloat(t, []float64{0, 10}, LoopPingPongReset, 1)
	require.NoError(t, a.Update(1))
	assert.False(t, a.Finished())
	assert.Equal(t, 10.0, a.Value())

	require.NoError(t, a.Update(0.5))
	assert.InDelta(t, 5, a.Value(), 1e-9)

	require.NoError(t, a.Update(0.75))
	assert.True(t, a.Finished())
	assert.Equal(t, 0.0, a.Value())
	assert.Equal(t, 1, a.LoopCount())

	require.NoError(t, a.Update(0.5))
	assert.Equal(t, 0.0, a.Value())
}

func TestAnimateFloatPingPongContinuous(t *testing.T) {
	t.Run("should mirror around the end of the first pass", func(t *testing.T) {
		for _, tt := range []float64{0, 0.25, 0.5, 0.75} {
			fwd := mustFloat(t, []float64{0, 10, 4}, LoopPingPongContinuous, 1)
			require.NoError(t, fwd.Update(tt))

			back := mustFloat(t, []float64{0, 10, 4}, LoopPingPongContinuous, 1)
			require.NoError(t, back.Update(1))
			require.NoError(t, back.Update(1-tt))

			assert.InDelta(t, fwd.Value(), back.Value(), 1e-9, "t=%v", tt)
		}
	})
	t.Run("should bounce forever and count round trips", func(t *testing.T) {
		a := mustFloat(t, []float64{0, 10}, LoopPingPongContinuous, 1)
		require.NoError(t, a.Update(1))
		for i := 0; i < 3; i++ {
			require.NoError(t, a.Update(1.5))
		}
		assert.False(t, a.Finished())
		assert.Equal(t, 2, a.LoopCount())
		assert.Equal(t, 0.0, a.Value())
	})
}

func TestAnimateFloatSetProgress(t *testing.T) {
	t.Run("should fold whole turns away", func(t *testing.T) {
		a := mustFloat(t, []float64{0, 8}, LoopRepeat, 1)
		b := mustFloat(t, []float64{0, 8}, LoopRepeat, 1)
		a.SetProgress(0.25)
		b.SetProgress(3.25)
		assert.Equal(t, a.Value(), b.Value())

		require.NoError(t, a.Update(0.5))
		require.NoError(t, b.Update(0.5))
		assert.Equal(t, a.Value(), b.Value())
	})
	t.Run("should take the absolute value of negative input", func(t *testing.T) {
		a := mustFloat(t, []float64{0, 8}, LoopRepeat, 1)
		a.SetProgress(-0.25)
		assert.Equal(t, 0.25, a.Progress())
		a.SetProgress(-1.75)
		assert.Equal(t, 0.75, a.Progress())
	})
}

func TestAnimateFloatReset(t *testing.T) {
	a := mustFloat(t, []float64{0, 10}, LoopOnce, 1)
	require.NoError(t, a.Update(2))
	require.True(t, a.Finished())

	a.Reset()
	assert.False(t, a.Finished())
	assert.Equal(t, 0, a.LoopCount())
	assert.Equal(t, 0.0, a.Value())
}

func TestAnimatePoint(t *testing.T) {
	t.Run("should move both axes in lock step", func(t *testing.T) {
		a, err := NewAnimatePoint([]Vec2{{0, 0}, {10, -20}}, LoopOnce, 2)
		require.NoError(t, err)
		require.NoError(t, a.Update(1))
		got := a.Value()
		assert.InDelta(t, 5, got.X, 1e-9)
		assert.InDelta(t, -10, got.Y, 1e-9)
		assert.Equal(t, Vec2{0, 0}, a.Begin())
		assert.Equal(t, Vec2{10, -20}, a.End())
	})
	t.Run("should reject a single point", func(t *testing.T) {
		_, err := NewAnimatePoint([]Vec2{{1, 1}}, LoopOnce, 1)
		assert.ErrorIs(t, err, ErrTooFewKeyframes)
	})
	t.Run("should report backward motion", func(t *testing.T) {
		a, err := NewAnimatePoint([]Vec2{{0, 0}, {1, 1}}, LoopRepeat, 1)
		require.NoError(t, err)
		assert.ErrorIs(t, a.Update(-1), ErrBackward)
	})
}

func TestAnimateColor(t *testing.T) {
	t.Run("should interpolate channels and stay opaque", func(t *testing.T) {
		a, err := NewAnimateColor([]Color{{0, 0, 0, 0.2}, {1, 0.5, 0.25, 0.2}}, LoopOnce, 1)
		require.NoError(t, err)
		a.SetProgress(0.5)
		got := a.Value()
		assert.InDelta(t, 0.5, got.R, 1e-9)
		assert.InDelta(t, 0.25, got.G, 1e-9)
		assert.InDelta(t, 0.125, got.B, 1e-9)
		assert.Equal(t, 1.0, got.A)
	})
	t.Run("should finish with its channels", func(t *testing.T) {
		a, err := NewAnimateColor([]Color{ColorBlack, ColorWhite}, LoopOnce, 1)
		require.NoError(t, err)
		require.NoError(t, a.Update(1))
		assert.True(t, a.Finished())
		assert.Equal(t, ColorWhite, a.Value())
		assert.Equal(t, 1, a.LoopCount())
	})
	t.Run("should reject invalid duration", func(t *testing.T) {
		_, err := NewAnimateColor([]Color{ColorBlack, ColorWhite}, LoopOnce, 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}

func TestLoopModeString(t *testing.T) {
	assert.Equal(t, "once", LoopOnce.String())
	assert.Equal(t, "loop", LoopRepeat.String())
	assert.Equal(t, "ping-pong-reset", LoopPingPongReset.String())
	assert.Equal(t, "ping-pong-continuous", LoopPingPongContinuous.String())
	assert.Equal(t, "LoopMode(9)", LoopMode(9).String())
}
