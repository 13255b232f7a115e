package lambda

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTooFewKeyframes is returned when an animation is built from fewer
	// than two keyframes.
	ErrTooFewKeyframes = errors.New("lambda: animation needs at least two keyframes")
	// ErrInvalidDuration is returned for a zero, negative or non-finite duration.
	ErrInvalidDuration = errors.New("lambda: animation duration must be positive")
	// ErrBackward is returned when a forward-only animation is driven below
	// its first keyframe.
	ErrBackward = errors.New("lambda: animation moved backward in a forward-only loop mode")
)

// LoopMode selects what an animation does when it runs off either end of
// its keyframes.
type LoopMode uint8

const (
	LoopOnce               LoopMode = iota // stop on the last keyframe
	LoopRepeat                             // jump back to the first keyframe
	LoopPingPongReset                      // play forward, then back once, then stop
	LoopPingPongContinuous                 // bounce between the ends forever
)

func (m LoopMode) String() string {
	switch m {
	case LoopOnce:
		return "once"
	case LoopRepeat:
		return "loop"
	case LoopPingPongReset:
		return "ping-pong-reset"
	case LoopPingPongContinuous:
		return "ping-pong-continuous"
	default:
		return fmt.Sprintf("LoopMode(%d)", uint8(m))
	}
}

// Animation interpolates a value of type T across a sequence of keyframes
// over time.
type Animation[T any] interface {
	Reset()
	SetProgress(p float64)
	Update(dt float64) error
	Value() T
	Begin() T
	End() T
	Finished() bool
	LoopCount() int
}

var (
	_ Animation[float64] = (*AnimateFloat)(nil)
	_ Animation[Vec2]    = (*AnimatePoint)(nil)
	_ Animation[Color]   = (*AnimateColor)(nil)
)

// AnimateFloat interpolates between scalar keyframes. One pass over all
// keyframes takes Duration seconds regardless of how many there are.
type AnimateFloat struct {
	values   []float64
	mode     LoopMode
	duration float64
	easing   Easing

	progress  float64 // normalized: 0 at the first keyframe, 1 at the last
	direction float64
	playing   bool
	loops     int
}

// NewAnimateFloat creates a playing animation over values.
func NewAnimateFloat(values []float64, mode LoopMode, duration float64) (*AnimateFloat, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("animate float (%d keyframes): %w", len(values), ErrTooFewKeyframes)
	}
	if !(duration > 0) || math.IsInf(duration, 1) {
		return nil, fmt.Errorf("animate float (duration %v): %w", duration, ErrInvalidDuration)
	}
	a := &AnimateFloat{
		values:   append([]float64(nil), values...),
		mode:     mode,
		duration: duration,
	}
	a.Reset()
	return a, nil
}

// Mode returns the loop mode.
func (a *AnimateFloat) Mode() LoopMode { return a.mode }

// Duration returns the time in seconds for one pass over the keyframes.
func (a *AnimateFloat) Duration() float64 { return a.duration }

// SetEasing shapes the interpolation inside each keyframe segment.
// nil restores linear interpolation.
func (a *AnimateFloat) SetEasing(e Easing) { a.easing = e }

// Reset rewinds to the first keyframe and resumes playing forward.
func (a *AnimateFloat) Reset() {
	a.progress = 0
	a.direction = 1
	a.loops = 0
	a.playing = true
}

// SetProgress jumps to |p mod 1| of the way through the keyframes.
func (a *AnimateFloat) SetProgress(p float64) {
	a.progress = math.Abs(math.Mod(p, 1))
}

// Progress returns the normalized position in [0, 1].
func (a *AnimateFloat) Progress() float64 { return a.progress }

// Update advances the animation by dt seconds and applies the loop mode at
// the boundaries. Driving a LoopOnce or LoopRepeat animation below its
// first keyframe (negative dt) clamps it there and returns ErrBackward.
func (a *AnimateFloat) Update(dt float64) error {
	if a.playing {
		a.progress += dt * a.direction / a.duration
	}

	if a.progress >= 1 {
		switch a.mode {
		case LoopOnce:
			a.playing = false
			a.progress = 1
			a.loops = 1
		case LoopRepeat:
			for a.progress >= 1 {
				a.progress--
				a.loops++
			}
		case LoopPingPongReset, LoopPingPongContinuous:
			a.direction = -a.direction
			a.progress = 1
		}
	}

	if a.progress < 0 {
		switch a.mode {
		case LoopOnce, LoopRepeat:
			a.progress = 0
			return fmt.Errorf("update %s animation: %w", a.mode, ErrBackward)
		case LoopPingPongReset:
			a.playing = false
			a.progress = 0
			a.loops = 1
		case LoopPingPongContinuous:
			a.direction = -a.direction
			a.progress = 0
			a.loops++
		}
	}
	return nil
}

// Value returns the interpolated value at the current progress.
func (a *AnimateFloat) Value() float64 {
	last := float64(len(a.values) - 1)
	pos := a.progress * last
	if pos >= last {
		return a.End()
	}
	if pos <= 0 {
		return a.Begin()
	}
	i := int(pos)
	t := pos - float64(i)
	if a.easing != nil {
		t = a.easing(t)
	}
	return Lerp(a.values[i], a.values[i+1], t)
}

func (a *AnimateFloat) Begin() float64 { return a.values[0] }
func (a *AnimateFloat) End() float64   { return a.values[len(a.values)-1] }

// Finished reports whether the animation has stopped playing.
func (a *AnimateFloat) Finished() bool { return !a.playing }

// LoopCount returns the number of completed loops or ping-pong cycles.
func (a *AnimateFloat) LoopCount() int { return a.loops }

// AnimatePoint animates a Vec2 as two lock-stepped scalar animations.
type AnimatePoint struct {
	x, y *AnimateFloat
}

// NewAnimatePoint creates a playing animation over points.
func NewAnimatePoint(points []Vec2, mode LoopMode, duration float64) (*AnimatePoint, error) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	x, err := NewAnimateFloat(xs, mode, duration)
	if err != nil {
		return nil, fmt.Errorf("animate point: %w", err)
	}
	y, _ := NewAnimateFloat(ys, mode, duration)
	return &AnimatePoint{x: x, y: y}, nil
}

func (a *AnimatePoint) SetEasing(e Easing) {
	a.x.SetEasing(e)
	a.y.SetEasing(e)
}

func (a *AnimatePoint) Reset() {
	a.x.Reset()
	a.y.Reset()
}

func (a *AnimatePoint) SetProgress(p float64) {
	a.x.SetProgress(p)
	a.y.SetProgress(p)
}

// Update advances both channels. They share mode and duration, so they
// fail together; the first channel's error is returned.
func (a *AnimatePoint) Update(dt float64) error {
	err := a.x.Update(dt)
	_ = a.y.Update(dt)
	return err
}

func (a *AnimatePoint) Value() Vec2    { return Vec2{a.x.Value(), a.y.Value()} }
func (a *AnimatePoint) Begin() Vec2    { return Vec2{a.x.Begin(), a.y.Begin()} }
func (a *AnimatePoint) End() Vec2      { return Vec2{a.x.End(), a.y.End()} }
func (a *AnimatePoint) Finished() bool { return a.x.Finished() }
func (a *AnimatePoint) LoopCount() int { return a.x.LoopCount() }

// AnimateColor animates the red, green and blue channels as three
// lock-stepped scalar animations. The resulting color is opaque.
type AnimateColor struct {
	r, g, b *AnimateFloat
}

// NewAnimateColor creates a playing animation over colors.
func NewAnimateColor(colors []Color, mode LoopMode, duration float64) (*AnimateColor, error) {
	rs := make([]float64, len(colors))
	gs := make([]float64, len(colors))
	bs := make([]float64, len(colors))
	for i, c := range colors {
		rs[i], gs[i], bs[i] = c.R, c.G, c.B
	}
	r, err := NewAnimateFloat(rs, mode, duration)
	if err != nil {
		return nil, fmt.Errorf("animate color: %w", err)
	}
	g, _ := NewAnimateFloat(gs, mode, duration)
	b, _ := NewAnimateFloat(bs, mode, duration)
	return &AnimateColor{r: r, g: g, b: b}, nil
}

func (a *AnimateColor) SetEasing(e Easing) {
	a.r.SetEasing(e)
	a.g.SetEasing(e)
	a.b.SetEasing(e)
}

func (a *AnimateColor) Reset() {
	a.r.Reset()
	a.g.Reset()
	a.b.Reset()
}

func (a *AnimateColor) SetProgress(p float64) {
	a.r.SetProgress(p)
	a.g.SetProgress(p)
	a.b.SetProgress(p)
}

func (a *AnimateColor) Update(dt float64) error {
	err := a.r.Update(dt)
	_ = a.g.Update(dt)
	_ = a.b.Update(dt)
	return err
}

func (a *AnimateColor) Value() Color   { return RGB(a.r.Value(), a.g.Value(), a.b.Value()) }
func (a *AnimateColor) Begin() Color   { return RGB(a.r.Begin(), a.g.Begin(), a.b.Begin()) }
func (a *AnimateColor) End() Color     { return RGB(a.r.End(), a.g.End(), a.b.End()) }
func (a *AnimateColor) Finished() bool { return a.r.Finished() }
func (a *AnimateColor) LoopCount() int { return a.r.LoopCount() }
