package lambda

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DefaultGravity is the downward acceleration applied to particles, in
// units per second squared.
const DefaultGravity = 300.0

// Particle is a short-lived visual unit. Configure one with the With*
// builder methods, each of which returns the particle so calls chain, then
// hand it to ParticleSystem.Emit.
//
// Builder methods that construct animations record the first failure; Err
// reports it and Emit refuses the particle.
type Particle struct {
	Position Vec2
	Velocity Vec2
	Rotation float64 // radians
	Spin     float64 // radians per second
	Color    Color
	Shape    Shape
	Size     float64
	Image    string // sprite name hint for hosts that draw images

	Life        float64 // seconds until removal
	Elapsed     float64
	FadeInTime  float64
	FadeOutTime float64
	Gravity     bool

	VelocityAnim *AnimatePoint
	SizeAnim     *AnimateFloat
	ColorAnim    *AnimateColor

	err error
}

// NewParticle creates a one-second orange particle at pos.
func NewParticle(pos Vec2) *Particle {
	return &Particle{
		Position:    pos,
		Color:       ColorOrange,
		Shape:       RectShape{-4, -4, 8, 8},
		Size:        1,
		Life:        1,
		FadeInTime:  0.05,
		FadeOutTime: 0.25,
		Gravity:     true,
	}
}

// Err returns the first configuration error, if any.
func (p *Particle) Err() error {
	return p.err
}

func (p *Particle) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *Particle) WithShape(s Shape) *Particle {
	p.Shape = s
	return p
}

func (p *Particle) WithVelocity(v Vec2) *Particle {
	p.Velocity = v
	return p
}

// WithVelocities drives the velocity from keyframes instead of integrating it.
func (p *Particle) WithVelocities(v []Vec2, duration float64, mode LoopMode) *Particle {
	a, err := NewAnimatePoint(v, mode, duration)
	if err != nil {
		p.fail(fmt.Errorf("particle velocities: %w", err))
		return p
	}
	p.VelocityAnim = a
	return p
}

// WithRandomVelocity sets each velocity component uniformly in [-scale, scale].
func (p *Particle) WithRandomVelocity(scale float64) *Particle {
	p.Velocity.X = (-1 + rand.Float64()*2) * scale
	p.Velocity.Y = (-1 + rand.Float64()*2) * scale
	return p
}

// WithSpeed multiplies the current velocity.
func (p *Particle) WithSpeed(s float64) *Particle {
	p.Velocity = p.Velocity.Mul(s)
	return p
}

func (p *Particle) WithSize(s float64) *Particle {
	p.Size = s
	return p
}

func (p *Particle) WithSizes(s []float64, duration float64, mode LoopMode) *Particle {
	a, err := NewAnimateFloat(s, mode, duration)
	if err != nil {
		p.fail(fmt.Errorf("particle sizes: %w", err))
		return p
	}
	p.SizeAnim = a
	return p
}

func (p *Particle) WithColor(c Color) *Particle {
	p.Color = c
	return p
}

func (p *Particle) WithColors(c []Color, duration float64, mode LoopMode) *Particle {
	a, err := NewAnimateColor(c, mode, duration)
	if err != nil {
		p.fail(fmt.Errorf("particle colors: %w", err))
		return p
	}
	p.ColorAnim = a
	return p
}

// WithRandomHue shifts the base color's hue by a random amount in [-v, v].
func (p *Particle) WithRandomHue(v float64) *Particle {
	h, s, b := p.Color.HSB()
	p.Color = HSB(h-v+rand.Float64()*v*2, s, b)
	return p
}

func (p *Particle) WithRandomColor() *Particle {
	p.Color = RandomColor()
	return p
}

func (p *Particle) WithLife(seconds float64) *Particle {
	p.Life = seconds
	return p
}

func (p *Particle) WithFadeIn(seconds float64) *Particle {
	p.FadeInTime = seconds
	return p
}

func (p *Particle) WithFadeOut(seconds float64) *Particle {
	p.FadeOutTime = seconds
	return p
}

func (p *Particle) NoGravity() *Particle {
	p.Gravity = false
	return p
}

func (p *Particle) WithRotation(r, spin float64) *Particle {
	p.Rotation = r
	p.Spin = spin
	return p
}

// WithRandomSpin sets the spin uniformly in [-scale, scale].
func (p *Particle) WithRandomSpin(scale float64) *Particle {
	p.Spin = -scale + rand.Float64()*scale*2
	return p
}

func (p *Particle) WithImage(name string) *Particle {
	p.Image = name
	return p
}

// Alpha returns the fade factor for the particle's current age: ramping
// up during the fade-in window, down during the fade-out window, 1 between.
func (p *Particle) Alpha() float64 {
	if p.Elapsed < p.FadeInTime {
		return p.Elapsed / p.FadeInTime
	}
	left := p.Life - p.Elapsed
	if p.FadeOutTime > 0 && left <= p.FadeOutTime {
		return left / p.FadeOutTime
	}
	return 1
}

// DisplayColor is the animated color when present, else the base color,
// with Alpha substituted.
func (p *Particle) DisplayColor() Color {
	c := p.Color
	if p.ColorAnim != nil {
		c = p.ColorAnim.Value()
	}
	return c.WithAlpha(p.Alpha())
}

// Expired reports whether the particle has lived out its life.
func (p *Particle) Expired() bool {
	return p.Elapsed >= p.Life
}

// ParticleSystem owns a set of live particles. Emitted particles wait in a
// queue and join the live set at the start of the next Update, so emitting
// from inside an update or draw callback never disturbs the current pass.
type ParticleSystem struct {
	// Gravity is the downward acceleration for particles with Gravity set.
	Gravity float64

	particles []*Particle
	pending   []*Particle
}

// NewParticleSystem creates an empty system with DefaultGravity.
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{Gravity: DefaultGravity}
}

// Emit queues p for admission on the next Update. It refuses particles
// whose builder recorded an error.
func (s *ParticleSystem) Emit(p *Particle) error {
	if p == nil {
		return errors.New("lambda: cannot emit nil particle")
	}
	if p.err != nil {
		return fmt.Errorf("emit particle: %w", p.err)
	}
	s.pending = append(s.pending, p)
	return nil
}

// Update admits queued particles, advances every live particle by dt
// seconds, and removes the ones whose life is over. Animation errors do
// not stop the pass; they are joined and returned at the end.
func (s *ParticleSystem) Update(dt float64) error {
	s.particles = append(s.particles, s.pending...)
	clear(s.pending)
	s.pending = s.pending[:0]

	var errs []error
	for _, p := range s.particles {
		if p.VelocityAnim != nil {
			if err := p.VelocityAnim.Update(dt); err != nil {
				errs = append(errs, err)
			}
			p.Velocity = p.VelocityAnim.Value()
			if p.Gravity {
				// Scaled by age rather than dt: the animation resets the
				// velocity every tick, so this is the accumulated fall.
				p.Velocity.Y += s.Gravity * p.Elapsed
			}
		} else if p.Gravity {
			p.Velocity.Y += s.Gravity * dt
		}

		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		p.Elapsed += dt
		p.Rotation += p.Spin * dt

		if p.SizeAnim != nil {
			if err := p.SizeAnim.Update(dt); err != nil {
				errs = append(errs, err)
			}
		}
		if p.ColorAnim != nil {
			if err := p.ColorAnim.Update(dt); err != nil {
				errs = append(errs, err)
			}
		}
		if p.SizeAnim != nil {
			p.Size = p.SizeAnim.Value()
		}
	}

	alive := s.particles[:0]
	for _, p := range s.particles {
		if !p.Expired() {
			alive = append(alive, p)
		}
	}
	clear(s.particles[len(alive):])
	s.particles = alive

	return errors.Join(errs...)
}

// Draw fills every live particle's shape at its position, rotation and
// size. The graphics transform is restored after each particle.
func (s *ParticleSystem) Draw(g Graphics) {
	for _, p := range s.particles {
		saved := g.Transform()
		g.SetColor(p.DisplayColor())
		g.Translate(p.Position.X, p.Position.Y)
		g.Rotate(p.Rotation)
		g.Scale(p.Size, p.Size)
		g.Fill(p.Shape)
		g.SetTransform(saved)
	}
}

// Len returns the number of live particles.
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}

// Pending returns the number of particles waiting for the next Update.
func (s *ParticleSystem) Pending() int {
	return len(s.pending)
}

// Particles returns the live particles. The returned slice MUST NOT be mutated.
func (s *ParticleSystem) Particles() []*Particle {
	return s.particles
}

// Clear drops all live and pending particles.
func (s *ParticleSystem) Clear() {
	clear(s.particles)
	s.particles = s.particles[:0]
	clear(s.pending)
	s.pending = s.pending[:0]
}
