package lambda

import "math"

// EmitterConfig controls how an Emitter spawns particles.
type EmitterConfig struct {
	// Rate is the number of particles spawned per second.
	Rate float64
	// Lifetime is the range of particle lifetimes in seconds.
	Lifetime Range
	// Speed is the range of initial speeds in units per second.
	Speed Range
	// Angle is the range of emission angles in radians.
	Angle Range
	// StartSize and EndSize, when EndSize is non-zero, animate the size
	// over each particle's life. Otherwise StartSize is a fixed size.
	StartSize Range
	EndSize   Range
	// StartColor replaces the default particle color when non-nil. EndColor,
	// when non-nil, animates from the start color over each particle's life.
	StartColor *Color
	EndColor   *Color
	// FadeIn and FadeOut are the alpha ramp windows in seconds.
	FadeIn  float64
	FadeOut float64
	// Gravity enables the system's gravity for spawned particles.
	Gravity bool
	// Shape is the particle shape; nil keeps the particle default.
	Shape Shape
	// Customize, when set, runs on every particle before it is emitted.
	Customize func(p *Particle)
}

// Emitter is a Component that spawns particles into a ParticleSystem at
// its owner's world origin.
type Emitter struct {
	BaseComponent

	config    EmitterConfig
	system    *ParticleSystem
	emitAccum float64
	active    bool
	err       error
}

// NewEmitter creates a stopped emitter feeding system.
func NewEmitter(system *ParticleSystem, cfg EmitterConfig) *Emitter {
	return &Emitter{config: cfg, system: system}
}

// Kind implements Kinded.
func (e *Emitter) Kind() ComponentKind { return "emitter" }

// Start begins emitting particles.
func (e *Emitter) Start() {
	e.active = true
}

// Stop stops emitting new particles. Existing particles live out their lives.
func (e *Emitter) Stop() {
	e.active = false
	e.emitAccum = 0
}

// IsActive reports whether the emitter is currently emitting.
func (e *Emitter) IsActive() bool {
	return e.active
}

// Config returns a pointer to the emitter's config for live tuning.
func (e *Emitter) Config() *EmitterConfig {
	return &e.config
}

// Err returns the last error from emitting, typically a bad size or color
// range that the animation constructors refused.
func (e *Emitter) Err() error {
	return e.err
}

// Update spawns Rate*dt particles, carrying fractions over between frames.
func (e *Emitter) Update(dt float64) {
	if !e.active || e.config.Rate <= 0 {
		return
	}
	e.emitAccum += e.config.Rate * dt
	n := int(e.emitAccum)
	e.emitAccum -= float64(n)
	e.Burst(n)
}

// Burst spawns n particles immediately, regardless of the active state.
func (e *Emitter) Burst(n int) {
	origin := Vec2{}
	if e.owner != nil {
		origin = e.owner.LocalToWorld(Vec2{})
	}
	for i := 0; i < n; i++ {
		if err := e.system.Emit(e.spawn(origin)); err != nil {
			e.err = err
			return
		}
	}
}

func (e *Emitter) spawn(origin Vec2) *Particle {
	cfg := &e.config
	sin, cos := math.Sincos(cfg.Angle.Random())
	speed := cfg.Speed.Random()

	p := NewParticle(origin).
		WithVelocity(Vec2{cos * speed, sin * speed}).
		WithFadeIn(cfg.FadeIn).
		WithFadeOut(cfg.FadeOut)

	life := cfg.Lifetime.Random()
	if life <= 0 {
		life = 1
	}
	p.WithLife(life)

	if !cfg.Gravity {
		p.NoGravity()
	}
	if cfg.Shape != nil {
		p.WithShape(cfg.Shape)
	}

	start := cfg.StartSize.Random()
	if start == 0 {
		start = 1
	}
	if cfg.EndSize != (Range{}) {
		p.WithSizes([]float64{start, cfg.EndSize.Random()}, life, LoopOnce)
	} else {
		p.WithSize(start)
	}
	if cfg.StartColor != nil {
		p.WithColor(*cfg.StartColor)
	}
	if cfg.EndColor != nil {
		p.WithColors([]Color{p.Color, *cfg.EndColor}, life, LoopOnce)
	}

	if cfg.Customize != nil {
		cfg.Customize(p)
	}
	return p
}
