package lambda

import (
	"fmt"
	"log/slog"
	"time"
)

// App is the top-level object that owns the entity tree, the particle
// system and the queues of injected input. Hosts drive it by calling
// Update and Draw once per frame and forwarding input through Click and
// KeyEvent.
type App struct {
	root      *Entity
	particles *ParticleSystem
	logger    *slog.Logger
	debug     bool

	frame    uint64
	lastDraw time.Duration

	injectQueue []injectedEvent
	runner      *ScriptRunner
}

// NewApp creates an app with an empty root entity named "root" and a
// particle system using DefaultGravity.
func NewApp() *App {
	return &App{
		root:      NewEntity("root"),
		particles: NewParticleSystem(),
		logger:    slog.Default(),
	}
}

// NewAppFromConfig creates an app and applies the gravity and debug
// settings of cfg.
func NewAppFromConfig(cfg Config) *App {
	a := NewApp()
	a.particles.Gravity = cfg.Gravity
	a.SetDebugMode(cfg.Debug)
	return a
}

// Root returns the app's root entity.
func (a *App) Root() *Entity {
	return a.root
}

// Particles returns the app's particle system.
func (a *App) Particles() *ParticleSystem {
	return a.particles
}

// Logger returns the logger used for frame diagnostics.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// SetLogger replaces the logger. A nil logger restores slog.Default.
func (a *App) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	a.logger = l
	if a.debug {
		debugLogger = l
	}
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings are logged and per-frame timing stats are written at
// debug level, all through the app's logger.
func (a *App) SetDebugMode(enabled bool) {
	a.debug = enabled
	debugEnabled = enabled
	debugLogger = nil
	if enabled {
		debugLogger = a.logger
	}
}

// Frame returns the number of completed Update calls.
func (a *App) Frame() uint64 {
	return a.frame
}

// Update advances the app by dt seconds: it steps the attached script,
// delivers one injected event, updates the entity tree and then the
// particle system. The returned error comes from the particle system and
// does not stop the frame.
func (a *App) Update(dt float64) error {
	var stats debugStats
	var t0 time.Time

	if a.runner != nil {
		a.runner.step(a)
	}
	a.processInjected()

	if a.debug {
		t0 = time.Now()
	}
	a.root.Update(dt)
	if a.debug {
		stats.updateTime = time.Since(t0)
		t0 = time.Now()
	}

	err := a.particles.Update(dt)
	if a.debug {
		stats.particleTime = time.Since(t0)
		stats.entityCount = len(a.root.All())
		stats.particleCount = a.particles.Len()
	}

	a.frame++
	a.debugLog(stats)
	if err != nil {
		return fmt.Errorf("update frame %d: %w", a.frame, err)
	}
	return nil
}

// Draw renders the entity tree and then the particles. Particles live in
// world space, so they are drawn under the transform g had on entry.
func (a *App) Draw(g Graphics) {
	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	saved := g.Transform()
	a.root.Draw(g)
	g.SetTransform(saved)
	a.particles.Draw(g)
	g.SetTransform(saved)

	if a.debug {
		a.lastDraw = time.Since(t0)
	}
}

// Click forwards a pointer event to the root entity.
func (a *App) Click(ev ClickEvent) bool {
	return a.root.Click(ev)
}

// KeyEvent forwards a key event to the root entity.
func (a *App) KeyEvent(ev KeyEvent) bool {
	return a.root.KeyEvent(ev)
}

// EntityAt returns the deepest entity hit at the world point p.
func (a *App) EntityAt(p Vec2) *Entity {
	return a.root.EntityByClick(p)
}
