package ebitenhost

import (
	"fmt"

	"github.com/granseal/lambda"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsInterval is how often, in seconds, the FPS overlay text refreshes.
const fpsInterval = 0.5

// Game implements ebiten.Game around a lambda App.
type Game struct {
	// ShowFPS draws the measured FPS and TPS in the top-left corner.
	ShowFPS bool

	app   *lambda.App
	cfg   lambda.Config
	gfx   *Graphics
	input dispatcher

	fpsText  string
	fpsTimer float64
}

// NewGame wraps app. cfg supplies the logical screen size, tick rate and
// clear color.
func NewGame(app *lambda.App, cfg lambda.Config) *Game {
	return &Game{
		app: app,
		cfg: cfg,
		gfx: NewGraphics(nil),
	}
}

// Input returns the polled input source for use from update callbacks.
func (g *Game) Input() lambda.InputSource {
	return Input{}
}

// Update delivers input events and advances the app by one tick. Particle
// animation errors are logged and do not stop the game.
func (g *Game) Update() error {
	g.input.dispatch(g.app)

	dt := 1.0 / float64(ebiten.TPS())
	if err := g.app.Update(dt); err != nil {
		g.app.Logger().Warn("Update failed", "error", err)
	}

	g.fpsTimer += dt
	if g.fpsTimer >= fpsInterval {
		g.fpsTimer = 0
		g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	return nil
}

// Draw clears the screen and renders the app.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.RGBA())
	g.gfx.Reset(screen)
	g.app.Draw(g.gfx)
	if g.ShowFPS {
		ebitenutil.DebugPrint(screen, g.fpsText)
	}
}

// Layout uses a fixed logical size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window configured by cfg and runs app until it closes.
func Run(app *lambda.App, cfg lambda.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	g := NewGame(app, cfg)
	g.ShowFPS = cfg.Debug

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
