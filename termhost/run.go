package termhost

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/granseal/lambda"
)

// Options tune a terminal run.
type Options struct {
	// CellSize is the world size of one cell; zero uses DefaultCellSize.
	CellSize lambda.Vec2
	// OnTick, when set, runs after each update with the tick's input
	// state, before the draw.
	OnTick func(in lambda.InputSource)
}

// Run creates a terminal screen and runs app on it until Esc or Ctrl-C is
// pressed or ctx is done. The terminal is restored before Run returns.
func Run(ctx context.Context, app *lambda.App, cfg lambda.Config, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Fini()
	return RunScreen(ctx, app, cfg, screen, opts)
}

// RunScreen runs app on an initialized screen, ticking cfg.TPS times per
// second. It returns nil when the user quits and ctx.Err() when ctx is
// done. The caller owns the screen.
func RunScreen(ctx context.Context, app *lambda.App, cfg lambda.Config, screen tcell.Screen, opts Options) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	gfx := NewGraphics(screen, opts.CellSize)
	in := NewInput(gfx)
	screen.EnableMouse()
	screen.HideCursor()

	dt := 1.0 / float64(cfg.TPS)
	ticker := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	logger := app.Logger()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if isQuit(ev) {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			clicks, keys := in.Observe(ev)
			for _, c := range clicks {
				app.Click(c)
			}
			for _, k := range keys {
				app.KeyEvent(k)
			}

		case <-ticker.C:
			if err := app.Update(dt); err != nil {
				logger.Warn("Update failed", "error", err)
			}
			if opts.OnTick != nil {
				opts.OnTick(in)
			}
			in.EndTick()

			gfx.Clear(cfg.ClearColor)
			gfx.Reset()
			app.Draw(gfx)
			screen.Show()
		}
	}
}

func isQuit(ev tcell.Event) bool {
	k, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return k.Key() == tcell.KeyEscape || k.Key() == tcell.KeyCtrlC
}
