package termhost

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/granseal/lambda"
)

// holdWindow is how long a key counts as held after its last press.
// Terminals report no key releases, only presses and auto-repeat.
const holdWindow = 150 * time.Millisecond

// KeyCode returns the lambda key code for a tcell key event: the rune for
// printable keys, the tcell.Key value otherwise.
func KeyCode(ev *tcell.EventKey) lambda.Key {
	if ev.Key() == tcell.KeyRune {
		return lambda.Key(ev.Rune())
	}
	return lambda.Key(ev.Key())
}

var mouseButtons = [...]struct {
	mask   tcell.ButtonMask
	button lambda.MouseButton
}{
	{tcell.ButtonPrimary, lambda.MouseButtonLeft},
	{tcell.ButtonSecondary, lambda.MouseButtonRight},
	{tcell.ButtonMiddle, lambda.MouseButtonMiddle},
}

// Input implements lambda.InputSource from tcell events. Feed it every
// event with Observe and call EndTick after each update.
type Input struct {
	now func() time.Time
	gfx *Graphics

	lastPress map[lambda.Key]time.Time
	pressed   map[lambda.Key]bool

	buttons     tcell.ButtonMask
	justPressed tcell.ButtonMask
	pressCell   [len(mouseButtons)][2]int
	cursor      lambda.Vec2
}

// NewInput returns an input source that maps mouse cells to world space
// through gfx.
func NewInput(gfx *Graphics) *Input {
	return &Input{
		now:       time.Now,
		gfx:       gfx,
		lastPress: make(map[lambda.Key]time.Time),
		pressed:   make(map[lambda.Key]bool),
	}
}

func (in *Input) KeyHeld(k lambda.Key) bool {
	t, ok := in.lastPress[k]
	return ok && in.now().Sub(t) <= holdWindow
}

func (in *Input) KeyPressed(k lambda.Key) bool { return in.pressed[k] }
func (in *Input) Cursor() lambda.Vec2          { return in.cursor }

func (in *Input) MouseHeld(b lambda.MouseButton) bool {
	return in.buttons&maskOf(b) != 0
}

func (in *Input) MousePressed(b lambda.MouseButton) bool {
	return in.justPressed&maskOf(b) != 0
}

func maskOf(b lambda.MouseButton) tcell.ButtonMask {
	for _, mb := range mouseButtons {
		if mb.button == b {
			return mb.mask
		}
	}
	return tcell.ButtonNone
}

// EndTick clears the per-tick pressed state.
func (in *Input) EndTick() {
	clear(in.pressed)
	in.justPressed = tcell.ButtonNone
}

// Observe records ev and returns the App events it produces.
func (in *Input) Observe(ev tcell.Event) (clicks []lambda.ClickEvent, keys []lambda.KeyEvent) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		code := KeyCode(ev)
		in.lastPress[code] = in.now()
		in.pressed[code] = true
		keys = append(keys, lambda.KeyEvent{Code: code, Kind: lambda.KeyPress})
		if ev.Key() == tcell.KeyRune {
			keys[0].Rune = ev.Rune()
			keys = append(keys, lambda.KeyEvent{Code: code, Rune: ev.Rune(), Kind: lambda.KeyTyped})
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		in.cursor = in.gfx.CellToWorld(x, y)
		now := ev.Buttons()
		for i, mb := range mouseButtons {
			was := in.buttons&mb.mask != 0
			is := now&mb.mask != 0
			switch {
			case is && !was:
				in.justPressed |= mb.mask
				in.pressCell[i] = [2]int{x, y}
				clicks = append(clicks, lambda.ClickEvent{Point: in.cursor, Button: mb.button, Kind: lambda.PointerPress})
			case was && !is:
				clicks = append(clicks, lambda.ClickEvent{Point: in.cursor, Button: mb.button, Kind: lambda.PointerRelease})
				if in.pressCell[i] == [2]int{x, y} {
					clicks = append(clicks, lambda.ClickEvent{Point: in.cursor, Button: mb.button, Kind: lambda.PointerClick})
				}
			}
		}
		in.buttons = now
	}
	return clicks, keys
}
