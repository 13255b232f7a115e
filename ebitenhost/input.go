package ebitenhost

import (
	"github.com/granseal/lambda"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// clickDeadZone is how far, in pixels, the pointer may travel between
// press and release for the pair to still count as a click.
const clickDeadZone = 4.0

var buttons = [...]lambda.MouseButton{
	lambda.MouseButtonLeft,
	lambda.MouseButtonRight,
	lambda.MouseButtonMiddle,
}

// Input implements lambda.InputSource over ebiten's polled input state.
// Key values are ebiten.Key codes.
type Input struct{}

func (Input) KeyHeld(k lambda.Key) bool    { return ebiten.IsKeyPressed(ebiten.Key(k)) }
func (Input) KeyPressed(k lambda.Key) bool { return inpututil.IsKeyJustPressed(ebiten.Key(k)) }

func (Input) MouseHeld(b lambda.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(mouseButton(b))
}

func (Input) MousePressed(b lambda.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButton(b))
}

func (Input) Cursor() lambda.Vec2 {
	x, y := ebiten.CursorPosition()
	return lambda.Pt(float64(x), float64(y))
}

func mouseButton(b lambda.MouseButton) ebiten.MouseButton {
	switch b {
	case lambda.MouseButtonRight:
		return ebiten.MouseButtonRight
	case lambda.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	}
	return ebiten.MouseButtonLeft
}

// Key converts an ebiten key to a lambda key code.
func Key(k ebiten.Key) lambda.Key {
	return lambda.Key(k)
}

// dispatcher turns this tick's input edges into App events.
type dispatcher struct {
	pressAt [len(buttons)]lambda.Vec2
	keys    []ebiten.Key
	chars   []rune
}

func (d *dispatcher) dispatch(app *lambda.App) {
	cursor := Input{}.Cursor()
	for i, b := range buttons {
		eb := mouseButton(b)
		if inpututil.IsMouseButtonJustPressed(eb) {
			d.pressAt[i] = cursor
			app.Click(lambda.ClickEvent{Point: cursor, Button: b, Kind: lambda.PointerPress})
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			app.Click(lambda.ClickEvent{Point: cursor, Button: b, Kind: lambda.PointerRelease})
			if isClick(d.pressAt[i], cursor) {
				app.Click(lambda.ClickEvent{Point: cursor, Button: b, Kind: lambda.PointerClick})
			}
		}
	}

	d.keys = inpututil.AppendJustPressedKeys(d.keys[:0])
	for _, k := range d.keys {
		app.KeyEvent(lambda.KeyEvent{Code: Key(k), Kind: lambda.KeyPress})
	}
	d.keys = inpututil.AppendJustReleasedKeys(d.keys[:0])
	for _, k := range d.keys {
		app.KeyEvent(lambda.KeyEvent{Code: Key(k), Kind: lambda.KeyRelease})
	}
	d.chars = ebiten.AppendInputChars(d.chars[:0])
	for _, r := range d.chars {
		app.KeyEvent(lambda.KeyEvent{Rune: r, Kind: lambda.KeyTyped})
	}
}

// isClick reports whether a release at to completes a click pressed at from.
func isClick(from, to lambda.Vec2) bool {
	d := to.Sub(from)
	return d.X*d.X+d.Y*d.Y <= clickDeadZone*clickDeadZone
}
