// Package termhost runs a lambda App in a terminal using tcell. Shapes are
// rasterized onto character cells by painting cell backgrounds, so any
// App that draws with lambda.Graphics works unchanged at low resolution.
package termhost

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/granseal/lambda"
)

// DefaultCellSize is the world size of one terminal cell. Cells are
// roughly twice as tall as they are wide.
var DefaultCellSize = lambda.Vec2{X: 8, Y: 16}

// Graphics implements lambda.Graphics on a tcell.Screen. A cell is filled
// when its center falls inside the transformed shape; translucent colors
// are blended over the cell's current background.
type Graphics struct {
	screen tcell.Screen
	cell   lambda.Vec2
	clear  lambda.Color
	m      lambda.Affine
	color  lambda.Color
}

// NewGraphics draws on screen with cells of the given world size. A zero
// cell size uses DefaultCellSize.
func NewGraphics(screen tcell.Screen, cell lambda.Vec2) *Graphics {
	if cell.X <= 0 || cell.Y <= 0 {
		cell = DefaultCellSize
	}
	g := &Graphics{screen: screen, cell: cell, clear: lambda.ColorBlack}
	g.Reset()
	return g
}

// Reset restores the identity transform and white fill.
func (g *Graphics) Reset() {
	g.m = lambda.Identity()
	g.color = lambda.ColorWhite
}

// Clear paints every cell with c and remembers it as the color blended
// against for cells without an explicit background.
func (g *Graphics) Clear(c lambda.Color) {
	g.clear = c
	g.screen.Fill(' ', tcell.StyleDefault.Background(cellColor(c)))
}

func (g *Graphics) Transform() lambda.Affine     { return g.m }
func (g *Graphics) SetTransform(m lambda.Affine) { g.m = m }
func (g *Graphics) Translate(x, y float64)       { g.m = g.m.Translate(x, y) }
func (g *Graphics) Rotate(theta float64)         { g.m = g.m.Rotate(theta) }
func (g *Graphics) Scale(sx, sy float64)         { g.m = g.m.Scale(sx, sy) }
func (g *Graphics) SetColor(c lambda.Color)      { g.color = c }

// CellToWorld returns the world position of the center of cell (x, y).
func (g *Graphics) CellToWorld(x, y int) lambda.Vec2 {
	return lambda.Pt((float64(x)+0.5)*g.cell.X, (float64(y)+0.5)*g.cell.Y)
}

// Fill paints the cells covered by s.
func (g *Graphics) Fill(s lambda.Shape) {
	if s == nil || g.color.A <= 0 {
		return
	}
	inv, ok := g.m.Invert()
	if !ok {
		return
	}
	w, h := g.screen.Size()
	box := g.m.ApplyRect(s.Bounds())
	x0 := max(0, int(math.Floor(box.X/g.cell.X)))
	y0 := max(0, int(math.Floor(box.Y/g.cell.Y)))
	x1 := min(w-1, int(math.Ceil((box.X+box.Width)/g.cell.X)))
	y1 := min(h-1, int(math.Ceil((box.Y+box.Height)/g.cell.Y)))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := inv.ApplyVec(g.CellToWorld(x, y))
			if !s.Contains(p.X, p.Y) {
				continue
			}
			g.paint(x, y)
		}
	}
}

func (g *Graphics) paint(x, y int) {
	_, _, style, _ := g.screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	dst := g.clear
	if bg.Valid() {
		r, gr, b := bg.RGB()
		dst = lambda.RGB(float64(r)/255, float64(gr)/255, float64(b)/255)
	}
	out := blend(g.color, dst)
	g.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(cellColor(out)))
}

// blend composites src over an opaque dst.
func blend(src, dst lambda.Color) lambda.Color {
	a := lambda.Clamp(src.A, 0, 1)
	return lambda.RGB(
		lambda.Lerp(dst.R, src.R, a),
		lambda.Lerp(dst.G, src.G, a),
		lambda.Lerp(dst.B, src.B, a),
	)
}

// cellColor converts the RGB part of c to a 24-bit terminal color.
func cellColor(c lambda.Color) tcell.Color {
	ch := func(v float64) int32 { return int32(math.Round(lambda.Clamp(v, 0, 1) * 255)) }
	return tcell.NewRGBColor(ch(c.R), ch(c.G), ch(c.B))
}
