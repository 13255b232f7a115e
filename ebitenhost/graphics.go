// Package ebitenhost runs a lambda App in an Ebitengine window.
package ebitenhost

import (
	"image/color"
	"sync"

	"github.com/granseal/lambda"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	fillImageOnce sync.Once
	fillImage     *ebiten.Image
)

// solidImage returns a 1x1 white source image for untextured triangles.
func solidImage() *ebiten.Image {
	fillImageOnce.Do(func() {
		fillImage = ebiten.NewImage(1, 1)
		fillImage.Fill(color.White)
	})
	return fillImage
}

// Graphics implements lambda.Graphics on an *ebiten.Image. Shapes are
// filled as anti-aliased paths built from their outlines.
type Graphics struct {
	target *ebiten.Image
	m      lambda.Affine
	color  lambda.Color

	outline []lambda.Vec2
	vs      []ebiten.Vertex
	is      []uint16
}

// NewGraphics returns a context drawing into target with the identity
// transform and white fill.
func NewGraphics(target *ebiten.Image) *Graphics {
	g := &Graphics{}
	g.Reset(target)
	return g
}

// Reset retargets the context and restores the identity transform and
// white fill. Call it at the start of each frame.
func (g *Graphics) Reset(target *ebiten.Image) {
	g.target = target
	g.m = lambda.Identity()
	g.color = lambda.ColorWhite
}

func (g *Graphics) Transform() lambda.Affine     { return g.m }
func (g *Graphics) SetTransform(m lambda.Affine) { g.m = m }
func (g *Graphics) Translate(x, y float64)       { g.m = g.m.Translate(x, y) }
func (g *Graphics) Rotate(theta float64)         { g.m = g.m.Rotate(theta) }
func (g *Graphics) Scale(sx, sy float64)         { g.m = g.m.Scale(sx, sy) }
func (g *Graphics) SetColor(c lambda.Color)      { g.color = c }
func (g *Graphics) Color() lambda.Color          { return g.color }
func (g *Graphics) Target() *ebiten.Image        { return g.target }

// Fill fills s under the current transform with the current color.
func (g *Graphics) Fill(s lambda.Shape) {
	if g.target == nil || s == nil || g.color.A <= 0 {
		return
	}
	g.outline = transformOutline(g.outline[:0], g.m, s.Outline())
	if len(g.outline) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(g.outline[0].X), float32(g.outline[0].Y))
	for _, p := range g.outline[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	g.vs, g.is = path.AppendVerticesAndIndicesForFilling(g.vs[:0], g.is[:0])
	r, gr, b, a := vertexColor(g.color)
	for i := range g.vs {
		g.vs[i].SrcX = 0
		g.vs[i].SrcY = 0
		g.vs[i].ColorR = r
		g.vs[i].ColorG = gr
		g.vs[i].ColorB = b
		g.vs[i].ColorA = a
	}
	g.target.DrawTriangles(g.vs, g.is, solidImage(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

// transformOutline appends pts mapped through m to dst.
func transformOutline(dst []lambda.Vec2, m lambda.Affine, pts []lambda.Vec2) []lambda.Vec2 {
	for _, p := range pts {
		dst = append(dst, m.ApplyVec(p))
	}
	return dst
}

// vertexColor converts c to straight-alpha float32 channels clamped to [0, 1].
func vertexColor(c lambda.Color) (r, g, b, a float32) {
	return float32(lambda.Clamp(c.R, 0, 1)),
		float32(lambda.Clamp(c.G, 0, 1)),
		float32(lambda.Clamp(c.B, 0, 1)),
		float32(lambda.Clamp(c.A, 0, 1))
}
