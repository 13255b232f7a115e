package ebitenhost

import (
	"math"
	"testing"

	"github.com/granseal/lambda"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

var _ lambda.Graphics = (*Graphics)(nil)
var _ lambda.InputSource = Input{}

func TestGraphicsTransformState(t *testing.T) {
	t.Run("should start at identity with white fill", func(t *testing.T) {
		g := NewGraphics(nil)
		assert.Equal(t, lambda.Identity(), g.Transform())
		assert.Equal(t, lambda.ColorWhite, g.Color())
	})
	t.Run("should compose translate rotate and scale like Affine", func(t *testing.T) {
		g := NewGraphics(nil)
		g.Translate(10, 5)
		g.Rotate(math.Pi / 2)
		g.Scale(2, 2)
		want := lambda.Identity().Translate(10, 5).Rotate(math.Pi / 2).Scale(2, 2)
		assert.Equal(t, want, g.Transform())

		p := g.Transform().ApplyVec(lambda.Pt(1, 0))
		assert.InDelta(t, 10, p.X, 1e-9)
		assert.InDelta(t, 7, p.Y, 1e-9)
	})
	t.Run("should restore a saved transform", func(t *testing.T) {
		g := NewGraphics(nil)
		saved := g.Transform()
		g.Translate(3, 4)
		g.SetTransform(saved)
		assert.Equal(t, lambda.Identity(), g.Transform())
	})
	t.Run("should reset between frames", func(t *testing.T) {
		g := NewGraphics(nil)
		g.Translate(3, 4)
		g.SetColor(lambda.ColorBlack)
		g.Reset(nil)
		assert.Equal(t, lambda.Identity(), g.Transform())
		assert.Equal(t, lambda.ColorWhite, g.Color())
	})
	t.Run("should ignore fills without a target", func(t *testing.T) {
		g := NewGraphics(nil)
		assert.NotPanics(t, func() { g.Fill(lambda.RectShape{Width: 4, Height: 4}) })
	})
}

func TestTransformOutline(t *testing.T) {
	m := lambda.Identity().Translate(100, 50).Scale(2, 2)
	got := transformOutline(nil, m, lambda.RectShape{X: -1, Y: -1, Width: 2, Height: 2}.Outline())
	want := []lambda.Vec2{{X: 98, Y: 48}, {X: 102, Y: 48}, {X: 102, Y: 52}, {X: 98, Y: 52}}
	assert.Equal(t, want, got)
}

func TestVertexColor(t *testing.T) {
	r, g, b, a := vertexColor(lambda.Color{R: 2, G: 0.5, B: -1, A: 0.25})
	assert.Equal(t, float32(1), r)
	assert.Equal(t, float32(0.5), g)
	assert.Equal(t, float32(0), b)
	assert.Equal(t, float32(0.25), a)
}

func TestIsClick(t *testing.T) {
	cases := []struct {
		name     string
		from, to lambda.Vec2
		want     bool
	}{
		{"same spot", lambda.Pt(10, 10), lambda.Pt(10, 10), true},
		{"inside dead zone", lambda.Pt(10, 10), lambda.Pt(13, 10), true},
		{"on dead zone edge", lambda.Pt(0, 0), lambda.Pt(4, 0), true},
		{"dragged away", lambda.Pt(10, 10), lambda.Pt(20, 10), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isClick(tc.from, tc.to))
		})
	}
}

func TestMouseButton(t *testing.T) {
	assert.Equal(t, ebiten.MouseButtonLeft, mouseButton(lambda.MouseButtonLeft))
	assert.Equal(t, ebiten.MouseButtonRight, mouseButton(lambda.MouseButtonRight))
	assert.Equal(t, ebiten.MouseButtonMiddle, mouseButton(lambda.MouseButtonMiddle))
}

func TestLayout(t *testing.T) {
	cfg := lambda.DefaultConfig()
	cfg.Width, cfg.Height = 320, 200
	g := NewGame(lambda.NewApp(), cfg)
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 320, w)
	assert.Equal(t, 200, h)
}
