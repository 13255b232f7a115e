package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProps(t *testing.T) {
	t.Run("should be usable at zero value", func(t *testing.T) {
		var p Props
		_, ok := p.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, 0, p.Len())
		p.Delete("missing")
	})
	t.Run("should store and replace values", func(t *testing.T) {
		var p Props
		p.Set("hp", IntValue(10))
		p.Set("hp", IntValue(7))
		n, ok := p.Int("hp")
		assert.True(t, ok)
		assert.Equal(t, int64(7), n)
		assert.Equal(t, 1, p.Len())
	})
	t.Run("should list keys sorted", func(t *testing.T) {
		var p Props
		p.Set("b", BoolValue(true))
		p.Set("a", StringValue("x"))
		p.Set("c", FloatValue(1))
		assert.Equal(t, []string{"a", "b", "c"}, p.Keys())
		p.Delete("b")
		assert.Equal(t, []string{"a", "c"}, p.Keys())
	})
	t.Run("should check kinds on typed reads", func(t *testing.T) {
		var p Props
		p.Set("name", StringValue("box"))
		_, ok := p.Float("name")
		assert.False(t, ok)
		_, ok = p.Bool("name")
		assert.False(t, ok)
		s, ok := p.Text("name")
		assert.True(t, ok)
		assert.Equal(t, "box", s)
	})
}

func TestValue(t *testing.T) {
	t.Run("should widen ints to floats", func(t *testing.T) {
		f, ok := IntValue(3).Float()
		assert.True(t, ok)
		assert.Equal(t, 3.0, f)
	})
	t.Run("should not narrow floats to ints", func(t *testing.T) {
		_, ok := FloatValue(3).Int()
		assert.False(t, ok)
	})
	t.Run("should tag every kind", func(t *testing.T) {
		assert.Equal(t, KindNone, Value{}.Kind())
		assert.Equal(t, KindBool, BoolValue(false).Kind())
		assert.Equal(t, KindVec2, Vec2Value(Pt(1, 2)).Kind())
		assert.Equal(t, KindColor, ColorValue(ColorWhite).Kind())

		v, ok := Vec2Value(Pt(1, 2)).Vec2()
		assert.True(t, ok)
		assert.Equal(t, Pt(1, 2), v)
		c, ok := ColorValue(ColorWhite).Color()
		assert.True(t, ok)
		assert.Equal(t, ColorWhite, c)
		b, ok := BoolValue(true).Bool()
		assert.True(t, ok)
		assert.True(t, b)
	})
}
