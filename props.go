package lambda

import "sort"

// ValueKind tags the payload held by a Value.
type ValueKind uint8

const (
	KindNone ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindVec2
	KindColor
)

// Value is a small tagged union stored in an entity's Props.
type Value struct {
	kind ValueKind
	num  float64
	i    int64
	str  string
	vec  Vec2
	col  Color
}

func BoolValue(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.i = 1
	}
	return v
}

func IntValue(i int64) Value     { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value { return Value{kind: KindFloat, num: f} }
func StringValue(s string) Value { return Value{kind: KindString, str: s} }
func Vec2Value(p Vec2) Value     { return Value{kind: KindVec2, vec: p} }
func ColorValue(c Color) Value   { return Value{kind: KindColor, col: c} }

func (v Value) Kind() ValueKind      { return v.kind }
func (v Value) Bool() (bool, bool)   { return v.i != 0, v.kind == KindBool }
func (v Value) Int() (int64, bool)   { return v.i, v.kind == KindInt }
func (v Value) Text() (string, bool) { return v.str, v.kind == KindString }
func (v Value) Vec2() (Vec2, bool)   { return v.vec, v.kind == KindVec2 }
func (v Value) Color() (Color, bool) { return v.col, v.kind == KindColor }

// Float returns the payload as a float64. Int values are converted.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.num, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// Props is a string-keyed bag of Values. The zero value is ready to use.
// Looking up a missing key is not an error; it reports ok=false.
type Props struct {
	m map[string]Value
}

// Set stores v under key, replacing any previous value.
func (p *Props) Set(key string, v Value) {
	if p.m == nil {
		p.m = make(map[string]Value)
	}
	p.m[key] = v
}

// Get returns the value under key.
func (p *Props) Get(key string) (Value, bool) {
	v, ok := p.m[key]
	return v, ok
}

// Delete removes key. Deleting a missing key is a no-op.
func (p *Props) Delete(key string) {
	delete(p.m, key)
}

// Len returns the number of stored keys.
func (p *Props) Len() int {
	return len(p.m)
}

// Keys returns the stored keys in sorted order.
func (p *Props) Keys() []string {
	keys := make([]string, 0, len(p.m))
	for k := range p.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *Props) Float(key string) (float64, bool) {
	v, ok := p.m[key]
	if !ok {
		return 0, false
	}
	return v.Float()
}

func (p *Props) Int(key string) (int64, bool) {
	v, ok := p.m[key]
	if !ok {
		return 0, false
	}
	return v.Int()
}

func (p *Props) Text(key string) (string, bool) {
	v, ok := p.m[key]
	if !ok {
		return "", false
	}
	return v.Text()
}

func (p *Props) Bool(key string) (bool, bool) {
	v, ok := p.m[key]
	if !ok {
		return false, false
	}
	return v.Bool()
}
