package scene

import "strconv"

// ValueKind tells which field of a [Value] is set.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindFloat
)

// Value is a typed attribute value.
type Value struct {
	kind ValueKind
	s    string
	i    int
	f    float64
}

// Str returns a string value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an integer value.
func Int(n int) Value { return Value{kind: KindInt, i: n} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Kind returns the value's kind.
func (v Value) Kind() ValueKind { return v.kind }

// String formats the value as it appears in markup.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.s
	}
}

// Attr is a single presentation attribute.
type Attr struct {
	Key   string
	Value Value
}

// Style is an ordered list of presentation attributes. Order is preserved
// when emitted so output stays byte-for-byte stable.
type Style []Attr

// With returns a copy of s with key set to v. An existing key keeps its
// position.
func (s Style) With(key string, v Value) Style {
	out := make(Style, len(s), len(s)+1)
	copy(out, s)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = v
			return out
		}
	}
	return append(out, Attr{Key: key, Value: v})
}

// Styled is any primitive that accepts presentation attributes.
type Styled interface {
	SetAttr(key string, v Value)
}

// Apply sets every attribute of st on target, in order.
func Apply(target Styled, st Style) {
	for _, a := range st {
		target.SetAttr(a.Key, a.Value)
	}
}

// FillStroke is the usual style for a framed shape.
func FillStroke(fill, stroke string, width int) Style {
	return Style{
		{"fill", Str(fill)},
		{"stroke", Str(stroke)},
		{"stroke-width", Int(width)},
	}
}

// Stroke is the usual style for a line.
func Stroke(color string, width int) Style {
	return Style{
		{"stroke", Str(color)},
		{"stroke-width", Int(width)},
	}
}

// TextStyle sets font size, anchor and fill for a label. An empty anchor
// leaves the SVG default (start).
func TextStyle(size int, anchor, fill string) Style {
	st := Style{{"font-size", Int(size)}}
	if anchor != "" {
		st = st.With("text-anchor", Str(anchor))
	}
	if fill != "" {
		st = st.With("fill", Str(fill))
	}
	return st
}

// attrs is embedded by every primitive to implement [Styled].
type attrs struct {
	style Style
}

// SetAttr sets key to v, replacing a previous value in place.
func (a *attrs) SetAttr(key string, v Value) { a.style = a.style.With(key, v) }

// Attrs returns the primitive's attributes in insertion order.
func (a *attrs) Attrs() Style { return a.style }
