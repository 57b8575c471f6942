package scene

import (
	"testing"

	"github.com/matzehuels/stackuml/pkg/geom"
)

func lookup(st Style, key string) (Value, bool) {
	for _, a := range st {
		if a.Key == key {
			return a.Value, true
		}
	}
	return Value{}, false
}

func TestApply(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	Apply(r, FillStroke("#fff", "#000", 1))
	Apply(r, Style{{"fill", Str("#eee")}})

	got := r.Attrs()
	if len(got) != 3 {
		t.Fatalf("len(Attrs()) = %d, want 3", len(got))
	}
	if got[0].Key != "fill" || got[0].Value.String() != "#eee" {
		t.Errorf("fill = %v, want #eee in first position", got[0])
	}
	if v, ok := lookup(got, "stroke-width"); !ok || v.Kind() != KindInt || v.String() != "1" {
		t.Errorf("stroke-width = %v, %v", v, ok)
	}
}

func TestApplyAnyPrimitive(t *testing.T) {
	nodes := []Node{
		NewRect(0, 0, 1, 1),
		NewLine(geom.Point{}, geom.Point{X: 1}),
		NewText(0, 0, "x"),
		NewGroup(0, 0),
	}
	for _, n := range nodes {
		Apply(n, Stroke("#123", 2))
		if v, ok := lookup(n.Attrs(), "stroke"); !ok || v.String() != "#123" {
			t.Errorf("%T: stroke = %v, %v", n, v, ok)
		}
	}
}

func TestStyleWith(t *testing.T) {
	base := TextStyle(8, "middle", "")
	next := base.With("font-size", Int(12)).With("fill", Str("#000"))

	if v, _ := lookup(base, "font-size"); v.String() != "8" {
		t.Errorf("With() modified the receiver: font-size = %v", v)
	}
	if v, _ := lookup(next, "font-size"); v.String() != "12" {
		t.Errorf("font-size = %v, want 12", v)
	}
	if len(next) != 3 {
		t.Errorf("len = %d, want 3", len(next))
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Str("middle"), "middle"},
		{Int(-3), "-3"},
		{Float(1.5), "1.5"},
		{Float(2), "2"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestWalkOffsets(t *testing.T) {
	inner := NewGroup(5, 5).Add(NewRect(1, 1, 2, 2))
	root := NewGroup(10, 10).Add(inner, NewText(0, 0, "t"))

	origins := map[Node]geom.Point{}
	Walk(root, func(n Node, origin geom.Point) { origins[n] = origin })

	if len(origins) != 4 {
		t.Fatalf("Walk visited %d nodes, want 4", len(origins))
	}
	if got := origins[inner.Children[0]]; got != (geom.Point{X: 15, Y: 15}) {
		t.Errorf("rect origin = %+v, want (15,15)", got)
	}
	if got := origins[root.Children[1]]; got != (geom.Point{X: 10, Y: 10}) {
		t.Errorf("text origin = %+v, want (10,10)", got)
	}
}

func TestDocumentExtents(t *testing.T) {
	doc := NewDocument(geom.Rect{W: 100, H: 100})
	doc.Root.Add(NewGroup(10, 10).Add(
		NewRect(0, 0, 20, 30),
		NewLine(geom.Point{X: 5, Y: 5}, geom.Point{X: 50, Y: 60}),
	))

	want := geom.Rect{X: 10, Y: 10, W: 50, H: 60}
	if got := doc.Extents(); got != want {
		t.Errorf("Extents() = %+v, want %+v", got, want)
	}
	if doc.Count() != 2 {
		t.Errorf("Count() = %d, want 2", doc.Count())
	}
	if got := doc.Root.Bounds(); got != want {
		t.Errorf("Root.Bounds() = %+v, want %+v", got, want)
	}
}
