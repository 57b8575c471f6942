package class

import (
	"testing"

	"github.com/matzehuels/stackuml/pkg/geom"
	"github.com/matzehuels/stackuml/pkg/scene"
	"github.com/matzehuels/stackuml/pkg/theme"
)

func TestRenderPrimitives(t *testing.T) {
	d := sample()
	doc, err := d.Document(theme.New(theme.Colorful), WithRelationMarker(scene.MarkerArrow), WithBackground("#fafafa"))
	if err != nil {
		t.Fatal(err)
	}

	var rects, lines, texts int
	scene.Walk(doc.Root, func(n scene.Node, _ geom.Point) {
		switch n.(type) {
		case *scene.Rect:
			rects++
		case *scene.Line:
			lines++
		case *scene.Text:
			texts++
		}
	})
	// 7 cards, 7 relations plus 2 dividers per card, title plus 3 members
	// with glyph and name per card.
	if rects != 7 {
		t.Errorf("rects = %d, want 7", rects)
	}
	if lines != 7+14 {
		t.Errorf("lines = %d, want 21", lines)
	}
	if texts != 7*(1+3*2) {
		t.Errorf("texts = %d, want %d", texts, 7*7)
	}
	if doc.Markers.Len() != 1 {
		t.Errorf("Markers.Len() = %d, want 1", doc.Markers.Len())
	}
	if doc.Background != "#fafafa" || doc.Title != "sample" {
		t.Errorf("Background/Title = %q/%q", doc.Background, doc.Title)
	}
}

func TestRenderRelationStyle(t *testing.T) {
	d := sample()
	l, err := d.ComputeLayout()
	if err != nil {
		t.Fatal(err)
	}
	th := theme.New(theme.Colorful)
	doc := Render(d, l, th)

	if doc.Markers.Len() != 0 {
		t.Errorf("Markers.Len() = %d, want 0 without WithRelationMarker", doc.Markers.Len())
	}
	root := doc.Root.Children[0].(*scene.Group)
	first, ok := root.Children[0].(*scene.Line)
	if !ok {
		t.Fatalf("first child = %T, want *scene.Line", root.Children[0])
	}
	if v := styleAttr(first.Attrs(), "stroke"); v != th.Line.Primary {
		t.Errorf("stroke = %v, want %s", v, th.Line.Primary)
	}
	if first.MarkerEnd != scene.MarkerNone {
		t.Errorf("MarkerEnd = %v, want none", first.MarkerEnd)
	}
}

// styleAttr returns the markup value of key in st, or "" when unset.
func styleAttr(st scene.Style, key string) string {
	for _, a := range st {
		if a.Key == key {
			return a.Value.String()
		}
	}
	return ""
}
