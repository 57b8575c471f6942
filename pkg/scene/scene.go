package scene

import "github.com/matzehuels/stackuml/pkg/geom"

// Node is a primitive in the scene tree: *Rect, *Line, *Text or *Group.
type Node interface {
	Styled
	// Attrs returns the presentation attributes in insertion order.
	Attrs() Style
	// Bounds returns the node's extent in its parent's coordinates.
	Bounds() geom.Rect
	isNode()
}

// Rect is a rectangle with optional rounded corners.
type Rect struct {
	attrs
	geom.Rect
	RX, RY int
}

// NewRect returns a rectangle at (x, y) of the given size.
func NewRect(x, y, w, h int) *Rect {
	return &Rect{Rect: geom.Rect{X: x, Y: y, W: w, H: h}}
}

// Rounded sets the corner radii and returns r.
func (r *Rect) Rounded(rx, ry int) *Rect {
	r.RX, r.RY = rx, ry
	return r
}

func (r *Rect) Bounds() geom.Rect { return r.Rect }
func (*Rect) isNode()             {}

// Line is a straight connector with optional end markers.
type Line struct {
	attrs
	From, To    geom.Point
	MarkerStart Marker
	MarkerEnd   Marker
}

// NewLine returns a line between two points.
func NewLine(from, to geom.Point) *Line { return &Line{From: from, To: to} }

func (l *Line) Bounds() geom.Rect {
	var b geom.Bounds
	b.AddPoint(l.From)
	b.AddPoint(l.To)
	return b.Rect()
}
func (*Line) isNode() {}

// Text is a single-line label anchored at a point. Text is not measured, so
// its bounds are the anchor point.
type Text struct {
	attrs
	At      geom.Point
	Content string
}

// NewText returns a label at (x, y).
func NewText(x, y int, content string) *Text {
	return &Text{At: geom.Point{X: x, Y: y}, Content: content}
}

func (t *Text) Bounds() geom.Rect { return geom.Rect{X: t.At.X, Y: t.At.Y} }
func (*Text) isNode()             {}

// Group translates its children by Offset.
type Group struct {
	attrs
	Offset   geom.Point
	Children []Node
}

// NewGroup returns an empty group translated by (dx, dy).
func NewGroup(dx, dy int) *Group { return &Group{Offset: geom.Point{X: dx, Y: dy}} }

// Add appends children and returns g.
func (g *Group) Add(nodes ...Node) *Group {
	g.Children = append(g.Children, nodes...)
	return g
}

// Bounds returns the union of the children's bounds, translated by Offset.
func (g *Group) Bounds() geom.Rect {
	var b geom.Bounds
	for _, c := range g.Children {
		b.AddRect(c.Bounds().Translate(g.Offset.X, g.Offset.Y))
	}
	return b.Rect()
}
func (*Group) isNode() {}

// Walk calls fn for every node below root (root included) with the
// absolute offset of the node's coordinate system.
func Walk(root *Group, fn func(n Node, origin geom.Point)) {
	if root == nil {
		return
	}
	var visit func(n Node, origin geom.Point)
	visit = func(n Node, origin geom.Point) {
		fn(n, origin)
		if g, ok := n.(*Group); ok {
			inner := origin.Add(g.Offset.X, g.Offset.Y)
			for _, c := range g.Children {
				visit(c, inner)
			}
		}
	}
	visit(root, geom.Point{})
}

// Document is a complete drawing handed to a sink.
type Document struct {
	// BBox is the visible viewport (minX, minY, width, height).
	BBox geom.Rect
	// Background fills the viewport when non-empty.
	Background string
	// Title is emitted as the document title when non-empty.
	Title   string
	Markers *MarkerSet
	Root    *Group
}

// NewDocument returns an empty document with the given viewport.
func NewDocument(bbox geom.Rect) *Document {
	return &Document{BBox: bbox, Markers: NewMarkerSet(), Root: NewGroup(0, 0)}
}

// Extents returns the absolute extent of every leaf primitive.
func (d *Document) Extents() geom.Rect {
	var b geom.Bounds
	Walk(d.Root, func(n Node, origin geom.Point) {
		if _, ok := n.(*Group); ok {
			return
		}
		b.AddRect(n.Bounds().Translate(origin.X, origin.Y))
	})
	return b.Rect()
}

// Count returns the number of leaf primitives in the document.
func (d *Document) Count() int {
	n := 0
	Walk(d.Root, func(node Node, _ geom.Point) {
		if _, ok := node.(*Group); !ok {
			n++
		}
	})
	return n
}
