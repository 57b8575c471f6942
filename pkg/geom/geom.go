// Package geom provides the integer geometry shared by the diagram layouts.
//
// All coordinates are SVG user units with the origin at the top-left corner and
// y growing downward. Text is never measured: every glyph is assumed to have the
// same width, so box sizes follow directly from label lengths.
package geom

import "fmt"

// Point is a position in the drawing.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Rect is an axis-aligned rectangle given by its top-left corner and size.
// The zero value is an empty rectangle at the origin.
type Rect struct {
	X, Y, W, H int
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r, edges included.
func (r Rect) ContainsRect(o Rect) bool {
	return r.Contains(Point{o.X, o.Y}) && r.Contains(Point{o.Right(), o.Bottom()})
}

// Bounds accumulates the extent of a set of points and rectangles.
type Bounds struct {
	minX, minY, maxX, maxY int
	set                    bool
}

// AddPoint extends the bounds to include p.
func (b *Bounds) AddPoint(p Point) {
	if !b.set {
		b.minX, b.maxX, b.minY, b.maxY = p.X, p.X, p.Y, p.Y
		b.set = true
		return
	}
	b.minX, b.maxX = min(b.minX, p.X), max(b.maxX, p.X)
	b.minY, b.maxY = min(b.minY, p.Y), max(b.maxY, p.Y)
}

// AddRect extends the bounds to include both corners of r.
func (b *Bounds) AddRect(r Rect) {
	b.AddPoint(Point{r.X, r.Y})
	b.AddPoint(Point{r.Right(), r.Bottom()})
}

// Rect returns the accumulated extent, or the zero Rect if nothing was added.
func (b Bounds) Rect() Rect {
	if !b.set {
		return Rect{}
	}
	return Rect{X: b.minX, Y: b.minY, W: b.maxX - b.minX, H: b.maxY - b.minY}
}

// BoxWidth returns the width of a box holding chars glyphs plus padding on
// both sides.
func BoxWidth(chars, glyph, padding int) int {
	return chars*glyph + 2*padding
}

// Translate formats an SVG translate transform.
func Translate(dx, dy int) string {
	return fmt.Sprintf("translate(%d, %d)", dx, dy)
}
