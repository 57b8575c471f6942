// Package svg serializes a scene.Document as SVG markup.
//
// Output is produced with github.com/ajstarks/svgo. The viewBox is the
// document's bounding box; marker definitions are written once inside
// <defs>, followed by an optional background rectangle and the primitive
// tree in drawing order. Text content and attribute values are escaped.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"

	svgo "github.com/ajstarks/svgo"

	"github.com/matzehuels/stackuml/pkg/geom"
	"github.com/matzehuels/stackuml/pkg/scene"
)

// Option configures [Render].
type Option func(*renderer)

type renderer struct {
	scale      int
	background string
	title      bool
}

// WithScale multiplies the width and height attributes; the viewBox is
// unchanged.
func WithScale(n int) Option {
	return func(r *renderer) {
		if n > 0 {
			r.scale = n
		}
	}
}

// WithBackground overrides the document background.
func WithBackground(color string) Option {
	return func(r *renderer) { r.background = color }
}

// WithoutTitle omits the <title> element.
func WithoutTitle() Option { return func(r *renderer) { r.title = false } }

// Render returns doc as an SVG document.
func Render(doc *scene.Document, opts ...Option) []byte {
	r := renderer{scale: 1, background: doc.Background, title: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	canvas := svgo.New(&buf)
	b := doc.BBox
	canvas.Startview(b.W*r.scale, b.H*r.scale, b.X, b.Y, b.W, b.H)
	if r.title && doc.Title != "" {
		canvas.Title(doc.Title)
	}

	if defs := doc.Markers.Defs(); len(defs) > 0 {
		canvas.Def()
		for _, d := range defs {
			writeMarker(canvas, d)
		}
		canvas.DefEnd()
	}
	if r.background != "" {
		canvas.Rect(b.X, b.Y, b.W, b.H, attr("fill", r.background))
	}
	if doc.Root != nil {
		writeNode(canvas, doc.Root)
	}
	canvas.End()
	return buf.Bytes()
}

func writeMarker(canvas *svgo.SVG, d scene.MarkerDef) {
	vb := d.ViewBox
	canvas.Marker(d.ID, d.RefX, d.RefY, d.Width, d.Height,
		attr("viewBox", fmt.Sprintf("%d %d %d %d", vb.X, vb.Y, vb.W, vb.H)),
		attr("orient", d.Orient),
	)
	canvas.Path(d.Path)
	canvas.MarkerEnd()
}

func writeNode(canvas *svgo.SVG, n scene.Node) {
	style := attrList(n.Attrs())
	switch v := n.(type) {
	case *scene.Group:
		if v.Offset != (geom.Point{}) {
			style = append([]string{attr("transform", geom.Translate(v.Offset.X, v.Offset.Y))}, style...)
		}
		canvas.Group(style...)
		for _, c := range v.Children {
			writeNode(canvas, c)
		}
		canvas.Gend()
	case *scene.Rect:
		if v.RX > 0 || v.RY > 0 {
			canvas.Roundrect(v.X, v.Y, v.W, v.H, v.RX, v.RY, style...)
			return
		}
		canvas.Rect(v.X, v.Y, v.W, v.H, style...)
	case *scene.Line:
		if ref := v.MarkerStart.Ref(); ref != "" {
			style = append(style, attr("marker-start", ref))
		}
		if ref := v.MarkerEnd.Ref(); ref != "" {
			style = append(style, attr("marker-end", ref))
		}
		canvas.Line(v.From.X, v.From.Y, v.To.X, v.To.Y, style...)
	case *scene.Text:
		canvas.Text(v.At.X, v.At.Y, v.Content, style...)
	}
}

// attrList formats a style as raw attributes; svgo passes any argument
// containing "=" through unchanged.
func attrList(st scene.Style) []string {
	out := make([]string, 0, len(st))
	for _, a := range st {
		out = append(out, attr(a.Key, a.Value.String()))
	}
	return out
}

func attr(key, value string) string {
	return fmt.Sprintf(`%s="%s"`, key, escape(value))
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
