package class

import (
	"github.com/matzehuels/stackuml/pkg/geom"
	"github.com/matzehuels/stackuml/pkg/scene"
	"github.com/matzehuels/stackuml/pkg/theme"
)

const (
	titleFontSize = FontSize * 3 / 2
	edgeWidth     = 2
	cornerRadius  = 5
)

type renderConfig struct {
	marker     scene.Marker
	background string
}

// RenderOption configures [Render].
type RenderOption func(*renderConfig)

// WithRelationMarker draws m at the target end of every relation.
func WithRelationMarker(m scene.Marker) RenderOption {
	return func(c *renderConfig) { c.marker = m }
}

// WithBackground fills the viewport with color.
func WithBackground(color string) RenderOption {
	return func(c *renderConfig) { c.background = color }
}

// Render draws a computed layout. Relations are drawn first so cards cover
// the connector ends.
func Render(d *Diagram, l *Layout, th theme.Theme, opts ...RenderOption) *scene.Document {
	cfg := renderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := scene.NewDocument(l.BBox)
	doc.Title = d.name
	doc.Background = cfg.background

	root := scene.NewGroup(OffsetX, OffsetY)
	for _, e := range d.relations {
		from, to := l.EdgeGeometry(e.From, e.To)
		line := scene.NewLine(from, to)
		scene.Apply(line, scene.Stroke(th.Line.Primary, edgeWidth))
		if cfg.marker != scene.MarkerNone {
			line.MarkerEnd = cfg.marker
			doc.Markers.Add(cfg.marker)
		}
		root.Add(line)
	}
	for id, ent := range d.entities {
		root.Add(drawCard(ent, l.Card(id+1), th))
	}
	doc.Root.Add(root)
	return doc
}

// Document computes the layout and renders it.
func (d *Diagram) Document(th theme.Theme, opts ...RenderOption) (*scene.Document, error) {
	l, err := d.ComputeLayout()
	if err != nil {
		return nil, err
	}
	return Render(d, l, th, opts...), nil
}

func drawCard(e Entity, card geom.Rect, th theme.Theme) *scene.Group {
	g := scene.NewGroup(card.X, card.Y)

	frame := scene.NewRect(0, 0, card.W, card.H).Rounded(cornerRadius, cornerRadius)
	scene.Apply(frame, scene.FillStroke(th.Rect.Fill, th.Rect.Frame, 1))
	g.Add(frame)

	attrTop := TitleHeight
	opTop := TitleHeight + len(e.Attributes)*LineHeight + 2*Margin
	g.Add(divider(attrTop, th), divider(opTop, th))

	title := scene.NewText(CardWidth/2, 3*FontSize/2, e.Name)
	scene.Apply(title, scene.TextStyle(titleFontSize, "middle", th.Rect.Text))
	g.Add(title)

	g.Add(drawMembers(e.Attributes, attrTop, th), drawMembers(e.Operations, opTop, th))
	return g
}

func divider(y int, th theme.Theme) *scene.Line {
	l := scene.NewLine(geom.Point{Y: y}, geom.Point{X: CardWidth, Y: y})
	scene.Apply(l, scene.Stroke(th.Rect.Frame, 1))
	return l
}

// drawMembers lays out one region; the glyph sits at the line indent and
// the name one glyph to its right.
func drawMembers(members []Member, top int, th theme.Theme) *scene.Group {
	g := scene.NewGroup(0, top)
	for i, m := range members {
		y := Margin + FontSize + i*LineHeight

		mark := scene.NewText(2*Margin, y, m.Visibility.Glyph())
		scene.Apply(mark, scene.TextStyle(FontSize, "middle", th.Rect.Text))

		name := scene.NewText(2*Margin+FontSize, y, m.Name)
		scene.Apply(name, scene.TextStyle(FontSize, "", th.Rect.Text))

		g.Add(mark, name)
	}
	return g
}
