package sequence

import (
	"github.com/matzehuels/stackuml/pkg/geom"
	"github.com/matzehuels/stackuml/pkg/scene"
	"github.com/matzehuels/stackuml/pkg/theme"
)

// Render draws a computed layout: a header and footer box per participant
// joined by its lifeline, then one labelled connector per message.
func Render(d *Diagram, l *Layout, th theme.Theme) *scene.Document {
	doc := scene.NewDocument(l.BBox)
	doc.Title = d.name
	for _, m := range d.markers.Markers() {
		doc.Markers.Add(m)
	}

	for i, p := range d.participants {
		from, to := l.Lifeline(i)
		lifeline := scene.NewLine(from, to)
		scene.Apply(lifeline, scene.Stroke(th.Line.Primary, 1))
		doc.Root.Add(lifeline, participantBox(l.Header(i), p.Name, th), participantBox(l.Footer(i), p.Name, th))
	}

	for i, m := range d.messages {
		from, to := l.Connector(i, m)
		conn := scene.NewLine(from, to)
		conn.MarkerEnd = m.Marker
		scene.Apply(conn, scene.Stroke(th.Line.Second, 1))

		label := scene.NewText((from.X+to.X)/2, from.Y-labelDistance, m.Label)
		scene.Apply(label, scene.TextStyle(FontSize, "middle", th.Text.Primary))
		doc.Root.Add(conn, label)
	}
	return doc
}

// Document computes the layout and renders it.
func (d *Diagram) Document(th theme.Theme) *scene.Document {
	return Render(d, d.ComputeLayout(), th)
}

func participantBox(r geom.Rect, name string, th theme.Theme) *scene.Group {
	g := scene.NewGroup(r.X, r.Y)
	box := scene.NewRect(0, 0, r.W, r.H)
	scene.Apply(box, scene.FillStroke(th.Rect.Fill, th.Rect.Frame, 1))

	text := scene.NewText(r.W/2, (r.H+FontSize)/2, name)
	scene.Apply(text, scene.TextStyle(FontSize, "middle", th.Rect.Text))
	return g.Add(box, text)
}
