package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackuml/pkg/uml/class"
	"github.com/matzehuels/stackuml/pkg/uml/sequence"
)

// WriteJSON encodes a description as indented JSON.
func WriteJSON(d *Description, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes a description as TOML.
func WriteTOML(d *Description, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes a description to path, choosing the encoding by extension.
func Export(d *Description, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()
	if f == FormatTOML {
		return WriteTOML(d, file)
	}
	return WriteJSON(d, file)
}

type bbox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type classLayout struct {
	Kind      Kind             `json:"kind"`
	Name      string           `json:"name,omitempty"`
	BBox      bbox             `json:"bbox"`
	Entities  []entityLayout   `json:"entities"`
	Relations []relationLayout `json:"relations"`
}

type entityLayout struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Rank      int    `json:"rank"`
	Column    int    `json:"column"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Height    int    `json:"height"`
	Overflows bool   `json:"overflows,omitempty"`
}

type relationLayout struct {
	From int `json:"from"`
	To   int `json:"to"`
	X1   int `json:"x1"`
	Y1   int `json:"y1"`
	X2   int `json:"x2"`
	Y2   int `json:"y2"`
}

// WriteClassLayout encodes the computed positions of a class diagram as
// JSON. Relations are listed in topological order.
func WriteClassLayout(d *class.Diagram, l *class.Layout, w io.Writer) error {
	out := classLayout{
		Kind:      KindClass,
		Name:      d.Name(),
		BBox:      bbox{l.BBox.X, l.BBox.Y, l.BBox.W, l.BBox.H},
		Entities:  make([]entityLayout, 0, d.Len()),
		Relations: make([]relationLayout, 0, len(l.Relations)),
	}
	for i, e := range d.Entities() {
		id := i + 1
		c := l.Cells[id]
		out.Entities = append(out.Entities, entityLayout{
			ID:        id,
			Name:      e.Name,
			Rank:      int(l.Ranks[id]),
			Column:    int(l.Columns[id]),
			X:         c.X,
			Y:         c.Y,
			Height:    l.Heights[id],
			Overflows: e.Overflows(),
		})
	}
	for _, r := range l.Relations {
		from, to := l.EdgeGeometry(r.From, r.To)
		out.Relations = append(out.Relations, relationLayout{
			From: r.From, To: r.To,
			X1: from.X, Y1: from.Y, X2: to.X, Y2: to.Y,
		})
	}
	return encodeIndented(w, out)
}

type sequenceLayout struct {
	Kind           Kind                `json:"kind"`
	Name           string              `json:"name,omitempty"`
	BBox           bbox                `json:"bbox"`
	LaneWidth      int                 `json:"lane_width"`
	VerticalExtent int                 `json:"vertical_extent"`
	Participants   []participantLayout `json:"participants"`
	Messages       []messageLayout     `json:"messages"`
	Dropped        []droppedMessage    `json:"dropped,omitempty"`
}

type participantLayout struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Center int    `json:"center"`
}

type messageLayout struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Label  string `json:"label,omitempty"`
	Marker string `json:"marker"`
	Y      int    `json:"y"`
	X1     int    `json:"x1"`
	X2     int    `json:"x2"`
}

type droppedMessage struct {
	Index  int    `json:"index"`
	From   string `json:"from"`
	To     string `json:"to"`
	Label  string `json:"label,omitempty"`
	Reason string `json:"reason"`
}

// WriteSequenceLayout encodes the computed positions of a sequence diagram
// as JSON, including any dropped messages.
func WriteSequenceLayout(d *sequence.Diagram, l *sequence.Layout, w io.Writer) error {
	ps := d.Participants()
	out := sequenceLayout{
		Kind:           KindSequence,
		Name:           d.Name(),
		BBox:           bbox{l.BBox.X, l.BBox.Y, l.BBox.W, l.BBox.H},
		LaneWidth:      l.LaneWidth,
		VerticalExtent: l.VerticalExtent,
		Participants:   make([]participantLayout, len(ps)),
		Messages:       make([]messageLayout, 0, len(d.Messages())),
	}
	for i, p := range ps {
		out.Participants[i] = participantLayout{Name: p.Name, X: l.Lanes[i].X, Center: l.Lanes[i].Center}
	}
	for i, m := range d.Messages() {
		from, to := l.Connector(i, m)
		out.Messages = append(out.Messages, messageLayout{
			From:   ps[m.From].Name,
			To:     ps[m.To].Name,
			Label:  m.Label,
			Marker: m.Marker.String(),
			Y:      from.Y,
			X1:     from.X,
			X2:     to.X,
		})
	}
	for _, diag := range d.Dropped() {
		out.Dropped = append(out.Dropped, droppedMessage{
			Index: diag.Index, From: diag.From, To: diag.To, Label: diag.Label,
			Reason: diag.Err.Error(),
		})
	}
	return encodeIndented(w, out)
}

func encodeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
