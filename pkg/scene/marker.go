package scene

import (
	"fmt"
	"strings"

	"github.com/matzehuels/stackuml/pkg/errors"
	"github.com/matzehuels/stackuml/pkg/geom"
)

// Marker selects an arrowhead glyph for a line end.
type Marker int

const (
	// MarkerNone draws a plain line end.
	MarkerNone Marker = iota
	// MarkerArrow draws a filled triangular arrowhead.
	MarkerArrow
)

// ParseMarker resolves a marker name. An empty string means [MarkerNone].
func ParseMarker(s string) (Marker, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return MarkerNone, nil
	case "arrow":
		return MarkerArrow, nil
	default:
		return MarkerNone, errors.New(errors.ErrCodeInvalidInput, "unknown marker %q (must be 'arrow' or 'none')", s)
	}
}

// String returns the marker name accepted by [ParseMarker].
func (m Marker) String() string {
	if m == MarkerArrow {
		return "arrow"
	}
	return "none"
}

// ID is the stable definition id, e.g. "marker-1".
func (m Marker) ID() string { return fmt.Sprintf("marker-%d", int(m)) }

// Ref returns the url(#id) reference used by line ends, or "" for
// [MarkerNone].
func (m Marker) Ref() string {
	if m == MarkerNone {
		return ""
	}
	return "url(#" + m.ID() + ")"
}

// MarkerDef is the reusable definition emitted once per document.
type MarkerDef struct {
	ID            string
	ViewBox       geom.Rect
	Width, Height int
	RefX, RefY    int
	Orient        string
	Path          string
}

// Def returns the definition for m. MarkerNone has none.
func (m Marker) Def() (MarkerDef, bool) {
	switch m {
	case MarkerArrow:
		return MarkerDef{
			ID:      m.ID(),
			ViewBox: geom.Rect{W: 10, H: 10},
			Width:   5,
			Height:  5,
			RefX:    10,
			RefY:    5,
			Orient:  "auto-start-reverse",
			Path:    "M 0 0 L 10 5 L 0 10 z",
		}, true
	default:
		return MarkerDef{}, false
	}
}

// MarkerSet collects the distinct markers used by a document in first-use
// order. The zero value is ready to use.
type MarkerSet struct {
	order []Marker
	seen  map[Marker]struct{}
}

// NewMarkerSet returns an empty set.
func NewMarkerSet() *MarkerSet { return &MarkerSet{} }

// Add registers m. MarkerNone and repeats are ignored.
func (s *MarkerSet) Add(m Marker) {
	if m == MarkerNone {
		return
	}
	if s.seen == nil {
		s.seen = make(map[Marker]struct{})
	}
	if _, ok := s.seen[m]; ok {
		return
	}
	s.seen[m] = struct{}{}
	s.order = append(s.order, m)
}

// Contains reports whether m was added.
func (s *MarkerSet) Contains(m Marker) bool {
	if s == nil {
		return false
	}
	_, ok := s.seen[m]
	return ok
}

// Len returns the number of distinct markers.
func (s *MarkerSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Markers returns the registered markers in first-use order.
func (s *MarkerSet) Markers() []Marker {
	if s == nil {
		return nil
	}
	return append([]Marker(nil), s.order...)
}

// Defs returns one definition per registered marker.
func (s *MarkerSet) Defs() []MarkerDef {
	var defs []MarkerDef
	for _, m := range s.Markers() {
		if d, ok := m.Def(); ok {
			defs = append(defs, d)
		}
	}
	return defs
}
