package sequence

import "github.com/matzehuels/stackuml/pkg/geom"

// Text metrics. Every glyph is FontSize wide; a participant box pads its
// name by Padding on each side and a lane adds Margin around the box.
const (
	FontSize = 8
	Padding  = 3
	Margin   = 5
)

// Vertical grid. BaseMargin surrounds the drawing; messages sit SlotHeight
// apart and the lifelines span at least MinExtent.
const (
	BaseMargin    = 20
	BoxHeight     = 20
	MinExtent     = 100
	SlotHeight    = 30
	labelDistance = 4
)

// Lane is the horizontal placement of one participant.
type Lane struct {
	// X is the left edge of the participant boxes.
	X int
	// Center is the x coordinate of the lifeline.
	Center int
}

// Layout is the computed geometry of a sequence diagram.
type Layout struct {
	// LaneWidth is shared by every lane and derived from the longest name.
	LaneWidth int
	// BoxWidth is the width of the header and footer boxes.
	BoxWidth int
	Lanes    []Lane
	// VerticalExtent is the distance between the tops of the header and
	// footer boxes.
	VerticalExtent int
	// Slots holds the y coordinate of each accepted message.
	Slots []int
	BBox  geom.Rect
}

// ComputeLayout derives lanes, message slots and the bounding box. It
// always succeeds; an empty diagram yields only the margins.
func (d *Diagram) ComputeLayout() *Layout {
	boxWidth := geom.BoxWidth(d.maxLen, FontSize, Padding)
	laneWidth := boxWidth + 2*Margin

	l := &Layout{
		LaneWidth:      laneWidth,
		BoxWidth:       boxWidth,
		Lanes:          make([]Lane, len(d.participants)),
		VerticalExtent: max(MinExtent, (len(d.messages)+1)*SlotHeight),
		Slots:          make([]int, len(d.messages)),
	}
	for i := range d.participants {
		x := BaseMargin + i*laneWidth
		l.Lanes[i] = Lane{X: x, Center: x + boxWidth/2}
	}
	for i := range d.messages {
		l.Slots[i] = BaseMargin + SlotHeight*(i+1)
	}
	l.BBox = geom.Rect{
		W: 2*BaseMargin + laneWidth*len(d.participants),
		H: 2*BaseMargin + 2*BoxHeight + l.VerticalExtent,
	}
	return l
}

// Header returns the top box of lane i.
func (l *Layout) Header(i int) geom.Rect {
	return geom.Rect{X: l.Lanes[i].X, Y: BaseMargin, W: l.BoxWidth, H: BoxHeight}
}

// Footer returns the bottom box of lane i.
func (l *Layout) Footer(i int) geom.Rect {
	return l.Header(i).Translate(0, l.VerticalExtent)
}

// Lifeline returns the vertical line joining the header and footer of lane i.
func (l *Layout) Lifeline(i int) (geom.Point, geom.Point) {
	c := l.Lanes[i].Center
	return geom.Point{X: c, Y: BaseMargin + BoxHeight}, geom.Point{X: c, Y: BaseMargin + l.VerticalExtent}
}

// Connector returns the horizontal line of message i between the lane
// centres of its endpoints.
func (l *Layout) Connector(i int, m Message) (geom.Point, geom.Point) {
	y := l.Slots[i]
	return geom.Point{X: l.Lanes[m.From].Center, Y: y}, geom.Point{X: l.Lanes[m.To].Center, Y: y}
}
