package sequence

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackuml/pkg/errors"
	"github.com/matzehuels/stackuml/pkg/geom"
	"github.com/matzehuels/stackuml/pkg/scene"
	"github.com/matzehuels/stackuml/pkg/theme"
)

func sample(t *testing.T, opts ...Option) *Diagram {
	t.Helper()
	d := New("sample", opts...)
	for _, name := range []string{"test1", "test2", "test3", "test4"} {
		if err := d.AddParticipant(name); err != nil {
			t.Fatalf("AddParticipant(%q) error: %v", name, err)
		}
	}
	d.AddMessage("test1", "test3", "a", scene.MarkerArrow)
	d.AddMessage("test3", "test2", "b", scene.MarkerArrow)
	d.AddMessage("test4", "test3", "c", scene.MarkerNone)
	d.AddMessage("test2", "test3", "d", scene.MarkerArrow)
	return d
}

func TestComputeLayoutSample(t *testing.T) {
	l := sample(t).ComputeLayout()

	if l.LaneWidth != 56 || l.BoxWidth != 46 {
		t.Errorf("LaneWidth/BoxWidth = %d/%d, want 56/46", l.LaneWidth, l.BoxWidth)
	}
	if l.VerticalExtent != 150 {
		t.Errorf("VerticalExtent = %d, want 150", l.VerticalExtent)
	}
	if want := (geom.Rect{W: 264, H: 230}); l.BBox != want {
		t.Errorf("BBox = %+v, want %+v", l.BBox, want)
	}
	wantX := []int{20, 76, 132, 188}
	for i, lane := range l.Lanes {
		if lane.X != wantX[i] || lane.Center != wantX[i]+23 {
			t.Errorf("Lanes[%d] = %+v, want X=%d Center=%d", i, lane, wantX[i], wantX[i]+23)
		}
	}
	wantSlots := []int{50, 80, 110, 140}
	for i, y := range l.Slots {
		if y != wantSlots[i] {
			t.Errorf("Slots[%d] = %d, want %d", i, y, wantSlots[i])
		}
	}
}

func TestSlotsIncreaseInInsertionOrder(t *testing.T) {
	d := sample(t)
	for range 10 {
		d.AddMessage("test4", "test1", "more", scene.MarkerNone)
	}
	l := d.ComputeLayout()
	for i := 1; i < len(l.Slots); i++ {
		if l.Slots[i] <= l.Slots[i-1] {
			t.Fatalf("Slots[%d] = %d not after Slots[%d] = %d", i, l.Slots[i], i-1, l.Slots[i-1])
		}
	}
	if got, want := l.VerticalExtent, 15*SlotHeight; got != want {
		t.Errorf("VerticalExtent = %d, want %d", got, want)
	}
	last := l.Slots[len(l.Slots)-1]
	if _, bottom := l.Lifeline(0); last >= bottom.Y {
		t.Errorf("last slot %d not above footer at %d", last, bottom.Y)
	}
}

func TestLaneUniformity(t *testing.T) {
	d := New("lanes")
	for _, name := range []string{"a", "a-much-longer-name", "bc"} {
		if err := d.AddParticipant(name); err != nil {
			t.Fatal(err)
		}
	}
	l := d.ComputeLayout()
	want := geom.BoxWidth(len("a-much-longer-name"), FontSize, Padding) + 2*Margin
	if l.LaneWidth != want {
		t.Errorf("LaneWidth = %d, want %d", l.LaneWidth, want)
	}
	for i := 1; i < len(l.Lanes); i++ {
		if got := l.Lanes[i].X - l.Lanes[i-1].X; got != want {
			t.Errorf("lane %d spacing = %d, want %d", i, got, want)
		}
		if l.Header(i).Right() > l.Lanes[i].X+l.LaneWidth {
			t.Errorf("header %d overflows its lane", i)
		}
	}
}

func TestMaxLabelLengthCountsRunes(t *testing.T) {
	d := New("runes")
	if err := d.AddParticipant("äöü"); err != nil {
		t.Fatal(err)
	}
	if got := d.MaxLabelLength(); got != 3 {
		t.Errorf("MaxLabelLength() = %d, want 3", got)
	}
}

func TestDroppedMessage(t *testing.T) {
	var buf bytes.Buffer
	d := sample(t, WithLogger(log.New(&buf)))

	if ok := d.AddMessage("test1", "ghost", "lost", scene.MarkerArrow); ok {
		t.Error("AddMessage() = true for unknown participant")
	}
	d.AddMessage("test1", "test2", "after", scene.MarkerNone)

	if d.DroppedCount() != 1 {
		t.Fatalf("DroppedCount() = %d, want 1", d.DroppedCount())
	}
	diag := d.Dropped()[0]
	if diag.Index != 4 || diag.To != "ghost" || diag.Label != "lost" {
		t.Errorf("Dropped()[0] = %+v", diag)
	}
	if !errors.Is(diag.Err, errors.ErrCodeUnknownParticipant) {
		t.Errorf("Err = %v, want UNKNOWN_PARTICIPANT", diag.Err)
	}
	if !strings.Contains(buf.String(), "dropped message") {
		t.Errorf("log output %q missing warning", buf.String())
	}
	if got := len(d.Messages()); got != 5 {
		t.Errorf("len(Messages()) = %d, want 5", got)
	}
	if got := len(d.ComputeLayout().Slots); got != 5 {
		t.Errorf("len(Slots) = %d, want 5", got)
	}
}

func TestAddParticipantErrors(t *testing.T) {
	d := New("dup")
	if err := d.AddParticipant("a"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		code errors.Code
	}{
		{"a", errors.ErrCodeDuplicateParticipant},
		{"", errors.ErrCodeInvalidInput},
		{"bad\nname", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		err := d.AddParticipant(tt.name)
		if !errors.Is(err, tt.code) {
			t.Errorf("AddParticipant(%q) = %v, want code %s", tt.name, err, tt.code)
		}
	}
	if got := len(d.Participants()); got != 1 {
		t.Errorf("len(Participants()) = %d, want 1", got)
	}
}

func TestEmptyDiagram(t *testing.T) {
	l := New("empty").ComputeLayout()
	want := geom.Rect{W: 2 * BaseMargin, H: 2*BaseMargin + 2*BoxHeight + MinExtent}
	if l.BBox != want {
		t.Errorf("BBox = %+v, want %+v", l.BBox, want)
	}
	if len(l.Lanes) != 0 || len(l.Slots) != 0 {
		t.Errorf("Lanes/Slots = %d/%d, want 0/0", len(l.Lanes), len(l.Slots))
	}
}

func TestMarkersDeduplicated(t *testing.T) {
	d := sample(t)
	if got := d.Markers(); len(got) != 1 || got[0] != scene.MarkerArrow {
		t.Errorf("Markers() = %v, want [arrow]", got)
	}

	plain := New("plain")
	_ = plain.AddParticipant("a")
	plain.AddMessage("a", "a", "self", scene.MarkerNone)
	if got := plain.Markers(); len(got) != 0 {
		t.Errorf("Markers() = %v, want none", got)
	}
}

func TestRenderEnclosedAndStyled(t *testing.T) {
	th := theme.New(theme.Colorful)
	d := sample(t)
	l := d.ComputeLayout()
	doc := Render(d, l, th)

	var rects, conns int
	scene.Walk(doc.Root, func(n scene.Node, origin geom.Point) {
		switch v := n.(type) {
		case *scene.Group:
			return
		case *scene.Rect:
			rects++
		case *scene.Line:
			if v.From.Y == v.To.Y {
				conns++
				if s := styleAttr(v.Attrs(), "stroke"); s != th.Line.Second {
					t.Errorf("connector stroke = %v, want %s", s, th.Line.Second)
				}
			}
		}
		b := n.Bounds().Translate(origin.X, origin.Y)
		if !l.BBox.ContainsRect(b) {
			t.Errorf("%T at %+v outside bbox %+v", n, b, l.BBox)
		}
	})
	if rects != 8 {
		t.Errorf("rects = %d, want 8", rects)
	}
	if conns != 4 {
		t.Errorf("connectors = %d, want 4", conns)
	}
	if doc.Markers.Len() != 1 {
		t.Errorf("Markers.Len() = %d, want 1", doc.Markers.Len())
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
