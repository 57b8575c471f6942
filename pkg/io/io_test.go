package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/stackuml/pkg/errors"
	"github.com/matzehuels/stackuml/pkg/scene"
	"github.com/matzehuels/stackuml/pkg/uml/sequence"
)

const classTOML = `
kind = "class"
name = "shapes"
theme = "colorful"
background = "#fff"

[[classes]]
name = "Shape"
operations = [{ name = "area()" }]

[[classes]]
name = "Circle"
attributes = [{ name = "r", private = true }]

[[relations]]
from = 1
to = 2
`

const sequenceJSON = `{
  "kind": "sequence",
  "name": "ping",
  "participants": ["client", "server"],
  "messages": [
    {"from": "client", "to": "server", "label": "ping", "marker": "arrow"},
    {"from": "server", "to": "nobody", "label": "lost"}
  ]
}`

func TestReadTOMLClass(t *testing.T) {
	d, err := ReadTOML(strings.NewReader(classTOML))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}
	if d.Kind != KindClass || d.Name != "shapes" || len(d.Classes) != 2 {
		t.Fatalf("ReadTOML() = %+v", d)
	}
	if !d.Classes[1].Attributes[0].Private {
		t.Error("attribute r should be private")
	}

	cd, err := d.ClassDiagram()
	if err != nil {
		t.Fatalf("ClassDiagram() error: %v", err)
	}
	if cd.Len() != 2 || len(cd.Relations()) != 1 {
		t.Errorf("diagram has %d entities, %d relations", cd.Len(), len(cd.Relations()))
	}
	if _, err := d.SequenceDiagram(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("SequenceDiagram() on class description = %v, want INVALID_INPUT", err)
	}
}

func TestReadJSONSequence(t *testing.T) {
	d, err := ReadJSON(strings.NewReader(sequenceJSON))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	sd, err := d.SequenceDiagram()
	if err != nil {
		t.Fatalf("SequenceDiagram() error: %v", err)
	}
	if got := len(sd.Messages()); got != 1 {
		t.Errorf("len(Messages()) = %d, want 1", got)
	}
	if sd.DroppedCount() != 1 {
		t.Errorf("DroppedCount() = %d, want 1", sd.DroppedCount())
	}
	if m := sd.Messages()[0]; m.Marker != scene.MarkerArrow {
		t.Errorf("Marker = %v, want arrow", m.Marker)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		toml bool
		code errors.Code
	}{
		{"malformed json", `{"kind":`, false, errors.ErrCodeInvalidFormat},
		{"unknown json field", `{"kind":"class","colour":"red"}`, false, errors.ErrCodeInvalidFormat},
		{"unknown toml key", "kind = \"class\"\ncolour = \"red\"\n", true, errors.ErrCodeInvalidFormat},
		{"bad kind", `{"kind":"state"}`, false, errors.ErrCodeInvalidInput},
		{"bad theme", `{"kind":"class","theme":"neon"}`, false, errors.ErrCodeInvalidTheme},
		{"bad background", `{"kind":"class","background":"#12"}`, false, errors.ErrCodeInvalidInput},
		{"relation out of range", `{"kind":"class","classes":[{"name":"A"}],"relations":[{"from":1,"to":2}]}`, false, errors.ErrCodeInvalidEdge},
		{"empty class name", `{"kind":"class","classes":[{"name":""}]}`, false, errors.ErrCodeInvalidInput},
		{"bad marker", `{"kind":"sequence","participants":["a"],"messages":[{"from":"a","to":"a","marker":"star"}]}`, false, errors.ErrCodeInvalidInput},
		{"mixed fields", `{"kind":"class","participants":["a"]}`, false, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.toml {
				_, err = ReadTOML(strings.NewReader(tt.in))
			} else {
				_, err = ReadJSON(strings.NewReader(tt.in))
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestDuplicateParticipantRejected(t *testing.T) {
	d, err := ReadJSON(strings.NewReader(`{"kind":"sequence","participants":["a","a"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.SequenceDiagram(); !errors.Is(err, errors.ErrCodeDuplicateParticipant) {
		t.Errorf("SequenceDiagram() = %v, want DUPLICATE_PARTICIPANT", err)
	}
}

func TestInferKind(t *testing.T) {
	d, err := ReadJSON(strings.NewReader(`{"participants":["a"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if d.Kind != KindSequence {
		t.Errorf("Kind = %q, want sequence", d.Kind)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	orig, err := ReadTOML(strings.NewReader(classTOML))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	for _, name := range []string{"d.json", "d.toml"} {
		path := filepath.Join(dir, name)
		if err := Export(orig, path); err != nil {
			t.Fatalf("Export(%s) error: %v", name, err)
		}
		got, err := Import(path)
		if err != nil {
			t.Fatalf("Import(%s) error: %v", name, err)
		}
		if got.Name != orig.Name || len(got.Classes) != 2 || got.Relations[0] != orig.Relations[0] {
			t.Errorf("Import(%s) = %+v", name, got)
		}
	}
}

func TestImportUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.yaml")
	if err := os.WriteFile(path, []byte("kind: class"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Import(path); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Import() = %v, want INVALID_FORMAT", err)
	}
}

func TestWriteClassLayout(t *testing.T) {
	d, err := ReadTOML(strings.NewReader(classTOML))
	if err != nil {
		t.Fatal(err)
	}
	cd, _ := d.ClassDiagram()
	l, err := cd.ComputeLayout()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteClassLayout(cd, l, &buf); err != nil {
		t.Fatal(err)
	}
	var got classLayout
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.BBox.Width != 120 || got.BBox.Height != 240 {
		t.Errorf("bbox = %+v, want 120x240", got.BBox)
	}
	if got.Entities[1].Rank != 2 || got.Entities[1].Y != 120 {
		t.Errorf("entity 2 = %+v", got.Entities[1])
	}
	if r := got.Relations[0]; r.X1 != 50 || r.Y1 != 100 || r.X2 != 50 || r.Y2 != 120 {
		t.Errorf("relation = %+v", r)
	}
}

func TestWriteSequenceLayout(t *testing.T) {
	sd := sequence.New("s")
	_ = sd.AddParticipant("a")
	_ = sd.AddParticipant("b")
	sd.AddMessage("a", "b", "hi", scene.MarkerArrow)
	sd.AddMessage("a", "c", "lost", scene.MarkerNone)

	var buf bytes.Buffer
	if err := WriteSequenceLayout(sd, sd.ComputeLayout(), &buf); err != nil {
		t.Fatal(err)
	}
	var got sequenceLayout
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Messages) != 1 || got.Messages[0].Y != 50 || got.Messages[0].Marker != "arrow" {
		t.Errorf("messages = %+v", got.Messages)
	}
	if len(got.Dropped) != 1 || got.Dropped[0].To != "c" {
		t.Errorf("dropped = %+v", got.Dropped)
	}
	if got.LaneWidth != 24 {
		t.Errorf("lane_width = %d, want 24", got.LaneWidth)
	}
}
