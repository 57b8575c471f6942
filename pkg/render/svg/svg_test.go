package svg

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/stackuml/pkg/dag"
	"github.com/matzehuels/stackuml/pkg/geom"
	"github.com/matzehuels/stackuml/pkg/scene"
	"github.com/matzehuels/stackuml/pkg/theme"
	"github.com/matzehuels/stackuml/pkg/uml/class"
	"github.com/matzehuels/stackuml/pkg/uml/sequence"
)

func wellFormed(t *testing.T, out []byte) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(string(out)))
	for {
		_, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			t.Fatalf("output is not well-formed XML: %v\n%s", err, out)
		}
	}
}

func TestRenderClassDiagram(t *testing.T) {
	d := class.New("shapes")
	a := d.AddEntity("Shape<T>", nil, []class.Member{class.Public("area()")})
	b := d.AddEntity("Circle", []class.Member{class.Private("r")}, nil)
	c := d.AddEntity("Square", nil, nil)
	d.AddRelations(dag.Edge{From: a, To: b}, dag.Edge{From: a, To: c})

	doc, err := d.Document(theme.New(theme.Default), class.WithRelationMarker(scene.MarkerArrow))
	if err != nil {
		t.Fatal(err)
	}
	out := Render(doc, WithBackground("#ffffff"))
	s := string(out)
	wellFormed(t, out)

	for _, want := range []string{
		`viewBox="0 0 240 240"`,
		`<title>shapes</title>`,
		`<marker id="marker-1"`,
		`marker-end="url(#marker-1)"`,
		`Shape&lt;T&gt;`,
		`fill="#ffffff"`,
		`transform="translate(10, 10)"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(s, "<marker "); n != 1 {
		t.Errorf("marker definitions = %d, want 1", n)
	}
}

func TestRenderSequenceDiagram(t *testing.T) {
	d := sequence.New("seq")
	for _, p := range []string{"test1", "test2", "test3", "test4"} {
		if err := d.AddParticipant(p); err != nil {
			t.Fatal(err)
		}
	}
	d.AddMessage("test1", "test3", "a", scene.MarkerArrow)
	d.AddMessage("test3", "test2", "b", scene.MarkerArrow)
	d.AddMessage("test4", "test3", "c", scene.MarkerArrow)
	d.AddMessage("test2", "test3", "d", scene.MarkerArrow)

	out := Render(d.Document(theme.New(theme.Colorful)), WithScale(2), WithoutTitle())
	s := string(out)
	wellFormed(t, out)

	if !strings.Contains(s, `viewBox="0 0 264 230"`) {
		t.Errorf("viewBox missing from %s", s)
	}
	if !strings.Contains(s, `width="528"`) {
		t.Errorf("scaled width missing")
	}
	if strings.Contains(s, "<title>") {
		t.Errorf("title emitted despite WithoutTitle")
	}
	if n := strings.Count(s, "<marker "); n != 1 {
		t.Errorf("marker definitions = %d, want 1", n)
	}
	if n := strings.Count(s, `marker-end="url(#marker-1)"`); n != 4 {
		t.Errorf("marker references = %d, want 4", n)
	}
}

func TestRenderEmpty(t *testing.T) {
	out := Render(scene.NewDocument(geom.Rect{}))
	wellFormed(t, out)
	if strings.Contains(string(out), "<defs>") {
		t.Error("empty document should not emit <defs>")
	}
}

func TestEscapeAttribute(t *testing.T) {
	if got := attr("fill", `"><script>`); strings.Contains(got, "<script>") {
		t.Errorf("attr() = %s, value not escaped", got)
	}
}
