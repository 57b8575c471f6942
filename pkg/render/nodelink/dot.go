package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stackuml/pkg/theme"
	"github.com/matzehuels/stackuml/pkg/uml/class"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Layout, when set, pins entities that share a rank to the same
	// Graphviz rank so the drawing matches the native layering.
	Layout *class.Layout
	// Theme colors nodes and edges.
	Theme theme.Theme
}

// ToDOT converts a class diagram to Graphviz DOT. Each entity becomes a
// record node with a title, an attribute and an operation compartment.
// Entities are named n1..nN after their id.
func ToDOT(d *class.Diagram, opts Options) string {
	th := opts.Theme
	if th.Rect.Fill == "" {
		th = theme.New(theme.Default)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=record, style=\"rounded,filled\", fillcolor=%q, color=%q, fontcolor=%q, fontsize=10];\n",
		th.Rect.Fill, th.Rect.Frame, th.Rect.Text)
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=2];\n", th.Line.Primary)
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for i, e := range d.Entities() {
		fmt.Fprintf(&buf, "  n%d [label=%s];\n", i+1, quote(recordLabel(e)))
	}

	buf.WriteString("\n")
	for _, r := range d.Relations() {
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", r.From, r.To)
	}

	if opts.Layout != nil {
		buf.WriteString("\n")
		for _, row := range opts.Layout.Rows() {
			ids := make([]string, len(row))
			for i, id := range row {
				ids[i] = "n" + strconv.Itoa(id)
			}
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func recordLabel(e class.Entity) string {
	var b strings.Builder
	b.WriteString("{")
	b.WriteString(escapeRecord(e.Name))
	for _, region := range [][]class.Member{e.Attributes, e.Operations} {
		b.WriteString("|")
		for _, m := range region {
			b.WriteString(escapeRecord(m.Label()))
			b.WriteString(`\l`)
		}
	}
	b.WriteString("}")
	return b.String()
}

var recordEscaper = strings.NewReplacer(
	`{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func escapeRecord(s string) string { return recordEscaper.Replace(s) }

// quote wraps s in a DOT string. Unlike %q it leaves backslash sequences
// such as \l to Graphviz.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's root element with one whose viewBox
// starts at the origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
