package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/stackuml/pkg/errors"
	uio "github.com/matzehuels/stackuml/pkg/io"
	"github.com/matzehuels/stackuml/pkg/observability"
	"github.com/matzehuels/stackuml/pkg/render"
	"github.com/matzehuels/stackuml/pkg/render/nodelink"
	"github.com/matzehuels/stackuml/pkg/render/svg"
	"github.com/matzehuels/stackuml/pkg/scene"
	"github.com/matzehuels/stackuml/pkg/uml/class"
	"github.com/matzehuels/stackuml/pkg/uml/sequence"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, d *Diagram, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, d, format, opts, artifacts)
		if err != nil {
			if errors.GetCode(err) == "" {
				err = errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
			}
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, err
		}
		artifacts[format] = data
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, nil
}

// renderFormat renders one format. Raster formats reuse an SVG already in
// done.
func renderFormat(ctx context.Context, d *Diagram, format string, opts Options, done map[string][]byte) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(d, opts), nil
	case FormatPNG, FormatPDF:
		src, ok := done[FormatSVG]
		if !ok {
			src = RenderSVG(d, opts)
		}
		if format == FormatPNG {
			return render.ToPNG(ctx, src, float64(opts.Scale))
		}
		return render.ToPDF(ctx, src)
	case FormatJSON:
		var buf bytes.Buffer
		var err error
		if d.Kind == uio.KindSequence {
			err = uio.WriteSequenceLayout(d.Sequence, d.SequenceLayout, &buf)
		} else {
			err = uio.WriteClassLayout(d.Class, d.ClassLayout, &buf)
		}
		return buf.Bytes(), err
	case FormatDOT, FormatNodelink:
		if d.Kind != uio.KindClass {
			return nil, errors.New(errors.ErrCodeUnsupported, "%s output requires a class diagram", format)
		}
		dot := nodelink.ToDOT(d.Class, nodelink.Options{Layout: d.ClassLayout, Theme: d.Theme})
		if format == FormatDOT {
			return []byte(dot), nil
		}
		return nodelink.RenderSVG(ctx, dot)
	default:
		return nil, ValidateFormat(format)
	}
}

// Document builds the scene for d.
func Document(d *Diagram, opts Options) *scene.Document {
	if d.Kind == uio.KindSequence {
		doc := sequence.Render(d.Sequence, d.SequenceLayout, d.Theme)
		doc.Background = d.Background
		return doc
	}
	marker, _ := scene.ParseMarker(opts.Marker)
	return class.Render(d.Class, d.ClassLayout, d.Theme,
		class.WithRelationMarker(marker),
		class.WithBackground(d.Background))
}

// RenderSVG draws d as a standalone SVG document.
func RenderSVG(d *Diagram, opts Options) []byte {
	return svg.Render(Document(d, opts))
}
