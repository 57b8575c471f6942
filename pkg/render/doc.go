// Package render turns drawn diagrams into output formats.
//
// # Overview
//
// Diagram packages produce a renderer-neutral scene.Document. The
// subpackages serialize it:
//
//   - [svg]: the native vector output, built with github.com/ajstarks/svgo
//   - [nodelink]: an alternative class-diagram rendering through Graphviz
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg). When it is missing they return an error
// coded UNSUPPORTED; [Available] checks ahead of time.
//
//	out := svg.Render(doc)
//	pdf, err := render.ToPDF(ctx, out)
//	png, err := render.ToPNG(ctx, out, 2.0) // 2x scale
package render
