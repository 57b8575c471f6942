// Package nodelink renders class diagrams through Graphviz.
//
// # Overview
//
// This is an alternative to the native grid layout: entities become
// Graphviz record nodes (title, attributes and operations compartments)
// and relations become edges. Graphviz picks positions and routes edges.
//
// # Usage
//
//	dot := nodelink.ToDOT(d, nodelink.Options{Theme: th})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Passing the computed class.Layout in [Options] adds rank=same groups so
// Graphviz keeps the rows chosen by the native layering.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
