// Package scene is the renderer-neutral drawing model shared by the diagram
// layouts and the output sinks.
//
// Layout packages build a [Document]: a viewport, a set of marker
// definitions and a tree of positioned primitives ([Rect], [Line], [Text]
// grouped by [Group]). Sinks such as render/svg turn that tree into markup.
// Nothing in this package knows about a concrete output format.
//
// Presentation attributes are a [Style], an ordered list of typed key/value
// pairs. A single function, [Apply], sets a style on any primitive:
//
//	r := scene.NewRect(0, 0, 100, 100).Rounded(5, 5)
//	scene.Apply(r, scene.FillStroke(th.Rect.Fill, th.Rect.Frame, 1))
//
// Arrowheads are referenced by [Marker]. Each document carries a
// [MarkerSet] so every marker kind is defined once, however many lines use
// it.
package scene
