// Package io reads diagram descriptions and writes computed layouts.
//
// # Descriptions
//
// A description declares one diagram, either a class diagram or a sequence
// diagram, in JSON or TOML:
//
//	kind = "class"
//	name = "shapes"
//	theme = "colorful"
//
//	[[classes]]
//	name = "Shape"
//	operations = [{ name = "area()" }]
//
//	[[classes]]
//	name = "Circle"
//	attributes = [{ name = "r", private = true }]
//
//	[[relations]]
//	from = 1
//	to = 2
//
// Relations reference classes by 1-based position. A sequence description
// lists participant names and messages between them:
//
//	kind = "sequence"
//	participants = ["client", "server"]
//
//	[[messages]]
//	from = "client"
//	to = "server"
//	label = "GET /"
//	marker = "arrow"
//
// Use [Import] to read a file (the extension picks the decoder) or
// [ReadJSON] and [ReadTOML] for any io.Reader. Unknown fields are rejected
// and every description is validated before it is returned; errors carry
// codes from package errors (INVALID_FORMAT, INVALID_INPUT, INVALID_EDGE,
// INVALID_THEME).
//
// # Layout export
//
// [WriteClassLayout] and [WriteSequenceLayout] dump the computed geometry
// as JSON for tooling that draws diagrams itself.
package io
