// Package pkg holds the stackuml libraries.
//
// # Overview
//
// stackuml lays out UML class and sequence diagrams automatically and draws
// them as vector graphics. The libraries are layered:
//
//  1. [dag] - topological ordering and longest-path ranks over 1-indexed entities
//  2. [uml/class], [uml/sequence] - diagram models, layout and scene rendering
//  3. [scene] - a renderer-neutral tree of rectangles, lines, text and groups
//  4. [render/svg], [render], [render/nodelink] - SVG, PNG/PDF and Graphviz output
//  5. [io] - JSON and TOML descriptions, layout JSON export
//  6. [pipeline] - description → layout → artifacts with caching
//  7. [cache], [store], [observability] - infrastructure for the CLI and HTTP service
//
// # Architecture
//
//	Description (JSON/TOML)
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [uml/class] or [uml/sequence] (model + layout, built on [dag])
//	         ↓
//	    [scene] document
//	         ↓
//	    [render/svg] → [render] (PNG/PDF)
//
// # Quick Start
//
//	desc, err := io.Import("shapes.toml")
//	if err != nil {
//	    return err
//	}
//	result, err := pipeline.NewRunner(nil, nil, logger).Execute(ctx, desc, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("shapes.svg", result.Artifacts["svg"], 0o644)
package pkg
