// Package pipeline runs description → layout → artifacts for stackuml.
//
// This package implements the complete pipeline used by both the CLI and
// the HTTP service. By centralizing this logic, both entry points apply the
// same defaults, the same cache keys and the same error codes.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: turn an io.Description into a class or sequence diagram model
//  2. Layout: rank and place entities, or assign lanes and message slots
//  3. Render: produce artifacts (svg, png, pdf, json, dot, nodelink)
//
// Build and layout are cheap and always run, so diagnostics such as dropped
// messages are reported on every run. Rendered artifacts are cached by a
// hash of the description plus the render options.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, desc, pipeline.Options{
//	    Formats: []string{"svg", "json"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackuml/pkg/cache"
	"github.com/matzehuels/stackuml/pkg/errors"
	uio "github.com/matzehuels/stackuml/pkg/io"
	"github.com/matzehuels/stackuml/pkg/scene"
	"github.com/matzehuels/stackuml/pkg/theme"
	"github.com/matzehuels/stackuml/pkg/uml/sequence"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultScale is the raster scale for PNG output.
	DefaultScale = 2

	// MaxScale bounds PNG output size.
	MaxScale = 8
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	// FormatDOT is Graphviz source for class diagrams.
	FormatDOT = "dot"
	// FormatNodelink is a Graphviz-laid-out SVG of a class diagram.
	FormatNodelink = "nodelink"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatPNG:      true,
	FormatPDF:      true,
	FormatJSON:     true,
	FormatDOT:      true,
	FormatNodelink: true,
}

// ContentTypes maps formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:      "image/svg+xml",
	FormatPNG:      "image/png",
	FormatPDF:      "application/pdf",
	FormatJSON:     "application/json",
	FormatDOT:      "text/vnd.graphviz",
	FormatNodelink: "image/svg+xml",
}

// Extension returns the file extension for a format.
func Extension(format string) string {
	if format == FormatNodelink {
		return "nodelink.svg"
	}
	return format
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. Empty Theme and Background fall back to
// the description's values.
type Options struct {
	Formats     []string `json:"formats,omitempty"`
	Theme       string   `json:"theme,omitempty"`
	Background  string   `json:"background,omitempty"`
	Marker      string   `json:"marker,omitempty"` // arrowhead on class relations
	Scale       int      `json:"scale,omitempty"`
	BreakCycles bool     `json:"break_cycles,omitempty"`
	Refresh     bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Diagram is the laid-out model.
	Diagram *Diagram

	// Hash is the content hash of the description.
	Hash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Dropped lists sequence messages whose endpoints did not resolve.
	Dropped []sequence.Diagnostic

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit is true when every artifact came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Entities    int
	Edges       int
	Ranks       int
	BrokenEdges int
	BuildTime   time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot, nodelink)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetRenderDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates formats, theme, background, marker and scale.
func (o *Options) ValidateForRender() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := theme.Parse(o.Theme); err != nil {
		return err
	}
	if err := errors.ValidateColor(o.Background); err != nil {
		return err
	}
	if _, err := scene.ParseMarker(o.Marker); err != nil {
		return err
	}
	if o.Scale < 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be between 1 and %d", MaxScale)
	}
	return nil
}

// ResolveTheme returns the theme to draw with: the option when set,
// otherwise the description's.
func (o *Options) ResolveTheme(desc *uio.Description) theme.Theme {
	name := desc.ThemeName()
	if o.Theme != "" {
		name, _ = theme.Parse(o.Theme)
	}
	return theme.New(name)
}

// ResolveBackground returns the option background when set, otherwise the
// description's.
func (o *Options) ResolveBackground(desc *uio.Description) string {
	if o.Background != "" {
		return o.Background
	}
	return desc.Background
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string, desc *uio.Description) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Theme:       o.ResolveTheme(desc).Name.String(),
		Background:  o.ResolveBackground(desc),
		Marker:      o.Marker,
		Scale:       o.Scale,
		BreakCycles: o.BreakCycles,
	}
}
