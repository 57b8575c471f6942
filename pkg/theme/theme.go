// Package theme holds the color tables used when drawing diagrams.
//
// A theme is selected by [Name] and passed explicitly to every render call;
// there is no process-wide current theme.
package theme

import (
	"slices"
	"strings"

	"github.com/matzehuels/stackuml/pkg/errors"
)

// Name selects a color table.
type Name int

const (
	// Default is black strokes on white cards.
	Default Name = iota
	// Colorful tints connector lines.
	Colorful
)

var names = map[Name]string{
	Default:  "default",
	Colorful: "colorful",
}

// String returns the lowercase theme name.
func (n Name) String() string {
	if s, ok := names[n]; ok {
		return s
	}
	return "default"
}

// Names returns all known theme names, sorted.
func Names() []string {
	out := make([]string, 0, len(names))
	for _, s := range names {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Parse resolves a theme name case-insensitively. An empty string selects
// [Default].
func Parse(s string) (Name, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Default, nil
	}
	for n, name := range names {
		if name == s {
			return n, nil
		}
	}
	return Default, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q (must be one of: %s)", s, strings.Join(Names(), ", "))
}

// RectColors styles card and lifeline boxes.
type RectColors struct {
	Fill  string
	Frame string
	Text  string
}

// LineColors styles connectors.
type LineColors struct {
	Primary string
	Second  string
}

// TextColors styles free-standing labels.
type TextColors struct {
	Primary string
}

// Theme is a read-only color table.
type Theme struct {
	Name Name
	Rect RectColors
	Line LineColors
	Text TextColors
}

// New returns the color table for n. Unknown names fall back to [Default].
func New(n Name) Theme {
	switch n {
	case Colorful:
		return Theme{
			Name: Colorful,
			Rect: RectColors{Fill: "#ffffff", Frame: "#000000", Text: "#000000"},
			Line: LineColors{Primary: "#e7afff", Second: "#e74c3c"},
			Text: TextColors{Primary: "#000000"},
		}
	default:
		return Theme{
			Name: Default,
			Rect: RectColors{Fill: "#ffffff", Frame: "#000000", Text: "#000000"},
			Line: LineColors{Primary: "#000", Second: "#000"},
			Text: TextColors{Primary: "#000000"},
		}
	}
}
