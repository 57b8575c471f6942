package errors

import (
	"regexp"
	"unicode"
)

// maxNameLength bounds entity and participant names.
const maxNameLength = 256

// ValidateName validates a display name for an entity or participant.
//
// Names must be non-empty, at most 256 characters and free of control
// characters. Names are rendered as SVG text, so anything else is allowed.
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "%s name cannot be empty", kind)
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "%s name too long (max %d characters)", kind, maxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s name contains invalid control characters", kind)
		}
	}
	return nil
}

// colorRegex matches #rgb, #rrggbb and plain CSS color keywords.
var colorRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[a-zA-Z]+)$`)

// ValidateColor validates a background color. Empty means "no background".
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if !colorRegex.MatchString(color) {
		return New(ErrCodeInvalidInput, "invalid color %q (use #rgb, #rrggbb or a color keyword)", color)
	}
	return nil
}
