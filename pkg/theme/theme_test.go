package theme

import (
	"testing"

	"github.com/matzehuels/stackuml/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Name
		wantErr bool
	}{
		{"", Default, false},
		{"default", Default, false},
		{"Colorful", Colorful, false},
		{"  colorful ", Colorful, false},
		{"neon", Default, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidTheme) {
			t.Errorf("Parse(%q) code = %v, want %v", tt.in, errors.GetCode(err), errors.ErrCodeInvalidTheme)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	d := New(Default)
	if d.Rect.Fill != "#ffffff" || d.Rect.Frame != "#000000" {
		t.Errorf("Default rect colors = %+v", d.Rect)
	}
	c := New(Colorful)
	if c.Line.Primary != "#e7afff" || c.Line.Second != "#e74c3c" {
		t.Errorf("Colorful line colors = %+v", c.Line)
	}
	if New(Name(99)).Name != Default {
		t.Error("unknown theme should fall back to Default")
	}
}

func TestNames(t *testing.T) {
	got := Names()
	if len(got) != 2 || got[0] != "colorful" || got[1] != "default" {
		t.Errorf("Names() = %v", got)
	}
}
