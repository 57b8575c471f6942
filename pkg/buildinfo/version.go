// Package buildinfo exposes the version stamped into the binary.
//
// Release builds set the variables with -ldflags, for example:
//
//	go build -ldflags "-X github.com/matzehuels/stackuml/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/stackuml/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/stackuml
package buildinfo

import "strings"

// Set at link time; the defaults mark a local build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the build information one field per line.
func String() string {
	return strings.Join([]string{
		"version: " + Version,
		"commit: " + Commit,
		"built: " + Date,
	}, "\n")
}

// Template is the cobra version template: the command name followed by
// String.
func Template() string {
	return "{{.Name}} " + String() + "\n"
}
