// Package cli implements the stackuml command-line interface.
//
// # Commands
//
//   - render: draw a diagram description as svg, png, pdf, json, dot or nodelink
//   - layout: print the computed rank table or lane table of a description
//   - demo: write the sample class and sequence descriptions
//   - serve: run the HTTP API
//   - cache: inspect and clear the local artifact cache
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackuml/pkg/buildinfo"
	"github.com/matzehuels/stackuml/pkg/cache"
	uio "github.com/matzehuels/stackuml/pkg/io"
	"github.com/matzehuels/stackuml/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "stackuml"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// cacheDir overrides the artifact cache directory; tests set it.
	cacheDir string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "stackuml lays out UML class and sequence diagrams",
		Long:         `stackuml reads a small JSON or TOML description of a UML class or sequence diagram, computes its layout automatically and renders it as SVG, PNG, PDF, layout JSON or Graphviz.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := c.artifactDir()
	if err != nil {
		c.Logger.Debug("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// artifactDir returns the local cache directory.
func (c *CLI) artifactDir() (string, error) {
	if c.cacheDir != "" {
		return c.cacheDir, nil
	}
	return cache.DefaultDir()
}

// loadDescription reads a description file, choosing JSON or TOML by
// extension.
func (c *CLI) loadDescription(path string) (*uio.Description, error) {
	desc, err := uio.Import(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded description", "path", path, "kind", desc.Kind, "name", desc.Name)
	return desc, nil
}
