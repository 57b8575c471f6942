package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackuml/pkg/observability"
	"github.com/matzehuels/stackuml/pkg/pipeline"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [description.json|description.toml]",
		Short: "Render a diagram description",
		Long: `Render a UML class or sequence diagram description.

The description is read as JSON or TOML depending on the file extension. The
layout is computed automatically and written in each requested format:

  svg       vector drawing (default)
  png, pdf  raster and print output (requires rsvg-convert)
  json      computed positions and bounding box
  dot       Graphviz source (class diagrams only)
  nodelink  Graphviz-laid-out SVG (class diagrams only)

Rendered artifacts are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot, nodelink (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "color theme: default, colorful (overrides the description)")
	cmd.Flags().StringVar(&opts.Background, "background", "", "background color (overrides the description)")
	cmd.Flags().StringVar(&opts.Marker, "marker", "", "arrowhead on class relations: none (default), arrow")
	cmd.Flags().IntVar(&opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.BreakCycles, "break-cycles", false, "drop relations that close a cycle instead of failing")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	formats := pipeline.ParseFormats(s)
	if len(formats) == 0 {
		return []string{pipeline.FormatSVG}
	}
	return formats
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to the file it is written to. A single
// format honors an explicit output path verbatim.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + pipeline.Extension(f)
	}
	return paths
}

func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	desc, err := c.loadDescription(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	if c.Logger.GetLevel() <= log.DebugLevel {
		trace := observability.LogHooks{Logger: c.Logger}
		observability.SetPipelineHooks(trace)
		observability.SetCacheHooks(trace)
		defer observability.Reset()
	}
	finished := stopwatch(c.Logger)

	spinner := newSpinnerWithContext(ctx, "Rendering "+filepath.Base(input)+"...")
	spinner.Start()
	result, err := runner.Execute(ctx, desc, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths := outputPaths(output, input, opts.Formats)
	for _, format := range opts.Formats {
		if err := writeArtifact(ctx, paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}
	finished(fmt.Sprintf("Rendered %d artifact(s)", len(opts.Formats)))

	printSuccess("Rendered %s diagram %s", result.Diagram.Kind, StyleHighlight.Render(displayName(result.Diagram.Name, input)))
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printStats(result.Stats, result.CacheHit)
	if result.Stats.BrokenEdges > 0 {
		printWarning("Removed %d relation(s) to break cycles", result.Stats.BrokenEdges)
	}
	printDropped(result.Dropped)
	return nil
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(ctx context.Context, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	loggerFromContext(ctx).Debug("wrote artifact", "path", path, "bytes", len(data))
	return nil
}

func displayName(name, input string) string {
	if name != "" {
		return name
	}
	return filepath.Base(input)
}
