package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	uio "github.com/matzehuels/stackuml/pkg/io"
)

// demoCommand creates the demo command, which writes sample descriptions.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		dir    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write sample class and sequence diagram descriptions",
		Long: `Write sample descriptions to a directory.

class: seven entities test1..test7 with the relations
  1→2 2→4 3→6 1→5 2→3 3→4 5→6
sequence: four participants exchanging "result" messages`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(dir, uio.Format(format))
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")
	cmd.Flags().StringVarP(&format, "format", "f", string(uio.FormatTOML), "description format: toml (default), json")

	return cmd
}

func (c *CLI) runDemo(dir string, format uio.Format) error {
	if format != uio.FormatJSON && format != uio.FormatTOML {
		return fmt.Errorf("invalid format: %s (must be 'toml' or 'json')", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	var written []string
	for _, d := range sampleDescriptions() {
		path := filepath.Join(dir, d.Name+"."+string(format))
		if err := uio.Export(d, path); err != nil {
			return err
		}
		c.Logger.Debug("wrote sample", "path", path)
		written = append(written, path)
	}

	printSuccess("Wrote %d sample descriptions", len(written))
	for _, p := range written {
		printFile(p)
	}
	printNextStep("Render", appName+" render "+written[0])
	return nil
}

// sampleDescriptions returns the class and sequence samples.
func sampleDescriptions() []*uio.Description {
	class := &uio.Description{
		Kind:       uio.KindClass,
		Name:       "class",
		Background: "#fff",
	}
	for i := 1; i <= 7; i++ {
		class.Classes = append(class.Classes, uio.Class{Name: fmt.Sprintf("test%d", i)})
	}
	for _, e := range [][2]int{{1, 2}, {2, 4}, {3, 6}, {1, 5}, {2, 3}, {3, 4}, {5, 6}} {
		class.Relations = append(class.Relations, uio.Relation{From: e[0], To: e[1]})
	}

	seq := &uio.Description{
		Kind:         uio.KindSequence,
		Name:         "sequence",
		Background:   "#fff",
		Participants: []string{"test1", "test2", "test3", "test4"},
	}
	for _, m := range [][2]string{{"test1", "test3"}, {"test3", "test2"}, {"test4", "test3"}, {"test2", "test3"}} {
		seq.Messages = append(seq.Messages, uio.Message{From: m[0], To: m[1], Label: "result", Marker: "arrow"})
	}

	return []*uio.Description{class, seq}
}
