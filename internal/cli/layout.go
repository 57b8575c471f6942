package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	uio "github.com/matzehuels/stackuml/pkg/io"
	"github.com/matzehuels/stackuml/pkg/pipeline"
)

// layoutCommand creates the layout command for inspecting computed layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		asJSON  bool
		breakCy bool
	)

	cmd := &cobra.Command{
		Use:   "layout [description.json|description.toml]",
		Short: "Print the computed layout of a diagram description",
		Long: `Print the computed layout of a diagram description.

For class diagrams this is the rank table: every entity with its rank,
column and cell position. For sequence diagrams it is the lane table and the
message slots. With --json the layout is written as JSON instead, the same
document 'render -f json' produces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, asJSON, breakCy)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write the layout as JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "JSON output file (default: stdout)")
	cmd.Flags().BoolVar(&breakCy, "break-cycles", false, "drop relations that close a cycle instead of failing")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, input, output string, asJSON, breakCycles bool) error {
	desc, err := c.loadDescription(input)
	if err != nil {
		return err
	}

	opts := pipeline.Options{Formats: []string{pipeline.FormatJSON}, BreakCycles: breakCycles, Logger: c.Logger}
	d, err := pipeline.Build(ctx, desc, opts)
	if err != nil {
		return err
	}

	if asJSON {
		arts, err := pipeline.Render(ctx, d, opts)
		if err != nil {
			return err
		}
		if output == "" {
			_, err = os.Stdout.Write(arts[pipeline.FormatJSON])
			return err
		}
		if err := writeArtifact(ctx, output, arts[pipeline.FormatJSON]); err != nil {
			return err
		}
		printSuccess("Layout written")
		printFile(output)
		return nil
	}

	if d.Kind == uio.KindSequence {
		fmt.Println(sequenceTable(d))
		printDropped(d.Sequence.Dropped())
	} else {
		fmt.Println(classTable(d))
	}
	bb := d.Bounds()
	printKeyValue("bbox", fmt.Sprintf("%d × %d", bb.W, bb.H))
	return nil
}

// classTable renders the rank table of a class layout, one row per entity
// in rank order.
func classTable(d *pipeline.Diagram) string {
	l := d.ClassLayout
	entities := d.Class.Entities()
	t := newTable("Rank", "Column", "Entity", "X", "Y")
	for _, row := range l.Rows() {
		for _, id := range row {
			cell := l.Cells[id]
			t.Row(
				strconv.Itoa(int(l.Ranks[id])),
				strconv.Itoa(int(l.Columns[id])),
				entities[id-1].Name,
				strconv.Itoa(cell.X),
				strconv.Itoa(cell.Y),
			)
		}
	}
	return t.String()
}

// sequenceTable renders lanes followed by message slots.
func sequenceTable(d *pipeline.Diagram) string {
	l := d.SequenceLayout
	ps := d.Sequence.Participants()

	lanes := newTable("Lane", "Participant", "X", "Center")
	for i, p := range ps {
		lanes.Row(strconv.Itoa(i), p.Name, strconv.Itoa(l.Lanes[i].X), strconv.Itoa(l.Lanes[i].Center))
	}

	msgs := newTable("Slot", "From", "To", "Label", "Y")
	for i, m := range d.Sequence.Messages() {
		msgs.Row(strconv.Itoa(i), ps[m.From].Name, ps[m.To].Name, m.Label, strconv.Itoa(l.Slots[i]))
	}

	var buf bytes.Buffer
	buf.WriteString(lanes.String())
	buf.WriteString("\n")
	buf.WriteString(msgs.String())
	return buf.String()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return StyleTitle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}
