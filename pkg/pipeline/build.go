package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/stackuml/pkg/dag"
	"github.com/matzehuels/stackuml/pkg/dag/transform"
	"github.com/matzehuels/stackuml/pkg/geom"
	uio "github.com/matzehuels/stackuml/pkg/io"
	"github.com/matzehuels/stackuml/pkg/observability"
	"github.com/matzehuels/stackuml/pkg/theme"
	"github.com/matzehuels/stackuml/pkg/uml/class"
	"github.com/matzehuels/stackuml/pkg/uml/sequence"
)

// Diagram is a built and laid-out model. Exactly one of the class or
// sequence pairs is set, according to Kind.
type Diagram struct {
	Kind       uio.Kind
	Name       string
	Theme      theme.Theme
	Background string

	Class       *class.Diagram
	ClassLayout *class.Layout

	Sequence       *sequence.Diagram
	SequenceLayout *sequence.Layout

	// BrokenEdges counts relations removed to make the class graph acyclic.
	BrokenEdges int
}

// Bounds returns the bounding box of the computed layout.
func (d *Diagram) Bounds() geom.Rect {
	if d.Kind == uio.KindSequence {
		return d.SequenceLayout.BBox
	}
	return d.ClassLayout.BBox
}

// Build validates desc, constructs its diagram model and computes the layout.
func Build(ctx context.Context, desc *uio.Description, opts Options) (*Diagram, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()

	d := &Diagram{
		Name:       desc.Name,
		Theme:      opts.ResolveTheme(desc),
		Background: opts.ResolveBackground(desc),
	}

	start := time.Now()
	hooks.OnParseStart(ctx, string(desc.Kind), desc.Name)
	if err := desc.Validate(); err != nil {
		hooks.OnParseComplete(ctx, string(desc.Kind), desc.Name, 0, time.Since(start), err)
		return nil, err
	}
	d.Kind = desc.Kind

	var err error
	switch d.Kind {
	case uio.KindSequence:
		err = buildSequence(ctx, d, desc, opts)
	default:
		err = buildClass(ctx, d, desc, opts)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func buildClass(ctx context.Context, d *Diagram, desc *uio.Description, opts Options) error {
	hooks := observability.Pipeline()
	start := time.Now()

	cd, err := desc.ClassDiagram()
	hooks.OnParseComplete(ctx, string(d.Kind), d.Name, len(desc.Classes), time.Since(start), err)
	if err != nil {
		return err
	}
	if opts.BreakCycles {
		edges, removed := transform.BreakCycles(cd.Len(), cd.Relations())
		if removed > 0 {
			opts.Logger.Warn("removed relations to break cycles", "diagram", d.Name, "removed", removed)
			cd = withRelations(cd, edges)
		}
		d.BrokenEdges = removed
	}
	d.Class = cd

	start = time.Now()
	hooks.OnLayoutStart(ctx, string(d.Kind), cd.Len())
	l, err := cd.ComputeLayout()
	hooks.OnLayoutComplete(ctx, string(d.Kind), time.Since(start), err)
	if err != nil {
		return err
	}
	d.ClassLayout = l
	opts.Logger.Debug("computed class layout", "diagram", d.Name, "entities", cd.Len(), "ranks", int(dag.MaxRank(l.Ranks)))
	return nil
}

// withRelations copies the entities of cd into a new diagram carrying only
// the given relations.
func withRelations(cd *class.Diagram, edges []dag.Edge) *class.Diagram {
	out := class.New(cd.Name())
	for _, e := range cd.Entities() {
		out.AddEntity(e.Name, e.Attributes, e.Operations)
	}
	out.AddRelations(edges...)
	return out
}

func buildSequence(ctx context.Context, d *Diagram, desc *uio.Description, opts Options) error {
	hooks := observability.Pipeline()
	start := time.Now()

	sd, err := desc.SequenceDiagram(sequence.WithLogger(opts.Logger))
	hooks.OnParseComplete(ctx, string(d.Kind), d.Name, len(desc.Participants), time.Since(start), err)
	if err != nil {
		return err
	}
	if n := sd.DroppedCount(); n > 0 {
		hooks.OnMessagesDropped(ctx, d.Name, n)
	}
	d.Sequence = sd

	start = time.Now()
	hooks.OnLayoutStart(ctx, string(d.Kind), len(sd.Participants()))
	d.SequenceLayout = sd.ComputeLayout()
	hooks.OnLayoutComplete(ctx, string(d.Kind), time.Since(start), nil)
	opts.Logger.Debug("computed sequence layout", "diagram", d.Name,
		"participants", len(sd.Participants()), "messages", len(sd.Messages()))
	return nil
}
