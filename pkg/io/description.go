package io

import (
	"github.com/matzehuels/stackuml/pkg/dag"
	"github.com/matzehuels/stackuml/pkg/errors"
	"github.com/matzehuels/stackuml/pkg/scene"
	"github.com/matzehuels/stackuml/pkg/theme"
	"github.com/matzehuels/stackuml/pkg/uml/class"
	"github.com/matzehuels/stackuml/pkg/uml/sequence"
)

// Kind selects the diagram type of a description.
type Kind string

const (
	KindClass    Kind = "class"
	KindSequence Kind = "sequence"
)

// Description is the declarative input for one diagram. Class fields and
// sequence fields are mutually exclusive.
type Description struct {
	Kind       Kind   `json:"kind" toml:"kind"`
	Name       string `json:"name,omitempty" toml:"name,omitempty"`
	Theme      string `json:"theme,omitempty" toml:"theme,omitempty"`
	Background string `json:"background,omitempty" toml:"background,omitempty"`

	Classes   []Class    `json:"classes,omitempty" toml:"classes,omitempty"`
	Relations []Relation `json:"relations,omitempty" toml:"relations,omitempty"`

	Participants []string  `json:"participants,omitempty" toml:"participants,omitempty"`
	Messages     []Message `json:"messages,omitempty" toml:"messages,omitempty"`
}

// Class describes one entity of a class diagram.
type Class struct {
	Name       string   `json:"name" toml:"name"`
	Attributes []Member `json:"attributes,omitempty" toml:"attributes,omitempty"`
	Operations []Member `json:"operations,omitempty" toml:"operations,omitempty"`
}

// Member is an attribute or operation. Members are public unless Private
// is set.
type Member struct {
	Name    string `json:"name" toml:"name"`
	Private bool   `json:"private,omitempty" toml:"private,omitempty"`
}

// Relation references classes by their 1-based position in Classes.
type Relation struct {
	From int `json:"from" toml:"from"`
	To   int `json:"to" toml:"to"`
}

// Message references participants by name. Marker is "arrow" or "none"
// (the default).
type Message struct {
	From   string `json:"from" toml:"from"`
	To     string `json:"to" toml:"to"`
	Label  string `json:"label,omitempty" toml:"label,omitempty"`
	Marker string `json:"marker,omitempty" toml:"marker,omitempty"`
}

// Validate checks the description without building a diagram. An empty
// Kind is inferred from the fields that are set. Messages naming unknown
// participants are not an error here; the diagram drops them.
func (d *Description) Validate() error {
	if d.Kind == "" {
		d.Kind = d.inferKind()
	}
	if _, err := theme.Parse(d.Theme); err != nil {
		return err
	}
	if err := errors.ValidateColor(d.Background); err != nil {
		return err
	}

	switch d.Kind {
	case KindClass:
		if len(d.Participants) > 0 || len(d.Messages) > 0 {
			return errors.New(errors.ErrCodeInvalidInput, "class description cannot have participants or messages")
		}
		for _, c := range d.Classes {
			if err := errors.ValidateName("class", c.Name); err != nil {
				return err
			}
		}
		edges := d.edges()
		if err := dag.Validate(len(d.Classes), edges); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidEdge, err, "invalid relation")
		}
	case KindSequence:
		if len(d.Classes) > 0 || len(d.Relations) > 0 {
			return errors.New(errors.ErrCodeInvalidInput, "sequence description cannot have classes or relations")
		}
		for _, m := range d.Messages {
			if _, err := scene.ParseMarker(m.Marker); err != nil {
				return err
			}
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown diagram kind %q (must be 'class' or 'sequence')", d.Kind)
	}
	return nil
}

func (d *Description) inferKind() Kind {
	if len(d.Participants) > 0 || len(d.Messages) > 0 {
		return KindSequence
	}
	return KindClass
}

func (d *Description) edges() []dag.Edge {
	edges := make([]dag.Edge, len(d.Relations))
	for i, r := range d.Relations {
		edges[i] = dag.Edge{From: r.From, To: r.To}
	}
	return edges
}

// ThemeName returns the parsed theme selector.
func (d *Description) ThemeName() theme.Name {
	n, _ := theme.Parse(d.Theme)
	return n
}

// ClassDiagram builds the class diagram described by d.
func (d *Description) ClassDiagram() (*class.Diagram, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.Kind != KindClass {
		return nil, errors.New(errors.ErrCodeInvalidInput, "description %q is a %s diagram", d.Name, d.Kind)
	}
	cd := class.New(d.Name)
	for _, c := range d.Classes {
		cd.AddEntity(c.Name, members(c.Attributes), members(c.Operations))
	}
	cd.AddRelations(d.edges()...)
	return cd, nil
}

// SequenceDiagram builds the sequence diagram described by d. Messages
// with unknown endpoints are dropped and reported by the diagram.
func (d *Description) SequenceDiagram(opts ...sequence.Option) (*sequence.Diagram, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.Kind != KindSequence {
		return nil, errors.New(errors.ErrCodeInvalidInput, "description %q is a %s diagram", d.Name, d.Kind)
	}
	sd := sequence.New(d.Name, opts...)
	for _, p := range d.Participants {
		if err := sd.AddParticipant(p); err != nil {
			return nil, err
		}
	}
	for _, m := range d.Messages {
		marker, _ := scene.ParseMarker(m.Marker)
		sd.AddMessage(m.From, m.To, m.Label, marker)
	}
	return sd, nil
}

func members(in []Member) []class.Member {
	out := make([]class.Member, len(in))
	for i, m := range in {
		if m.Private {
			out[i] = class.Private(m.Name)
		} else {
			out[i] = class.Public(m.Name)
		}
	}
	return out
}
