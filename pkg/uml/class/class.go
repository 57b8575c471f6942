package class

import (
	"slices"

	"github.com/matzehuels/stackuml/pkg/dag"
)

// Visibility of an attribute or operation.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityPrivate
)

// Glyph returns "+" for public and "-" for private members.
func (v Visibility) Glyph() string {
	if v == VisibilityPrivate {
		return "-"
	}
	return "+"
}

// String returns "public" or "private".
func (v Visibility) String() string {
	if v == VisibilityPrivate {
		return "private"
	}
	return "public"
}

// Member is an attribute or operation line of a class card.
type Member struct {
	Visibility Visibility
	Name       string
}

// Public returns a public member.
func Public(name string) Member { return Member{Visibility: VisibilityPublic, Name: name} }

// Private returns a private member.
func Private(name string) Member { return Member{Visibility: VisibilityPrivate, Name: name} }

// Label returns the member as drawn, e.g. "- radius".
func (m Member) Label() string { return m.Visibility.Glyph() + " " + m.Name }

// Entity is a class in the diagram.
type Entity struct {
	Name       string
	Attributes []Member
	Operations []Member
}

// ContentHeight is the height the card content needs: the title band, one
// line per attribute and per operation, and a margin around each region.
// Cards are drawn at least [CardHeight] tall and grow to fit taller
// content.
func (e Entity) ContentHeight() int {
	return TitleHeight +
		len(e.Attributes)*LineHeight + 2*Margin +
		len(e.Operations)*LineHeight + 2*Margin
}

// Overflows reports whether the content needs more than [CardHeight].
func (e Entity) Overflows() bool { return e.ContentHeight() > CardHeight }

// Diagram is a class diagram under construction. It is not safe for
// concurrent use.
type Diagram struct {
	name      string
	entities  []Entity
	relations []dag.Edge
}

// New returns an empty diagram.
func New(name string) *Diagram {
	return &Diagram{name: name}
}

// Name returns the diagram name.
func (d *Diagram) Name() string { return d.name }

// AddEntity appends a class and returns its 1-based id for use in
// relations. The member slices are copied.
func (d *Diagram) AddEntity(name string, attributes, operations []Member) int {
	d.entities = append(d.entities, Entity{
		Name:       name,
		Attributes: slices.Clone(attributes),
		Operations: slices.Clone(operations),
	})
	return len(d.entities)
}

// AddRelations appends relations in the given order. Endpoints are checked
// by [Diagram.ComputeLayout], so relations may be added before their
// entities.
func (d *Diagram) AddRelations(edges ...dag.Edge) {
	d.relations = append(d.relations, edges...)
}

// Len returns the number of entities.
func (d *Diagram) Len() int { return len(d.entities) }

// Entity returns the entity with the given 1-based id.
func (d *Diagram) Entity(id int) (Entity, bool) {
	if id < 1 || id > len(d.entities) {
		return Entity{}, false
	}
	return d.entities[id-1], true
}

// Entities returns the entities in insertion order. Entity id i is at
// index i-1.
func (d *Diagram) Entities() []Entity { return slices.Clone(d.entities) }

// Relations returns the relations in insertion order.
func (d *Diagram) Relations() []dag.Edge { return slices.Clone(d.relations) }
