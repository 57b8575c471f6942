// Package class lays out and draws UML class diagrams.
//
// A [Diagram] holds entities (classes with attributes and operations) and
// directed relations between them. Relations reference entities by their
// 1-based position, the value returned by [Diagram.AddEntity].
//
// # Layout
//
// [Diagram.ComputeLayout] runs the layering engine in package dag over a copy
// of the relations: entities are ranked by longest path from the sources, so
// every relation points to a strictly lower row. Within a rank, entities take
// the next free column in insertion order. Each entity occupies one cell of
// [CellWidth] x [CellHeight]; the card drawn inside it is [CardWidth] x
// [CardHeight]. A card whose members need more room grows to its
// [Entity.ContentHeight], and its rank grows with it, pushing the ranks
// below down so the bounding box still encloses everything.
//
//	d := class.New("shapes")
//	shape := d.AddEntity("Shape", nil, []class.Member{class.Public("area()")})
//	circle := d.AddEntity("Circle", []class.Member{class.Private("r")}, nil)
//	d.AddRelations(dag.Edge{From: shape, To: circle})
//
//	l, err := d.ComputeLayout()
//	if err != nil {
//	    return err // cyclic relations
//	}
//	doc := class.Render(d, l, theme.New(theme.Default))
//
// A cyclic relation graph is an error coded CYCLE_DETECTED that also matches
// [dag.ErrCycleDetected]; no partial layout is produced. Use
// transform.BreakCycles first to lay out such graphs anyway.
//
// # Card size
//
// Cards have a fixed size. [Entity.ContentHeight] reports how tall the
// content actually is; long attribute or operation lists overflow the card.
package class
