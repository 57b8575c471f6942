package class

import (
	stderrors "errors"
	"fmt"

	"github.com/matzehuels/stackuml/pkg/dag"
	"github.com/matzehuels/stackuml/pkg/errors"
	"github.com/matzehuels/stackuml/pkg/geom"
)

// Card and grid dimensions. A card is at least CardHeight tall; a rank
// whose tallest card needs more room grows and pushes later ranks down.
const (
	CardWidth  = 100
	CardHeight = 100
	CellWidth  = 120
	CellHeight = 120

	// RowGap is the vertical space between ranks.
	RowGap = CellHeight - CardHeight

	// OffsetX and OffsetY translate the whole drawing inside the viewport.
	OffsetX = 10
	OffsetY = 10

	// Text metrics of the card content.
	FontSize    = 8
	Padding     = 3
	Margin      = 5
	TitleHeight = 2 * FontSize
	LineHeight  = FontSize + Padding
)

// Layout is the computed placement of every entity. Slices are indexed by
// entity id; index 0 is the virtual root and carries zero values.
type Layout struct {
	Ranks   []dag.Rank
	Columns []dag.Column
	// Cells holds the top-left corner of each entity's cell, before the
	// drawing offset is applied.
	Cells []geom.Point
	// Heights holds each card's drawn height: CardHeight, or the content
	// height when the members overflow.
	Heights []int
	// RowCounts is the number of entities per rank.
	RowCounts map[dag.Rank]int
	// Relations are the diagram relations in topological order.
	Relations []dag.Edge
	BBox      geom.Rect
}

// ComputeLayout ranks the entities and assigns grid cells. The diagram's
// relation list is not reordered. A cyclic relation graph returns an error
// coded CYCLE_DETECTED; an endpoint outside the entity range returns one
// coded INVALID_EDGE.
func (d *Diagram) ComputeLayout() (*Layout, error) {
	n := len(d.entities)
	if err := dag.Validate(n, d.relations); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidEdge, err, "class diagram %q", d.name)
	}
	sorted, _, err := dag.TopologicalOrder(n, d.relations)
	if err != nil {
		if stderrors.Is(err, dag.ErrCycleDetected) {
			return nil, errors.Wrap(errors.ErrCodeCycleDetected, err, "class diagram %q", d.name)
		}
		return nil, fmt.Errorf("order relations: %w", err)
	}
	ranks := dag.AssignRanks(n, sorted)

	l := &Layout{
		Ranks:     ranks,
		Columns:   make([]dag.Column, n+1),
		Cells:     make([]geom.Point, n+1),
		Heights:   make([]int, n+1),
		RowCounts: make(map[dag.Rank]int),
		Relations: sorted,
	}
	maxRank := int(dag.MaxRank(ranks))
	rowHeight := make([]int, maxRank+1)
	maxCols := 0
	for id := 1; id <= n; id++ {
		r := ranks[id]
		col := l.RowCounts[r]
		l.RowCounts[r] = col + 1
		maxCols = max(maxCols, col+1)
		l.Columns[id] = dag.Column(col)

		l.Heights[id] = max(CardHeight, d.entities[id-1].ContentHeight())
		rowHeight[r] = max(rowHeight[r], l.Heights[id])
	}

	// rowTop[r] is the top of rank r; without overflow it is (r-1)*CellHeight.
	rowTop := make([]int, maxRank+2)
	for r := 1; r <= maxRank; r++ {
		rowTop[r+1] = rowTop[r] + rowHeight[r] + RowGap
	}
	for id := 1; id <= n; id++ {
		l.Cells[id] = geom.Point{X: int(l.Columns[id]) * CellWidth, Y: rowTop[ranks[id]]}
	}
	l.BBox = geom.Rect{W: maxCols * CellWidth, H: rowTop[maxRank+1]}
	return l, nil
}

// Len returns the number of placed entities.
func (l *Layout) Len() int { return len(l.Cells) - 1 }

// Card returns the card rectangle of entity id in drawing coordinates,
// before the drawing offset.
func (l *Layout) Card(id int) geom.Rect {
	c := l.Cells[id]
	return geom.Rect{X: c.X, Y: c.Y, W: CardWidth, H: l.Heights[id]}
}

// EdgeGeometry returns the connector endpoints for a relation: the bottom
// centre of the source card and the top centre of the target card.
func (l *Layout) EdgeGeometry(from, to int) (geom.Point, geom.Point) {
	src, dst := l.Cells[from], l.Cells[to]
	return geom.Point{X: src.X + CardWidth/2, Y: src.Y + l.Heights[from]},
		geom.Point{X: dst.X + CardWidth/2, Y: dst.Y}
}

// Rows groups entity ids by rank, in column order. Index 0 is rank 1.
func (l *Layout) Rows() [][]int {
	rows := make([][]int, dag.MaxRank(l.Ranks))
	for id := 1; id < len(l.Ranks); id++ {
		r := int(l.Ranks[id]) - 1
		rows[r] = append(rows[r], id)
	}
	return rows
}
