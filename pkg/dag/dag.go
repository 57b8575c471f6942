package dag

import (
	"errors"
	"fmt"
)

var (
	// ErrCycleDetected is returned by [TopologicalOrder] and [Layer] when the
	// relation graph contains a directed cycle. No partial order is returned.
	ErrCycleDetected = errors.New("cyclic graph")

	// ErrInvalidEdge is returned by [Validate] when an edge endpoint lies
	// outside [1, n].
	ErrInvalidEdge = errors.New("edge endpoint out of range")
)

// Root is the index of the virtual root entity. It precedes every entity
// without incoming edges, has rank 0 and is always considered visited.
const Root = 0

// Edge is a directed relation between two entities. Endpoints are 1-indexed
// positions in the caller's entity sequence.
type Edge struct {
	From int
	To   int
}

// String formats the edge as "from->to".
func (e Edge) String() string { return fmt.Sprintf("%d->%d", e.From, e.To) }

// Rank is the layer an entity is drawn in. Ranks start at 1; the virtual
// root has rank 0.
type Rank int

// Column is the zero-based slot of an entity within its rank.
type Column int

// Validate checks that every edge endpoint lies in [1, n].
func Validate(n int, edges []Edge) error {
	for i, e := range edges {
		if e.From < 1 || e.From > n || e.To < 1 || e.To > n {
			return fmt.Errorf("edge %d (%s) with %d entities: %w", i, e, n, ErrInvalidEdge)
		}
	}
	return nil
}

// MaxRank returns the highest rank among entities 1..n, or 0 when there
// are none.
func MaxRank(ranks []Rank) Rank {
	var m Rank
	for i := 1; i < len(ranks); i++ {
		m = max(m, ranks[i])
	}
	return m
}

// Layer validates edges, orders them topologically and assigns ranks.
// It is the usual entry point for layouts. The edges slice is not modified.
func Layer(n int, edges []Edge) ([]Rank, error) {
	if err := Validate(n, edges); err != nil {
		return nil, err
	}
	sorted, _, err := TopologicalOrder(n, edges)
	if err != nil {
		return nil, err
	}
	return AssignRanks(n, sorted), nil
}
