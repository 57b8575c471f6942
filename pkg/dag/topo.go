package dag

import (
	"cmp"
	"slices"
)

// TopologicalOrder orders n entities with Kahn's algorithm and returns a copy
// of edges sorted by the topological position of their source, then of their
// target. The second result is the entity order itself.
//
// The queue is seeded with every in-degree 0 entity in ascending index order.
// Each pop scans the whole edge list for edges leaving the popped entity, so
// the cost is O(V·E); diagrams are small enough that this never matters.
//
// If fewer than n entities can be ordered the graph has a cycle and
// ErrCycleDetected is returned. Edge endpoints must already be in [1, n];
// see [Validate].
func TopologicalOrder(n int, edges []Edge) ([]Edge, []int, error) {
	inDegree := make([]int, n+1)
	for _, e := range edges {
		inDegree[e.To]++
	}

	queue := make([]int, 0, n)
	for id := 1; id <= n; id++ {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		order = append(order, curr)

		for _, e := range edges {
			if e.From != curr || inDegree[e.To] == 0 {
				continue
			}
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	if len(order) < n {
		return nil, nil, ErrCycleDetected
	}

	pos := make([]int, n+1)
	for i, id := range order {
		pos[id] = i
	}

	sorted := slices.Clone(edges)
	slices.SortStableFunc(sorted, func(a, b Edge) int {
		if c := cmp.Compare(pos[a.From], pos[b.From]); c != 0 {
			return c
		}
		return cmp.Compare(pos[a.To], pos[b.To])
	})
	return sorted, order, nil
}
