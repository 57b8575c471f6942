package dag

// AssignRanks computes longest-path layers for entities 1..n from edges in
// topological order (see [TopologicalOrder]). The returned slice has length
// n+1; index 0 is the virtual root with rank 0.
//
// Every entity starts at rank 1. For each edge (a, b) the target is pushed to
// at least rank(a)+1. When b was already visited through an earlier edge, the
// edges leaving b are repaired immediately so their targets stay below b.
// After the pass every edge satisfies rank(to) >= rank(from)+1.
func AssignRanks(n int, sorted []Edge) []Rank {
	ranks := make([]Rank, n+1)
	visited := make([]bool, n+1)
	for id := 1; id <= n; id++ {
		ranks[id] = 1
	}
	visited[Root] = true

	for _, e := range sorted {
		ranks[e.To] = max(ranks[e.To], ranks[e.From]+1)
		if visited[e.To] {
			for _, next := range sorted {
				if next.From == e.To {
					ranks[next.To] = max(ranks[next.To], ranks[e.To]+1)
				}
			}
		}
		visited[e.From] = true
		visited[e.To] = true
	}
	return ranks
}
