package transform

import "github.com/matzehuels/stackuml/pkg/dag"

// BreakCycles removes back edges so that the remaining relations form a DAG.
// It returns the kept edges in their original order and the number of edges
// dropped. Every copy of a back-edge pair is dropped, so multi-edges count
// more than once.
//
// Back edges are found by depth-first search with white/gray/black coloring,
// starting from source entities (in-degree 0) in ascending order and then
// from any entity still unvisited. Endpoints must lie in [1, n]; see
// [dag.Validate]. The input slice is not modified.
func BreakCycles(n int, edges []dag.Edge) ([]dag.Edge, int) {
	const (
		white = iota
		gray
		black
	)

	children := make([][]int, n+1)
	inDegree := make([]int, n+1)
	for _, e := range edges {
		children[e.From] = append(children[e.From], e.To)
		inDegree[e.To]++
	}

	color := make([]int, n+1)
	back := make(map[dag.Edge]struct{})

	var dfs func(node int)
	dfs = func(node int) {
		color[node] = gray
		for _, child := range children[node] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				back[dag.Edge{From: node, To: child}] = struct{}{}
			}
		}
		color[node] = black
	}

	for id := 1; id <= n; id++ {
		if inDegree[id] == 0 && color[id] == white {
			dfs(id)
		}
	}
	for id := 1; id <= n; id++ {
		if color[id] == white {
			dfs(id)
		}
	}

	if len(back) == 0 {
		return append([]dag.Edge(nil), edges...), 0
	}

	kept := make([]dag.Edge, 0, len(edges))
	for _, e := range edges {
		if _, ok := back[e]; !ok {
			kept = append(kept, e)
		}
	}
	return kept, len(edges) - len(kept)
}
