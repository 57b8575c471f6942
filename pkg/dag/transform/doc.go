// Package transform provides optional graph transformations applied before
// layering.
//
// # Cycle Breaking
//
// Class-diagram layout treats a cyclic relation graph as fatal: [dag.Layer]
// returns [dag.ErrCycleDetected] and no layout is produced. Callers that
// would rather draw something can run [BreakCycles] first. It removes the
// back edges found by a depth-first search so the rest of the graph can be
// layered:
//
//	kept, removed := transform.BreakCycles(n, edges)
//	if removed > 0 {
//	    logger.Warn("dropped cyclic relations", "count", removed)
//	}
//	ranks, err := dag.Layer(n, kept)
//
// The relations removed depend on the DFS visiting order, which is fixed
// (sources first, ascending entity index), so results are deterministic.
package transform
