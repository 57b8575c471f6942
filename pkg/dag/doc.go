// Package dag implements the layering engine behind class-diagram layout.
//
// # Overview
//
// Class diagrams are drawn as layered graphs: every entity is placed in a
// horizontal row (its [Rank]) so that all relations point strictly downward.
// This package computes those rows from nothing but an entity count and a
// list of directed edges.
//
// Entities are identified by their 1-indexed position in the caller's entity
// sequence. Index 0 is a virtual root ([Root]) that conceptually precedes
// every entity without incoming edges; it always has rank 0.
//
// # Algorithm
//
// Layering runs in two steps:
//
//  1. [TopologicalOrder] orders the entities with Kahn's algorithm, seeding
//     the queue in ascending index order, and re-sorts the edges by the
//     topological position of their endpoints. A graph that cannot be fully
//     ordered is cyclic and yields [ErrCycleDetected].
//  2. [AssignRanks] walks the sorted edges and applies longest-path layering:
//     rank(to) = max(rank(to), rank(from)+1), with an immediate repair of
//     outgoing edges whenever a target is revisited.
//
// [Layer] combines validation and both steps:
//
//	ranks, err := dag.Layer(3, []dag.Edge{{From: 1, To: 2}, {From: 2, To: 3}})
//	// ranks[1] == 1, ranks[2] == 2, ranks[3] == 3
//
// # Guarantees
//
// For every edge (a, b) the result satisfies rank(b) >= rank(a)+1, and the
// caller's edge slice is never modified. Multi-edges are allowed.
//
// # Related Packages
//
// The [transform] subpackage provides an opt-in cycle-breaking pass for
// callers that prefer a degraded layout over an error.
//
// [transform]: github.com/matzehuels/stackuml/pkg/dag/transform
package dag
