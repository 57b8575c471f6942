package transform

import (
	"slices"
	"testing"

	"github.com/matzehuels/stackuml/pkg/dag"
)

func TestBreakCycles_NoCycles(t *testing.T) {
	edges := []dag.Edge{{From: 1, To: 2}, {From: 2, To: 3}}

	kept, removed := BreakCycles(3, edges)

	if removed != 0 {
		t.Errorf("BreakCycles() removed %d edges, want 0", removed)
	}
	if !slices.Equal(kept, edges) {
		t.Errorf("kept = %v, want %v", kept, edges)
	}
}

func TestBreakCycles_SimpleCycle(t *testing.T) {
	kept, removed := BreakCycles(2, []dag.Edge{{From: 1, To: 2}, {From: 2, To: 1}})

	if removed != 1 {
		t.Errorf("BreakCycles() removed %d edges, want 1", removed)
	}
	if len(kept) != 1 {
		t.Errorf("len(kept) = %d, want 1", len(kept))
	}
}

func TestBreakCycles_TriangleCycle(t *testing.T) {
	edges := []dag.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}}

	kept, removed := BreakCycles(3, edges)

	if removed != 1 {
		t.Errorf("BreakCycles() removed %d edges, want 1", removed)
	}
	want := []dag.Edge{{From: 1, To: 2}, {From: 2, To: 3}}
	if !slices.Equal(kept, want) {
		t.Errorf("kept = %v, want %v", kept, want)
	}
}

func TestBreakCycles_MultipleCycles(t *testing.T) {
	// Two separate cycles: 1<->2 and 3<->4
	edges := []dag.Edge{{From: 1, To: 2}, {From: 2, To: 1}, {From: 3, To: 4}, {From: 4, To: 3}}

	kept, removed := BreakCycles(4, edges)

	if removed != 2 {
		t.Errorf("BreakCycles() removed %d edges, want 2", removed)
	}
	if len(kept) != 2 {
		t.Errorf("len(kept) = %d, want 2", len(kept))
	}
}

func TestBreakCycles_SelfLoop(t *testing.T) {
	kept, removed := BreakCycles(1, []dag.Edge{{From: 1, To: 1}})

	if removed != 1 {
		t.Errorf("BreakCycles() removed %d edges, want 1", removed)
	}
	if len(kept) != 0 {
		t.Errorf("len(kept) = %d, want 0", len(kept))
	}
}

func TestBreakCycles_DuplicateBackEdges(t *testing.T) {
	edges := []dag.Edge{{From: 1, To: 2}, {From: 2, To: 1}, {From: 2, To: 1}}

	kept, removed := BreakCycles(2, edges)

	if removed != 2 {
		t.Errorf("BreakCycles() removed %d edges, want 2", removed)
	}
	if !slices.Equal(kept, []dag.Edge{{From: 1, To: 2}}) {
		t.Errorf("kept = %v", kept)
	}
}

func TestBreakCycles_DiamondNoCycle(t *testing.T) {
	//   1
	//  / \
	// 2   3
	//  \ /
	//   4
	edges := []dag.Edge{{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}, {From: 3, To: 4}}

	_, removed := BreakCycles(4, edges)

	if removed != 0 {
		t.Errorf("BreakCycles() removed %d edges, want 0", removed)
	}
}

func TestBreakCycles_ResultIsLayerable(t *testing.T) {
	edges := []dag.Edge{
		{From: 1, To: 2},
		{From: 2, To: 3},
		{From: 3, To: 4},
		{From: 4, To: 2}, // back-edge creating cycle
	}
	if _, err := dag.Layer(4, edges); err == nil {
		t.Fatal("Layer() should fail before cycle breaking")
	}

	kept, _ := BreakCycles(4, edges)

	if _, err := dag.Layer(4, kept); err != nil {
		t.Errorf("Layer() after BreakCycles() error = %v", err)
	}
	if _, removed := BreakCycles(4, kept); removed != 0 {
		t.Error("graph still has cycles after BreakCycles()")
	}
}

func TestBreakCycles_EmptyGraph(t *testing.T) {
	kept, removed := BreakCycles(0, nil)

	if removed != 0 || len(kept) != 0 {
		t.Errorf("BreakCycles() = %v, %d; want empty, 0", kept, removed)
	}
}
