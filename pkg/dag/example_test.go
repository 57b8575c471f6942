package dag_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/stackuml/pkg/dag"
)

func ExampleLayer() {
	// app -> service -> store, app -> store
	edges := []dag.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 1, To: 3}}

	ranks, err := dag.Layer(3, edges)
	if err != nil {
		panic(err)
	}
	for id := 1; id <= 3; id++ {
		fmt.Printf("entity %d: rank %d\n", id, ranks[id])
	}
	// Output:
	// entity 1: rank 1
	// entity 2: rank 2
	// entity 3: rank 3
}

func ExampleTopologicalOrder() {
	edges := []dag.Edge{{From: 3, To: 1}, {From: 2, To: 3}}

	sorted, order, err := dag.TopologicalOrder(3, edges)
	if err != nil {
		panic(err)
	}
	fmt.Println("order:", order)
	fmt.Println("edges:", sorted)
	// Output:
	// order: [2 3 1]
	// edges: [2->3 3->1]
}

func ExampleLayer_cycle() {
	_, err := dag.Layer(3, []dag.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}})
	fmt.Println(errors.Is(err, dag.ErrCycleDetected))
	// Output:
	// true
}
