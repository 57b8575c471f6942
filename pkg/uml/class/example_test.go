package class_test

import (
	"fmt"

	"github.com/matzehuels/stackuml/pkg/dag"
	"github.com/matzehuels/stackuml/pkg/uml/class"
)

func ExampleDiagram_ComputeLayout() {
	d := class.New("shapes")
	shape := d.AddEntity("Shape", nil, []class.Member{class.Public("area()")})
	circle := d.AddEntity("Circle", []class.Member{class.Private("r")}, nil)
	square := d.AddEntity("Square", []class.Member{class.Private("side")}, nil)
	d.AddRelations(dag.Edge{From: shape, To: circle}, dag.Edge{From: shape, To: square})

	l, err := d.ComputeLayout()
	if err != nil {
		fmt.Println(err)
		return
	}
	for id := 1; id <= l.Len(); id++ {
		e, _ := d.Entity(id)
		fmt.Printf("%s: rank %d column %d\n", e.Name, l.Ranks[id], l.Columns[id])
	}
	fmt.Println("bbox:", l.BBox.W, l.BBox.H)
	// Output:
	// Shape: rank 1 column 0
	// Circle: rank 2 column 0
	// Square: rank 2 column 1
	// bbox: 240 240
}

func ExampleDiagram_ComputeLayout_cycle() {
	d := class.New("loop")
	a := d.AddEntity("A", nil, nil)
	b := d.AddEntity("B", nil, nil)
	d.AddRelations(dag.Edge{From: a, To: b}, dag.Edge{From: b, To: a})

	_, err := d.ComputeLayout()
	fmt.Println(err)
	// Output:
	// CYCLE_DETECTED: class diagram "loop": cyclic graph
}
