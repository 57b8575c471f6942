package sequence_test

import (
	"fmt"

	"github.com/matzehuels/stackuml/pkg/scene"
	"github.com/matzehuels/stackuml/pkg/uml/sequence"
)

func ExampleDiagram_ComputeLayout() {
	d := sequence.New("ping")
	_ = d.AddParticipant("client")
	_ = d.AddParticipant("server")
	d.AddMessage("client", "server", "ping", scene.MarkerArrow)
	d.AddMessage("server", "client", "pong", scene.MarkerArrow)

	l := d.ComputeLayout()
	fmt.Println("lane width:", l.LaneWidth)
	fmt.Println("slots:", l.Slots)
	fmt.Println("bbox:", l.BBox.W, l.BBox.H)
	// Output:
	// lane width: 64
	// slots: [50 80]
	// bbox: 168 180
}

func ExampleDiagram_Dropped() {
	d := sequence.New("typo")
	_ = d.AddParticipant("alice")
	_ = d.AddParticipant("bob")
	d.AddMessage("alice", "bbo", "hello", scene.MarkerArrow)
	d.AddMessage("alice", "bob", "hello", scene.MarkerArrow)

	for _, diag := range d.Dropped() {
		fmt.Printf("message %d: %v\n", diag.Index, diag.Err)
	}
	fmt.Println("accepted:", len(d.Messages()))
	// Output:
	// message 0: UNKNOWN_PARTICIPANT: unknown participant "bbo"
	// accepted: 1
}
