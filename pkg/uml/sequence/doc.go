// Package sequence lays out and draws UML sequence diagrams.
//
// Participants are drawn as lanes of identical width, sized by the longest
// participant name. Messages are stacked top to bottom in the order they
// were added, one slot per message.
//
//	d := sequence.New("login")
//	_ = d.AddParticipant("client")
//	_ = d.AddParticipant("server")
//	d.AddMessage("client", "server", "POST /login", scene.MarkerArrow)
//
//	doc := sequence.Render(d, d.ComputeLayout(), theme.New(theme.Default))
//
// # Unknown participants
//
// A message naming an unknown participant does not fail the diagram: it is
// dropped, logged at warn level and recorded as a [Diagnostic]. Callers that
// want strict behavior check [Diagram.DroppedCount].
//
// Participant names must be unique; [Diagram.AddParticipant] rejects a
// repeated name so message endpoints always resolve to exactly one lane.
package sequence
