package sequence

import (
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackuml/pkg/errors"
	"github.com/matzehuels/stackuml/pkg/scene"
)

// Participant is a lifeline.
type Participant struct {
	Name string
}

// Message is an accepted message between two participants, referenced by
// their 0-based lane index.
type Message struct {
	From   int
	To     int
	Label  string
	Marker scene.Marker
}

// Diagnostic records a message that was dropped.
type Diagnostic struct {
	// Index is the position of the message among all AddMessage calls.
	Index int
	From  string
	To    string
	Label string
	Err   error
}

// Option configures a [Diagram].
type Option func(*Diagram)

// WithLogger sets the logger used to report dropped messages.
func WithLogger(l *log.Logger) Option {
	return func(d *Diagram) {
		if l != nil {
			d.logger = l
		}
	}
}

// Diagram is a sequence diagram under construction. It is not safe for
// concurrent use.
type Diagram struct {
	name         string
	participants []Participant
	index        map[string]int
	maxLen       int
	messages     []Message
	dropped      []Diagnostic
	calls        int
	markers      *scene.MarkerSet
	logger       *log.Logger
}

// New returns an empty diagram.
func New(name string, opts ...Option) *Diagram {
	d := &Diagram{
		name:    name,
		index:   make(map[string]int),
		markers: scene.NewMarkerSet(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the diagram name.
func (d *Diagram) Name() string { return d.name }

// AddParticipant appends a lifeline. Empty and repeated names are rejected.
func (d *Diagram) AddParticipant(name string) error {
	if err := errors.ValidateName("participant", name); err != nil {
		return err
	}
	if _, ok := d.index[name]; ok {
		return errors.New(errors.ErrCodeDuplicateParticipant, "participant %q already exists", name)
	}
	d.index[name] = len(d.participants)
	d.participants = append(d.participants, Participant{Name: name})
	d.maxLen = max(d.maxLen, utf8.RuneCountInString(name))
	return nil
}

// AddMessage appends a message from one participant to another. It reports
// whether the message was accepted; when either name is unknown the message
// is dropped and recorded in [Diagram.Dropped].
func (d *Diagram) AddMessage(from, to, label string, m scene.Marker) bool {
	call := d.calls
	d.calls++

	src, okFrom := d.index[from]
	dst, okTo := d.index[to]
	if !okFrom || !okTo {
		missing := from
		if okFrom {
			missing = to
		}
		err := errors.New(errors.ErrCodeUnknownParticipant, "unknown participant %q", missing)
		d.dropped = append(d.dropped, Diagnostic{Index: call, From: from, To: to, Label: label, Err: err})
		d.logger.Warn("dropped message", "index", call, "from", from, "to", to, "err", err)
		return false
	}

	d.messages = append(d.messages, Message{From: src, To: dst, Label: label, Marker: m})
	d.markers.Add(m)
	return true
}

// Participants returns the lifelines in insertion order.
func (d *Diagram) Participants() []Participant {
	return append([]Participant(nil), d.participants...)
}

// Messages returns the accepted messages in insertion order.
func (d *Diagram) Messages() []Message {
	return append([]Message(nil), d.messages...)
}

// Dropped returns a diagnostic for every dropped message.
func (d *Diagram) Dropped() []Diagnostic {
	return append([]Diagnostic(nil), d.dropped...)
}

// DroppedCount returns the number of dropped messages.
func (d *Diagram) DroppedCount() int { return len(d.dropped) }

// MaxLabelLength returns the length in runes of the longest participant
// name.
func (d *Diagram) MaxLabelLength() int { return d.maxLen }

// Markers returns the distinct markers used by accepted messages.
func (d *Diagram) Markers() []scene.Marker { return d.markers.Markers() }
