// Package store persists rendered diagrams for the HTTP service.
//
// Each render request that asks to be saved produces a [Diagram] record:
// the artifact bytes plus enough metadata to serve it again by id. Ids are
// random UUIDs.
//
// Implementations:
//   - [MemoryStore]: process-local, for tests and single-instance use
//   - [MongoStore]: a MongoDB collection, for shared deployments
package store

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/stackuml/pkg/errors"
)

// ErrNotFound is wrapped by Get and Delete for an unknown id.
var ErrNotFound = stderrors.New("diagram not found")

// DefaultListLimit bounds List when the caller passes no limit.
const DefaultListLimit = 50

// Diagram is a stored rendering.
type Diagram struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name,omitempty" bson:"name,omitempty"`
	Kind        string    `json:"kind" bson:"kind"`
	Format      string    `json:"format" bson:"format"`
	ContentType string    `json:"content_type" bson:"content_type"`
	Hash        string    `json:"hash" bson:"hash"`
	Dropped     int       `json:"dropped,omitempty" bson:"dropped,omitempty"`
	Data        []byte    `json:"-" bson:"data"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Store saves and loads diagrams. Implementations are safe for concurrent
// use.
type Store interface {
	// Save assigns an id and creation time when unset and stores d.
	Save(ctx context.Context, d *Diagram) error
	// Get returns the diagram with the given id.
	Get(ctx context.Context, id string) (*Diagram, error)
	// List returns up to limit diagrams, newest first, without their data.
	List(ctx context.Context, limit int) ([]Diagram, error)
	// Delete removes a diagram.
	Delete(ctx context.Context, id string) error
	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NewID returns a fresh diagram id.
func NewID() string { return uuid.NewString() }

// ValidID reports whether id has the shape produced by [NewID].
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func prepare(d *Diagram) {
	if d.ID == "" {
		d.ID = NewID()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
}

func notFound(id string) error {
	return errors.Wrap(errors.ErrCodeNotFound, ErrNotFound, "diagram %q", id)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
