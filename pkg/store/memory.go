package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps diagrams in a map.
type MemoryStore struct {
	mu       sync.RWMutex
	diagrams map[string]Diagram
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{diagrams: make(map[string]Diagram)}
}

func (s *MemoryStore) Save(_ context.Context, d *Diagram) error {
	prepare(d)
	cp := *d
	cp.Data = slices.Clone(d.Data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.diagrams[d.ID] = cp
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Diagram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.diagrams[id]
	if !ok {
		return nil, notFound(id)
	}
	d.Data = slices.Clone(d.Data)
	return &d, nil
}

func (s *MemoryStore) List(_ context.Context, limit int) ([]Diagram, error) {
	s.mu.RLock()
	out := make([]Diagram, 0, len(s.diagrams))
	for _, d := range s.diagrams {
		d.Data = nil
		out = append(out, d)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b Diagram) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out[:min(len(out), normalizeLimit(limit))], nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.diagrams[id]; !ok {
		return notFound(id)
	}
	delete(s.diagrams, id)
	return nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
