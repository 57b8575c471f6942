package store

import (
	"context"
	stderrors "errors"
	"os"
	"testing"
	"time"

	"github.com/matzehuels/stackuml/pkg/errors"
)

// exerciseStore runs the behavior every Store must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	old := &Diagram{Kind: "class", Format: "svg", Data: []byte("<svg/>"), CreatedAt: time.Now().Add(-time.Hour)}
	if err := s.Save(ctx, old); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !ValidID(old.ID) {
		t.Errorf("Save() assigned id %q, want a UUID", old.ID)
	}
	recent := &Diagram{Kind: "sequence", Format: "json", Data: []byte("{}"), Dropped: 1}
	if err := s.Save(ctx, recent); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, old.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if string(got.Data) != "<svg/>" || got.Kind != "class" {
		t.Errorf("Get() = %+v", got)
	}

	list, err := s.List(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) < 2 || list[0].ID != recent.ID {
		t.Errorf("List() not newest first: %+v", list)
	}
	for _, d := range list {
		if d.Data != nil {
			t.Errorf("List() returned data for %s", d.ID)
		}
	}

	if err := s.Delete(ctx, old.ID); err != nil {
		t.Fatal(err)
	}
	_, err = s.Get(ctx, old.ID)
	if !errors.Is(err, errors.ErrCodeNotFound) || !stderrors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete = %v, want NOT_FOUND", err)
	}
	if err := s.Delete(ctx, old.ID); !stderrors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close(context.Background())
	exerciseStore(t, s)
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	d := &Diagram{Kind: "class", Data: []byte("abc")}
	if err := s.Save(ctx, d); err != nil {
		t.Fatal(err)
	}
	d.Data[0] = 'x'
	got, _ := s.Get(ctx, d.ID)
	if string(got.Data) != "abc" {
		t.Errorf("stored data aliased caller slice: %q", got.Data)
	}
}

func TestMemoryStoreListLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for range DefaultListLimit + 5 {
		if err := s.Save(ctx, &Diagram{Kind: "class"}); err != nil {
			t.Fatal(err)
		}
	}
	if list, _ := s.List(ctx, 0); len(list) != DefaultListLimit {
		t.Errorf("List(0) = %d items, want %d", len(list), DefaultListLimit)
	}
	if list, _ := s.List(ctx, 3); len(list) != 3 {
		t.Errorf("List(3) = %d items, want 3", len(list))
	}
}

// TestMongoStore runs against a live server named by STACKUML_TEST_MONGO_URI.
func TestMongoStore(t *testing.T) {
	uri := os.Getenv("STACKUML_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("STACKUML_TEST_MONGO_URI not set")
	}
	ctx := context.Background()
	s, err := NewMongoStore(ctx, uri, "stackuml_test")
	if err != nil {
		t.Fatalf("NewMongoStore() error: %v", err)
	}
	defer s.Close(ctx)
	_, _ = s.coll.DeleteMany(ctx, map[string]any{})
	exerciseStore(t, s)
}
