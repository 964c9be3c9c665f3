package store

import (
	"context"
	"testing"
)

func TestMemoryFindOne(t *testing.T) {
	t.Parallel()

	mem := NewMemory()
	mem.Put("stats", "31:A1234", Document{"days": 120})

	doc, err := mem.FindOne(context.Background(), "stats", "31:A1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID() != "31:A1234" {
		t.Fatalf("expected the id to be carried, got %q", doc.ID())
	}

	missing, err := mem.FindOne(context.Background(), "stats", "75:A1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected a nil document for a missing key, got %+v", missing)
	}
}

func TestMemoryFindManyOmitsMissing(t *testing.T) {
	t.Parallel()

	mem := NewMemory()
	mem.Put("stats", "a", Document{"n": 1})
	mem.Put("stats", "c", Document{"n": 3})

	docs, err := mem.FindMany(context.Background(), "stats", []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
}

func TestMemoryFindAllSortsByID(t *testing.T) {
	t.Parallel()

	mem := NewMemory()
	mem.Put("boards", "b", Document{})
	mem.Put("boards", "a", Document{})

	docs, err := mem.FindAll(context.Background(), "boards")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 || docs[0].ID() != "a" || docs[1].ID() != "b" {
		t.Fatalf("expected [a b], got %+v", docs)
	}
}
