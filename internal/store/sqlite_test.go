package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()

	st, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening sqlite store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestSQLite(t)

	if err := st.Put(ctx, "stats", "31:A1234", Document{"days": 120.0}); err != nil {
		t.Fatalf("putting document: %v", err)
	}

	doc, err := st.FindOne(ctx, "stats", "31:A1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID() != "31:A1234" {
		t.Fatalf("expected the id to be carried, got %q", doc.ID())
	}
	if doc["days"] != 120.0 {
		t.Fatalf("unexpected body: %+v", doc)
	}

	missing, err := st.FindOne(ctx, "stats", "75:A1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected a nil document for a missing key, got %+v", missing)
	}
}

func TestSQLiteFindManyAndAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestSQLite(t)

	for _, id := range []string{"b", "a", "c"} {
		if err := st.Put(ctx, "boards", id, Document{"title": id}); err != nil {
			t.Fatalf("putting document %q: %v", id, err)
		}
	}

	docs, err := st.FindMany(ctx, "boards", []string{"a", "missing", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}

	all, err := st.FindAll(ctx, "boards")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 || all[0].ID() != "a" || all[2].ID() != "c" {
		t.Fatalf("expected [a b c], got %+v", all)
	}
}
