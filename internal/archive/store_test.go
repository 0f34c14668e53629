// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"testing"
	"time"

	"github.com/pdiddy/prosetex/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.ArchiveConfig{ArchiveDir: t.TempDir(), MaxResults: 20})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func doc(id, title string) types.Document {
	return types.Document{
		ID:            id,
		Title:         title,
		TexPath:       "/out/" + id + ".tex",
		CompileStatus: types.CompileNone,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestRecordAndList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	d1 := doc("zk-notes", "Zero Knowledge Notes")
	d1.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := doc("enc-survey", "Encryption Survey")
	d2.CreatedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	if err := s.Record(ctx, d1, "the prover sends α"); err != nil {
		t.Fatal(err)
	}
	if err := s.Record(ctx, d2, "symmetric ciphers"); err != nil {
		t.Fatal(err)
	}

	docs, err := s.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("List() returned %d documents, want 2", len(docs))
	}
	// Newest first.
	if docs[0].ID != "enc-survey" || docs[1].ID != "zk-notes" {
		t.Errorf("List() order = %s, %s", docs[0].ID, docs[1].ID)
	}
	if docs[0].CompileStatus != types.CompileNone {
		t.Errorf("CompileStatus = %q", docs[0].CompileStatus)
	}
}

func TestRecordReplacesExistingID(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.Record(ctx, doc("notes", "First Title"), "alpha body"); err != nil {
		t.Fatal(err)
	}
	updated := doc("notes", "Second Title")
	updated.CompileStatus = types.CompileDone
	updated.PDFPath = "/out/notes.pdf"
	if err := s.Record(ctx, updated, "beta body"); err != nil {
		t.Fatal(err)
	}

	docs, err := s.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("re-recording should replace, got %d rows", len(docs))
	}
	if docs[0].Title != "Second Title" || docs[0].CompileStatus != types.CompileDone {
		t.Errorf("row not replaced: %+v", docs[0])
	}

	// The FTS index must follow the replacement.
	if hits, err := s.Search(ctx, "alpha", 0); err != nil || len(hits) != 0 {
		t.Errorf("stale FTS entry: hits=%v err=%v", hits, err)
	}
	hits, err := s.Search(ctx, "beta", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].ID != "notes" {
		t.Errorf("Search(beta) = %v", hits)
	}
}

func TestSearchMatchesTitleAndBody(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.Record(ctx, doc("a", "Lattice Cryptography"), "short vectors"); err != nil {
		t.Fatal(err)
	}
	if err := s.Record(ctx, doc("b", "Unrelated"), "lattice reduction in practice"); err != nil {
		t.Fatal(err)
	}

	hits, err := s.Search(ctx, "lattice", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 2 {
		t.Errorf("Search(lattice) returned %d hits, want 2", len(hits))
	}

	hits, err = s.Search(ctx, "vectors", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].ID != "a" {
		t.Errorf("Search(vectors) = %v", hits)
	}
}

func TestListLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, id := range []string{"one", "two", "three"} {
		if err := s.Record(ctx, doc(id, id), ""); err != nil {
			t.Fatal(err)
		}
	}
	docs, err := s.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Errorf("List(2) returned %d documents", len(docs))
	}
}
