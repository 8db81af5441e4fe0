package notes

import (
	"fmt"
	"sync"
	"testing"
)

func TestIndex_Add(t *testing.T) {
	idx := NewIndex()

	if !idx.Add(NewNote("todo", "todo.txt", "Buy MILK")) {
		t.Fatal("first Add should succeed")
	}
	if idx.Add(NewNote("todo", "todo.txt", "other")) {
		t.Error("duplicate name should be rejected")
	}
	if idx.Len() != 1 {
		t.Errorf("Len: got %d", idx.Len())
	}

	snap := idx.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(snap))
	}
	if snap[0].Content != "Buy MILK" {
		t.Errorf("Content: got %q", snap[0].Content)
	}
	if snap[0].Lower != "buy milk" {
		t.Errorf("Lower: got %q", snap[0].Lower)
	}
}

func TestIndex_SnapshotInsertionOrder(t *testing.T) {
	idx := NewIndex()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		idx.Add(NewNote(name, name+".txt", ""))
	}

	snap := idx.Snapshot()
	want := []string{"zeta", "alpha", "mid"}
	if len(snap) != len(want) {
		t.Fatalf("expected %d notes, got %d", len(want), len(snap))
	}
	for i, e := range snap {
		if e.Name != want[i] {
			t.Errorf("snapshot[%d]: got %q, want %q", i, e.Name, want[i])
		}
	}
}

func TestIndex_EmptySnapshot(t *testing.T) {
	if snap := NewIndex().Snapshot(); len(snap) != 0 {
		t.Errorf("expected empty snapshot, got %d", len(snap))
	}
}

func TestIndex_ConcurrentReadersSeeBothLookups(t *testing.T) {
	idx := NewIndex()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			idx.Add(NewNote(fmt.Sprintf("note-%d", i), "", "Content"))
		}
	}()

	for i := 0; i < 200; i++ {
		for _, e := range idx.Snapshot() {
			if e.Note == nil || e.Lower != "content" {
				t.Fatalf("entry %+v missing one of its lookups", e)
			}
		}
	}
	wg.Wait()

	if idx.Len() != 500 {
		t.Errorf("Len: got %d", idx.Len())
	}
}
