package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestQueryStore_roundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	q := NewQueryStore(dir)

	if got := q.Load(); got != "" {
		t.Errorf("Load before save: got %q", got)
	}

	if err := q.Save("milk eggs "); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// A fresh store, as on the next run.
	if got := NewQueryStore(dir).Load(); got != "milk eggs " {
		t.Errorf("Load: got %q", got)
	}

	if err := q.Save(""); err != nil {
		t.Fatalf("Save empty: %v", err)
	}
	if got := q.Load(); got != "" {
		t.Errorf("Load after clearing: got %q", got)
	}
}

func TestQueryStore_saveFailure(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the state directory should be.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	q := NewQueryStore(filepath.Join(blocker, "state"))
	if err := q.Save("x"); err == nil {
		t.Error("expected an error saving under a file")
	}
	if got := q.Load(); got != "" {
		t.Errorf("Load: got %q", got)
	}
}

func TestQueryStore_Initial(t *testing.T) {
	q := NewQueryStore(t.TempDir())
	if err := q.Save("saved"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		args     []string
		expected string
	}{
		{nil, "saved"},
		{[]string{}, "saved"},
		{[]string{"  "}, "saved"},
		{[]string{"", ""}, "saved"},
		{[]string{"buy", "milk"}, "buy milk"},
		{[]string{"todo"}, "todo"},
	}
	for _, tt := range tests {
		if got := q.Initial(tt.args); got != tt.expected {
			t.Errorf("Initial(%q) = %q, want %q", tt.args, got, tt.expected)
		}
	}
}
