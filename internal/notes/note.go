package notes

import (
	"strings"
	"sync"
)

type Note struct {
	Name     string // filename without extension
	Content  string // full file content
	Filename string // full path
}

func NewNote(name, filename, content string) *Note {
	return &Note{
		Name:     name,
		Content:  content,
		Filename: filename,
	}
}

// Entry is a note paired with its lower-cased content, read from both
// lookups of an Index under one lock.
type Entry struct {
	*Note
	Lower string
}

// Index holds every loaded note keyed by name, plus a parallel lookup of
// lower-cased content that matching reads. A single background loader
// appends to it while the UI reads; both lookups for a name are published
// under the same lock.
type Index struct {
	mu    sync.RWMutex
	order []string
	notes map[string]*Note
	lower map[string]string
}

func NewIndex() *Index {
	return &Index{
		notes: make(map[string]*Note),
		lower: make(map[string]string),
	}
}

// Add publishes n. Names are unique: a second note with the same name is
// dropped and Add reports false.
func (idx *Index) Add(n *Note) bool {
	lower := strings.ToLower(n.Content)

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, ok := idx.notes[n.Name]; ok {
		return false
	}
	idx.notes[n.Name] = n
	idx.lower[n.Name] = lower
	idx.order = append(idx.order, n.Name)
	return true
}

func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.order)
}

// Snapshot returns the entries known right now, in insertion order.
// Notes are immutable once added, so the returned slice is safe to use
// while loading continues.
func (idx *Index) Snapshot() []Entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]Entry, len(idx.order))
	for i, name := range idx.order {
		out[i] = Entry{Note: idx.notes[name], Lower: idx.lower[name]}
	}
	return out
}
