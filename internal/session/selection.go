package session

import "github.com/yash-srivastava19/tbrush/internal/search"

// Selection is the highlighted row of the displayed match list, if any.
// The zero value has nothing selected.
type Selection struct {
	index int
	ok    bool
}

func (s Selection) Index() (int, bool) {
	return s.index, s.ok
}

// Move steps the highlight by d within a window of shown rows, wrapping at
// either end. The first move from no selection lands on row 0.
func (s Selection) Move(d, shown int) Selection {
	shown = window(shown)
	if shown == 0 {
		return Selection{}
	}
	if !s.ok {
		return Selection{index: 0, ok: true}
	}
	i := (s.index + d) % shown
	if i < 0 {
		i += shown
	}
	return Selection{index: i, ok: true}
}

// Sync revalidates the selection after the list changed size. An empty list
// clears it; a shorter list pulls it back onto the last row.
func (s Selection) Sync(shown int) Selection {
	shown = window(shown)
	if shown == 0 || !s.ok {
		return Selection{}
	}
	if s.index >= shown {
		return Selection{index: shown - 1, ok: true}
	}
	return s
}

func window(n int) int {
	return max(0, min(n, search.MaxResults))
}
