// Package search filters and ranks loaded notes against a typed query.
package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/yash-srivastava19/tbrush/internal/notes"
)

// MaxResults is how many matches are displayed.
const MaxResults = 10

// State distinguishes the two empty outcomes from a populated result.
type State int

const (
	StateMatches State = iota
	StateNoNotes       // nothing loaded yet
	StateNothingFound  // notes loaded, none matched
)

type Result struct {
	Notes  []*notes.Note // ranked, at most MaxResults
	Total  int           // matches before capping
	Loaded int           // notes in the snapshot searched
}

// More reports whether matches were cut off by MaxResults.
func (r Result) More() bool {
	return r.Total > len(r.Notes)
}

func (r Result) State() State {
	switch {
	case r.Loaded == 0:
		return StateNoNotes
	case r.Total == 0:
		return StateNothingFound
	}
	return StateMatches
}

func (r Result) Names() []string {
	return lo.Map(r.Notes, func(n *notes.Note, _ int) string {
		return n.Name
	})
}

// Terms splits query on whitespace into distinct lower-cased terms.
func Terms(query string) []string {
	return lo.Uniq(strings.Fields(strings.ToLower(query)))
}

// Matches reports whether every term occurs in the entry's name or its
// lower-cased content.
func Matches(e notes.Entry, terms []string) bool {
	name := strings.ToLower(e.Name)
	for _, term := range terms {
		if !strings.Contains(name, term) && !strings.Contains(e.Lower, term) {
			return false
		}
	}
	return true
}

func score(n *notes.Note, query string) int {
	if n.Name == query {
		return 10
	}
	return 0
}

// Search returns the notes in snap matching query, best first. Notes of
// equal score keep their snapshot order.
func Search(query string, snap []notes.Entry) Result {
	terms := Terms(query)

	matched := lo.Map(lo.Filter(snap, func(e notes.Entry, _ int) bool {
		return Matches(e, terms)
	}), func(e notes.Entry, _ int) *notes.Note {
		return e.Note
	})
	sort.SliceStable(matched, func(i, j int) bool {
		return score(matched[i], query) > score(matched[j], query)
	})

	res := Result{Total: len(matched), Loaded: len(snap)}
	if len(matched) > MaxResults {
		matched = matched[:MaxResults]
	}
	res.Notes = matched
	return res
}

// Suggest returns up to limit note names that fuzzily resemble query.
func Suggest(query string, snap []notes.Entry, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}
	names := lo.Map(snap, func(e notes.Entry, _ int) string {
		return e.Name
	})
	matches := fuzzy.Find(query, names)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return lo.Map(matches, func(m fuzzy.Match, _ int) string {
		return m.Str
	})
}
