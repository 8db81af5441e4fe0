// Package session holds the state of one interactive search: the query being
// typed, the highlighted match and the latest result.
package session

import (
	"strings"

	"github.com/yash-srivastava19/tbrush/internal/notes"
	"github.com/yash-srivastava19/tbrush/internal/search"
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionAbort
	ActionEraseWord
	ActionBackspace
	ActionSubmit
	ActionMoveUp
	ActionMoveDown
	ActionNewNote
	ActionOpenAll
	ActionInsert
)

// Action is one classified keystroke.
type Action struct {
	Kind  ActionKind
	Runes []rune // for ActionInsert
}

type OutcomeKind int

const (
	Continue OutcomeKind = iota
	Abort
	Open   // open Names
	Create // create (or reuse) the note called Names[0], then open it
)

// Outcome tells the caller what to do after an action. Anything other than
// Continue ends the session.
type Outcome struct {
	Kind  OutcomeKind
	Names []string
}

func (o Outcome) Done() bool {
	return o.Kind != Continue
}

type Session struct {
	Query string

	// firstEdit is set while the query is still the seeded one. The first
	// typed character replaces it instead of appending.
	firstEdit bool

	Selection Selection
	Result    search.Result
}

// New starts a session seeded with query.
func New(query string) *Session {
	return &Session{Query: query, firstEdit: true}
}

// FirstEdit reports whether the next typed character replaces the query.
func (s *Session) FirstEdit() bool {
	return s.firstEdit
}

// Refresh re-runs the search over snap and revalidates the selection.
func (s *Session) Refresh(snap []notes.Entry) {
	s.Result = search.Search(s.Query, snap)
	s.Selection = s.Selection.Sync(len(s.Result.Notes))
}

// Selected returns the name of the highlighted note.
func (s *Session) Selected() (string, bool) {
	i, ok := s.Selection.Index()
	if !ok || i >= len(s.Result.Notes) {
		return "", false
	}
	return s.Result.Notes[i].Name, true
}

// Apply mutates the session for a and reports what the caller should do
// next. The caller refreshes the result after a Continue.
func (s *Session) Apply(a Action) Outcome {
	switch a.Kind {
	case ActionAbort:
		return Outcome{Kind: Abort}

	case ActionNewNote:
		return s.create()

	case ActionSubmit:
		if name, ok := s.Selected(); ok {
			return Outcome{Kind: Open, Names: []string{name}}
		}
		return s.create()

	case ActionOpenAll:
		if len(s.Result.Notes) == 0 {
			return s.create()
		}
		return Outcome{Kind: Open, Names: s.Result.Names()}

	case ActionMoveUp:
		s.Selection = s.Selection.Move(-1, len(s.Result.Notes))

	case ActionMoveDown:
		s.Selection = s.Selection.Move(1, len(s.Result.Notes))

	case ActionBackspace:
		s.firstEdit = false
		if r := []rune(s.Query); len(r) > 0 {
			s.Query = string(r[:len(r)-1])
		}

	case ActionEraseWord:
		s.firstEdit = false
		s.Query = EraseWord(s.Query)

	case ActionInsert:
		if len(a.Runes) == 0 {
			break
		}
		if s.firstEdit {
			s.Query = ""
			s.firstEdit = false
		}
		s.Query += string(a.Runes)
	}

	return Outcome{Kind: Continue}
}

func (s *Session) create() Outcome {
	return Outcome{Kind: Create, Names: []string{s.Query}}
}

// EraseWord drops the last space-separated word of q, keeping a trailing
// space after what remains. A single word erases to "".
func EraseWord(q string) string {
	trimmed := strings.TrimSpace(q)
	i := strings.LastIndex(trimmed, " ")
	if i < 0 {
		return ""
	}
	return trimmed[:i] + " "
}
