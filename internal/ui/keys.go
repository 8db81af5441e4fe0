package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yash-srivastava19/tbrush/internal/session"
)

type keyMap struct {
	Abort     key.Binding
	EraseWord key.Binding
	Backspace key.Binding
	Submit    key.Binding
	Up        key.Binding
	Down      key.Binding
	NewNote   key.Binding
	OpenAll   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Abort:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		EraseWord: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace"), key.WithHelp("ctrl+w", "erase word")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/create")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "select")),
		Down:      key.NewBinding(key.WithKeys("down")),
		NewNote:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new note")),
		OpenAll:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "open all")),
	}
}

// action classifies one keystroke. Keys with no meaning here, including
// unrecognised escape sequences, map to ActionNone.
func (k keyMap) action(msg tea.KeyMsg) session.Action {
	switch {
	case key.Matches(msg, k.Abort):
		return session.Action{Kind: session.ActionAbort}
	case key.Matches(msg, k.EraseWord):
		return session.Action{Kind: session.ActionEraseWord}
	case key.Matches(msg, k.Backspace):
		return session.Action{Kind: session.ActionBackspace}
	case key.Matches(msg, k.Submit):
		return session.Action{Kind: session.ActionSubmit}
	case key.Matches(msg, k.Up):
		return session.Action{Kind: session.ActionMoveUp}
	case key.Matches(msg, k.Down):
		return session.Action{Kind: session.ActionMoveDown}
	case key.Matches(msg, k.NewNote):
		return session.Action{Kind: session.ActionNewNote}
	case key.Matches(msg, k.OpenAll):
		return session.Action{Kind: session.ActionOpenAll}
	}

	if msg.Alt {
		return session.Action{}
	}
	switch msg.Type {
	case tea.KeyRunes:
		return session.Action{Kind: session.ActionInsert, Runes: msg.Runes}
	case tea.KeySpace:
		return session.Action{Kind: session.ActionInsert, Runes: []rune{' '}}
	}
	return session.Action{}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Up, k.Submit, k.NewNote, k.OpenAll, k.EraseWord, k.Abort}
}
