package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yash-srivastava19/tbrush/internal/notes"
	"github.com/yash-srivastava19/tbrush/internal/session"
	"github.com/yash-srivastava19/tbrush/internal/state"
)

// heartbeatInterval is how often results are refreshed while notes are
// still loading.
const heartbeatInterval = 100 * time.Millisecond

// ── Messages ──────────────────────────────────────────────────────────────────

type notesLoadedMsg struct {
	res notes.LoadResult
	err error
}

type heartbeatMsg time.Time

// ── App struct ────────────────────────────────────────────────────────────────

// App is the Bubble Tea model for the interactive finder.
type App struct {
	store   *notes.Store
	index   *notes.Index
	queries *state.QueryStore
	log     *slog.Logger

	keys    keyMap
	spinner spinner.Model

	sess *session.Session

	loading bool
	loadRes notes.LoadResult

	width int

	// Status
	statusMsg     string
	statusIsError bool

	outcome session.Outcome
}

// New builds the finder. initial seeds the query; index is filled in the
// background once the program starts.
func New(store *notes.Store, index *notes.Index, queries *state.QueryStore, initial string, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styleSubtitle

	a := &App{
		store:   store,
		index:   index,
		queries: queries,
		log:     logger,
		keys:    defaultKeyMap(),
		spinner: sp,
		sess:    session.New(initial),
		loading: true,
	}
	a.sess.Refresh(index.Snapshot())
	return a
}

// Outcome is what the user asked for when the program quit.
func (a *App) Outcome() session.Outcome {
	return a.outcome
}

func (a *App) Session() *session.Session {
	return a.sess
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.cmdLoadNotes(), a.spinner.Tick, heartbeat())
}

// ── Commands ──────────────────────────────────────────────────────────────────

func (a *App) cmdLoadNotes() tea.Cmd {
	return func() tea.Msg {
		res, err := a.store.LoadInto(a.index, func(path string, err error) {
			a.log.Warn("skipping unreadable note", "path", path, "error", err)
		})
		return notesLoadedMsg{res: res, err: err}
	}
}

func heartbeat() tea.Cmd {
	return tea.Tick(heartbeatInterval, func(t time.Time) tea.Msg {
		return heartbeatMsg(t)
	})
}

// ── Update ────────────────────────────────────────────────────────────────────

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width

	case notesLoadedMsg:
		a.loading = false
		a.loadRes = msg.res
		if msg.err != nil {
			a.log.Error("loading notes", "dir", a.store.Dir(), "error", msg.err)
			a.setStatus("error loading notes: "+msg.err.Error(), true)
		} else {
			a.log.Info("notes loaded", "dir", a.store.Dir(), "loaded", msg.res.Loaded, "skipped", msg.res.Skipped)
		}
		a.refresh()

	case heartbeatMsg:
		if !a.loading {
			return a, nil
		}
		a.refresh()
		return a, heartbeat()

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	return a, nil
}

func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	act := a.keys.action(msg)
	if act.Kind == session.ActionNone {
		return a, nil
	}

	out := a.sess.Apply(act)
	if out.Done() {
		a.outcome = out
		return a, tea.Quit
	}

	a.statusMsg = ""
	if err := a.queries.Save(a.sess.Query); err != nil {
		a.log.Warn("persisting query", "error", err)
	}
	a.refresh()
	return a, nil
}

func (a *App) refresh() {
	a.sess.Refresh(a.index.Snapshot())
}

func (a *App) setStatus(msg string, isErr bool) {
	a.statusMsg = msg
	a.statusIsError = isErr
}
