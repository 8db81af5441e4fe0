package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/yash-srivastava19/tbrush/internal/config"
	"github.com/yash-srivastava19/tbrush/internal/launch"
	"github.com/yash-srivastava19/tbrush/internal/notes"
	"github.com/yash-srivastava19/tbrush/internal/search"
	"github.com/yash-srivastava19/tbrush/internal/session"
	"github.com/yash-srivastava19/tbrush/internal/state"
	"github.com/yash-srivastava19/tbrush/internal/ui"
)

// exitInterrupted is the conventional status for a ctrl+c exit.
const exitInterrupted = 130

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tbrush [query...]",
		Short: "Find, open and create plain-text notes as you type",
		Long: heredoc.Doc(`
			tbrush searches a directory of plain-text notes on every keystroke.

			Every word of the query must appear in a note's name or content.
			With no query words the last query typed is restored.

			Keys:
			  ↑/↓     select a match
			  enter   open the selected note, or create one named after the query
			  ctrl+n  create a note named after the query
			  ctrl+a  open every listed match
			  ctrl+w  erase the last word
			  ctrl+c  quit
		`),
		Example: heredoc.Doc(`
			tbrush
			tbrush milk eggs
			tbrush --dir ~/notes todo
			tbrush --search milk
			tbrush --new shopping list
			tbrush --list
		`),
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         run,
	}
	root.PersistentFlags().String("dir", "", "notes directory (overrides config)")

	flags := root.Flags()
	flags.Bool("search", false, "print notes matching the query words and exit")
	flags.Bool("new", false, "create a note named after the query words and open it")
	flags.Bool("list", false, "print every note name and exit")
	root.MarkFlagsMutuallyExclusive("search", "new", "list")
	return root
}

type app struct {
	store   *notes.Store
	queries *state.QueryStore
	opener  launch.Opener
	log     *slog.Logger
	close   func()

	copy   func(string) error
	out    io.Writer
	errOut io.Writer
}

// setup loads configuration and checks the notes directory, exiting on
// failure.
func setup(cmd *cobra.Command) *app {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		die("%v", err)
	}

	logger, closeLog := openLog(cfg.LogFile)
	store := notes.NewStore(cfg.NotesDir, cfg.Extension)
	if err := store.Check(); err != nil {
		logger.Error("startup", "error", err)
		closeLog()
		if errors.Is(err, notes.ErrNotesDirMissing) {
			die("%v (create it or set notes_dir in the config)", err)
		}
		die("%v", err)
	}

	return &app{
		store:   store,
		queries: state.NewQueryStore(cfg.StateDir),
		opener:  launch.Opener{Command: cfg.Opener},
		log:     logger,
		close:   closeLog,
		copy:    launch.Copy,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// run dispatches on the mode flags. Positional words are always query
// words, never a mode.
func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	searchMode, _ := flags.GetBool("search")
	newMode, _ := flags.GetBool("new")
	listMode, _ := flags.GetBool("list")

	a := setup(cmd)
	defer a.close()

	switch {
	case listMode:
		return a.list()
	case searchMode:
		return a.search(strings.Join(args, " "))
	case newMode:
		a.create(strings.Join(args, " "))
		return nil
	}
	return a.find(args)
}

func (a *app) find(args []string) error {
	finder := ui.New(a.store, notes.NewIndex(), a.queries, a.queries.Initial(args), a.log)
	p := tea.NewProgram(finder, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	out := finder.Outcome()
	if out.Kind == session.Abort {
		a.close()
		os.Exit(exitInterrupted)
	}
	a.finish(out)
	return nil
}

// finish carries out what the finder decided once the terminal is back.
func (a *app) finish(out session.Outcome) {
	switch out.Kind {
	case session.Open:
		for _, name := range out.Names {
			a.open(a.store.Path(name))
		}
	case session.Create:
		a.create(out.Names[0])
	}
}

func (a *app) search(query string) error {
	idx, err := a.loadAll()
	if err != nil {
		return err
	}

	res := search.Search(query, idx.Snapshot())
	switch res.State() {
	case search.StateNoNotes:
		fmt.Fprintln(a.errOut, "~ no notes loaded ~")
		a.close()
		os.Exit(1)
	case search.StateNothingFound:
		fmt.Fprintln(a.errOut, "~ nothing found ~")
		a.close()
		os.Exit(1)
	}
	for _, name := range res.Names() {
		fmt.Fprintln(a.out, name)
	}
	if res.More() {
		fmt.Fprintln(a.out, "  ...")
	}
	return nil
}

func (a *app) list() error {
	idx, err := a.loadAll()
	if err != nil {
		return err
	}
	for _, e := range idx.Snapshot() {
		fmt.Fprintln(a.out, e.Name)
	}
	return nil
}

func (a *app) loadAll() (*notes.Index, error) {
	idx := notes.NewIndex()
	res, err := a.store.LoadInto(idx, func(path string, err error) {
		a.log.Warn("skipping unreadable note", "path", path, "error", err)
	})
	if err != nil {
		return nil, err
	}
	a.log.Info("notes loaded", "dir", a.store.Dir(), "loaded", res.Loaded, "skipped", res.Skipped)
	return idx, nil
}

// create makes the note called name if needed, opens it and copies name to
// the clipboard. Failures are reported, not fatal.
func (a *app) create(name string) {
	path, created, err := a.store.Create(name)
	if err != nil {
		a.report("create", err)
		return
	}
	if created {
		a.log.Info("note created", "path", path)
	}
	a.open(path)
	if err := a.copy(name); err != nil {
		a.report("clipboard", err)
	}
}

func (a *app) open(path string) {
	fmt.Fprintf(a.out, "opening:\n%q\n", path)
	if err := a.opener.Open(path); err != nil {
		a.report("open", err)
	}
}

func (a *app) report(action string, err error) {
	a.log.Error(action, "error", err)
	fmt.Fprintf(a.errOut, "tbrush: %s: %v\n", action, err)
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "tbrush: "+format+"\n", args...)
	os.Exit(1)
}
