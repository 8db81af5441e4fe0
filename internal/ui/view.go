package ui

import (
	"fmt"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/yash-srivastava19/tbrush/internal/search"
)

const (
	previewLines   = 10
	maxSuggestions = 3
	defaultWidth   = 40
)

// ── Views ─────────────────────────────────────────────────────────────────────

func (a *App) View() string {
	if a.outcome.Done() {
		return ""
	}

	var b strings.Builder
	w := a.width
	if w <= 0 {
		w = defaultWidth
	}
	divider := styleDivider.Render(strings.Repeat("─", w)) + "\n"

	b.WriteString(styleTitle.Render("tbrush") + styleDivider.Render("  —  ") + a.viewLoadStatus() + "\n")
	b.WriteString(divider)
	b.WriteString(styleSubtitle.Render("query: ") + styleQuery.Render("["+a.sess.Query+"]") + "\n")
	b.WriteString(divider)
	b.WriteString(a.viewMatches(w))
	b.WriteString(divider)

	if a.statusMsg != "" {
		sty := styleSubtitle
		if a.statusIsError {
			sty = styleError
		}
		b.WriteString(sty.Render("  " + a.statusMsg))
	} else {
		b.WriteString(styleHint.Render("  " + a.viewHelp()))
	}
	return b.String()
}

func (a *App) viewLoadStatus() string {
	n := a.index.Len()
	if a.loading {
		return a.spinner.View() + styleSubtitle.Render(fmt.Sprintf(" loading… %d notes", n))
	}
	s := fmt.Sprintf("%d notes", n)
	if a.loadRes.Skipped > 0 {
		s += fmt.Sprintf(" (%d unreadable)", a.loadRes.Skipped)
	}
	return styleSubtitle.Render(s)
}

func (a *App) viewMatches(w int) string {
	var b strings.Builder
	res := a.sess.Result

	switch res.State() {
	case search.StateNoNotes:
		msg := "~ no notes loaded ~"
		if a.loading {
			msg = "~ loading notes ~"
		}
		b.WriteString(styleSubtitle.Render(msg) + "\n")
		return b.String()

	case search.StateNothingFound:
		b.WriteString(styleSubtitle.Render("~ nothing found ~") + "\n")
		if sugg := search.Suggest(a.sess.Query, a.index.Snapshot(), maxSuggestions); len(sugg) > 0 {
			b.WriteString(styleHint.Render("  did you mean: "+strings.Join(sugg, ", ")) + "\n")
		}
		return b.String()
	}

	sel, hasSel := a.sess.Selection.Index()
	for i, n := range res.Notes {
		name := truncate(n.Name, w-2)
		if hasSel && i == sel {
			b.WriteString(styleSelectedItem.Render("> "+name) + "\n")
			for _, line := range preview(n.Content, previewLines) {
				b.WriteString(stylePreview.Render(truncate(line, w)) + "\n")
			}
			continue
		}
		b.WriteString("  " + styleNormalItem.Render(name) + "\n")
	}
	if res.More() {
		b.WriteString(styleSubtitle.Render("  ...") + "\n")
	}
	return b.String()
}

func (a *App) viewHelp() string {
	var parts []string
	for _, k := range a.keys.help() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// preview returns the first maxLines lines of content, indented, with a
// trailing "..." line when there were more.
func preview(content string, maxLines int) []string {
	text := strings.TrimSpace(stripansi.Strip(content))
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	more := len(lines) > maxLines
	if more {
		lines = lines[:maxLines]
	}
	out := make([]string, 0, len(lines)+1)
	for _, l := range lines {
		out = append(out, "    "+l)
	}
	if more {
		out = append(out, "    ...")
	}
	return out
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 {
		maxLen = 4
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}
