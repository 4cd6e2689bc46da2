// Package tui holds the terminal screens of the snippet manager: adding a
// snippet, searching and reusing snippets, and the setup helper. Each screen is
// a bubbletea model; remote work runs as tea.Cmds that report back with a
// message, so a screen never blocks its own event loop.
package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Clipboard access, swapped out in tests
var (
	clipboardReadAll  = clipboard.ReadAll
	clipboardWriteAll = clipboard.WriteAll
)

var (
	accent = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#6c7a89")
	danger = lipgloss.Color("#e53935")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	focusedStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	helpStyle    = lipgloss.NewStyle().Foreground(muted)
	errorStyle   = lipgloss.NewStyle().Foreground(danger)
	successStyle = lipgloss.NewStyle().Foreground(accent)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)
)

// status is the one-line notification shown under a screen
type status struct {
	text  string
	isErr bool
}

func (s status) View() string {
	if s.text == "" {
		return ""
	}
	if s.isErr {
		return errorStyle.Render("✗ " + s.text)
	}
	return successStyle.Render("✓ " + s.text)
}

// markdownWidth is the wrap width of rendered detail and guide pages
const markdownWidth = 80

// newMarkdownRenderer must be called before the program starts: picking the
// auto style queries the terminal.
func newMarkdownRenderer() *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return nil
	}
	return r
}

func renderMarkdown(r *glamour.TermRenderer, md string) string {
	if r == nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
