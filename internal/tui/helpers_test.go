package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// runCmd executes cmd and any batched cmds, returning the messages produced.
// Only use it on cmds that return immediately (no cursor blink or tea.Tick).
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if m, ok := msg.(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}

func isQuit(cmd tea.Cmd) bool {
	_, ok := findMsg[tea.QuitMsg](runCmd(cmd))
	return ok
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "ctrl+f":
		return tea.KeyMsg{Type: tea.KeyCtrlF}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fakeClipboard replaces the clipboard for the duration of the test
type fakeClipboard struct {
	text     string
	readErr  error
	writeErr error
}

func stubClipboard(t *testing.T, cb *fakeClipboard) {
	t.Helper()
	origRead, origWrite := clipboardReadAll, clipboardWriteAll
	clipboardReadAll = func() (string, error) {
		if cb.readErr != nil {
			return "", cb.readErr
		}
		return cb.text, nil
	}
	clipboardWriteAll = func(s string) error {
		if cb.writeErr != nil {
			return cb.writeErr
		}
		cb.text = s
		return nil
	}
	t.Cleanup(func() {
		clipboardReadAll, clipboardWriteAll = origRead, origWrite
	})
}

var errClipboard = errors.New("clipboard unavailable")
