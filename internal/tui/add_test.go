package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/golang/mock/gomock"
	"github.com/takak2166/notion-snippets/internal/apperror"
	"github.com/takak2166/notion-snippets/internal/models"
	"github.com/takak2166/notion-snippets/internal/tui/mock_tui"
)

func newTestAddModel(t *testing.T) (AddModel, *mock_tui.MockSnippetStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock_tui.NewMockSnippetStore(ctrl)
	return NewAddModel(context.Background(), store, "javascript"), store
}

func TestAddModel_SubmitValidation(t *testing.T) {
	tests := []struct {
		name        string
		snippetName string
		code        string
		wantNameErr string
		wantCodeErr string
	}{
		{
			name:        "short name",
			snippetName: "ab",
			code:        "console.log(1)",
			wantNameErr: "Snippet name must be at least 3 characters",
		},
		{
			name:        "short code",
			snippetName: "Valid Name",
			code:        "x",
			wantCodeErr: "Code must be at least 5 characters",
		},
		{
			name:        "both empty",
			wantNameErr: "Snippet name is required",
			wantCodeErr: "Code is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no Create expectation: the store must not be called
			m, _ := newTestAddModel(t)
			m.name.SetValue(tt.snippetName)
			m.code.SetValue(tt.code)

			next, cmd := m.Update(key("ctrl+s"))
			m = next.(AddModel)

			if cmd != nil {
				t.Errorf("expected no command on invalid input")
			}
			if m.state != addEditing {
				t.Errorf("state = %d, want editing", m.state)
			}
			if m.nameErr != tt.wantNameErr {
				t.Errorf("nameErr = %q, want %q", m.nameErr, tt.wantNameErr)
			}
			if m.codeErr != tt.wantCodeErr {
				t.Errorf("codeErr = %q, want %q", m.codeErr, tt.wantCodeErr)
			}
			if !m.status.isErr {
				t.Errorf("expected an error status")
			}
		})
	}
}

func TestAddModel_SubmitCreatesSnippet(t *testing.T) {
	m, store := newTestAddModel(t)
	m.name.SetValue("Valid Name")
	m.code.SetValue("console.log(1)")

	want := models.Snippet{
		Name:     "Valid Name",
		Code:     "console.log(1)",
		Language: "javascript",
		Category: "General",
	}
	created := want
	created.ID = "page-1"
	store.EXPECT().Create(gomock.Any(), want).Return(created, nil)

	next, cmd := m.Update(key("ctrl+s"))
	m = next.(AddModel)
	if m.state != addSubmitting {
		t.Fatalf("state = %d, want submitting", m.state)
	}

	msg, ok := findMsg[snippetCreatedMsg](runCmd(cmd))
	if !ok {
		t.Fatal("submit did not produce a snippetCreatedMsg")
	}
	next, cmd = m.Update(msg)
	m = next.(AddModel)

	got, ok := m.Created()
	if !ok || got.ID != "page-1" {
		t.Errorf("Created() = %+v, %v", got, ok)
	}
	if !isQuit(cmd) {
		t.Errorf("expected the form to quit after a successful add")
	}
	if !strings.Contains(m.View(), "Snippet added successfully!") {
		t.Errorf("view does not show the success status")
	}
}

func TestAddModel_SubmitFailureKeepsForm(t *testing.T) {
	m, store := newTestAddModel(t)
	m.name.SetValue("Valid Name")
	m.code.SetValue("console.log(1)")
	m.description.SetValue("logs one")

	store.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(models.Snippet{}, apperror.Create(errors.New("validation_error")))

	next, cmd := m.Update(key("ctrl+s"))
	m = next.(AddModel)
	msg, _ := findMsg[snippetCreatedMsg](runCmd(cmd))
	next, cmd = m.Update(msg)
	m = next.(AddModel)

	if cmd != nil {
		t.Errorf("expected no command after a failed add")
	}
	if m.state != addEditing {
		t.Errorf("state = %d, want editing", m.state)
	}
	if _, ok := m.Created(); ok {
		t.Errorf("Created() reported a snippet after failure")
	}
	if m.Form().Description != "logs one" {
		t.Errorf("form values were not kept")
	}
	if !m.status.isErr || !strings.Contains(m.status.text, "failed to add snippet") {
		t.Errorf("status = %+v", m.status)
	}
}

func TestAddModel_Clipboard(t *testing.T) {
	tests := []struct {
		name      string
		clipboard fakeClipboard
		typed     string
		explicit  bool
		wantCode  string
	}{
		{
			name:      "multi-line text prefills empty code",
			clipboard: fakeClipboard{text: "const a = 1;\nconst b = 2;\n"},
			wantCode:  "const a = 1;\nconst b = 2;",
		},
		{
			name:      "single line is ignored on first display",
			clipboard: fakeClipboard{text: "hello world"},
			wantCode:  "",
		},
		{
			name:      "typed code is not replaced",
			clipboard: fakeClipboard{text: "a\nb"},
			typed:     "mine()",
			wantCode:  "mine()",
		},
		{
			name:      "explicit paste replaces code",
			clipboard: fakeClipboard{text: "hello world"},
			typed:     "mine()",
			explicit:  true,
			wantCode:  "hello world",
		},
		{
			name:      "unreadable clipboard leaves code alone",
			clipboard: fakeClipboard{readErr: errClipboard},
			typed:     "mine()",
			explicit:  true,
			wantCode:  "mine()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := tt.clipboard
			stubClipboard(t, &cb)

			m, _ := newTestAddModel(t)
			m.code.SetValue(tt.typed)

			msg, ok := findMsg[clipboardReadMsg](runCmd(readClipboard(tt.explicit)))
			if !ok {
				t.Fatal("readClipboard did not produce a clipboardReadMsg")
			}
			next, _ := m.Update(msg)
			m = next.(AddModel)

			if got := m.Form().Code; got != tt.wantCode {
				t.Errorf("code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestAddModel_LanguagePicker(t *testing.T) {
	m, _ := newTestAddModel(t)
	m.focus = fieldLanguage

	next, _ := m.Update(key("right"))
	m = next.(AddModel)
	if m.language != "typescript" {
		t.Errorf("language = %q after right, want typescript", m.language)
	}

	next, _ = m.Update(key("left"))
	m = next.(AddModel)
	next, _ = m.Update(key("left"))
	m = next.(AddModel)
	if m.language != "rust" {
		t.Errorf("language = %q after wrapping left, want rust", m.language)
	}
}

func TestAddModel_Cancel(t *testing.T) {
	m, _ := newTestAddModel(t)

	next, cmd := m.Update(key("esc"))
	m = next.(AddModel)

	if !m.Canceled() {
		t.Errorf("expected Canceled() after esc")
	}
	if !isQuit(cmd) {
		t.Errorf("expected esc to quit")
	}
}

func TestCycleLanguage(t *testing.T) {
	tests := []struct {
		current string
		step    int
		want    string
	}{
		{"javascript", 1, "typescript"},
		{"rust", 1, "javascript"},
		{"javascript", -1, "rust"},
		{"cobol", 1, "javascript"},
		{"cobol", -1, "rust"},
	}
	for _, tt := range tests {
		if got := cycleLanguage(tt.current, tt.step); got != tt.want {
			t.Errorf("cycleLanguage(%q, %d) = %q, want %q", tt.current, tt.step, got, tt.want)
		}
	}
}

func TestAddModel_ForwardsCursorBlink(t *testing.T) {
	m, _ := newTestAddModel(t)

	// the blink started by Init must reach the focused name field, which
	// answers with the next blink
	_, cmd := m.Update(textinput.Blink())
	if cmd == nil {
		t.Errorf("blink message was dropped instead of reaching the focused field")
	}
}

func TestAddModel_TypingClearsFieldError(t *testing.T) {
	m, _ := newTestAddModel(t)
	m.name.SetValue("ab")

	next, _ := m.Update(key("ctrl+s"))
	m = next.(AddModel)
	if m.nameErr == "" {
		t.Fatal("expected a name error")
	}

	next, _ = m.Update(key("c"))
	m = next.(AddModel)
	if m.nameErr != "" {
		t.Errorf("nameErr = %q after typing, want it cleared", m.nameErr)
	}
	if m.Form().Name != "abc" {
		t.Errorf("name = %q, want abc", m.Form().Name)
	}
}
