package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/takak2166/notion-snippets/internal/apperror"
	"github.com/takak2166/notion-snippets/internal/logger"
	"github.com/takak2166/notion-snippets/internal/models"
)

type addState int

const (
	addEditing addState = iota
	addSubmitting
	addDone
)

// form fields in focus order
const (
	fieldName = iota
	fieldCode
	fieldLanguage
	fieldDescription
	fieldCategory
	fieldCount
)

type clipboardReadMsg struct {
	text     string
	err      error
	explicit bool // user asked for it, as opposed to the check on first display
}

type snippetCreatedMsg struct {
	snippet models.Snippet
	err     error
}

// AddModel is the add-snippet form
type AddModel struct {
	ctx             context.Context
	store           SnippetStore
	defaultLanguage string

	name        textinput.Model
	code        textarea.Model
	description textinput.Model
	category    textinput.Model
	language    string
	focus       int

	state    addState
	nameErr  string
	codeErr  string
	status   status
	spinner  spinner.Model
	created  *models.Snippet
	canceled bool
}

// NewAddModel creates the form with the language preset to defaultLanguage
func NewAddModel(ctx context.Context, store SnippetStore, defaultLanguage string) AddModel {
	name := textinput.New()
	name.Placeholder = "e.g., React useState hook"
	name.Prompt = ""
	name.Width = 50
	name.Focus()

	code := textarea.New()
	code.Placeholder = "Paste your code here..."
	code.ShowLineNumbers = true
	code.CharLimit = 0
	code.MaxHeight = 0
	code.SetWidth(72)
	code.SetHeight(8)

	description := textinput.New()
	description.Placeholder = "What does this snippet do?"
	description.Prompt = ""
	description.Width = 50

	category := textinput.New()
	category.Placeholder = "e.g., Utils, API, Components"
	category.Prompt = ""
	category.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return AddModel{
		ctx:             ctx,
		store:           store,
		defaultLanguage: defaultLanguage,
		name:            name,
		code:            code,
		description:     description,
		category:        category,
		language:        defaultLanguage,
		spinner:         sp,
	}
}

// Init checks the clipboard for something worth pre-filling
func (m AddModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, readClipboard(false))
}

func readClipboard(explicit bool) tea.Cmd {
	return func() tea.Msg {
		text, err := clipboardReadAll()
		return clipboardReadMsg{text: text, err: err, explicit: explicit}
	}
}

// Created returns the stored snippet once the form has been submitted
func (m AddModel) Created() (models.Snippet, bool) {
	if m.created == nil {
		return models.Snippet{}, false
	}
	return *m.created, true
}

// Canceled reports whether the user left without submitting
func (m AddModel) Canceled() bool {
	return m.canceled
}

// Form returns the current field values
func (m AddModel) Form() SnippetForm {
	return SnippetForm{
		Name:        m.name.Value(),
		Code:        m.code.Value(),
		Language:    m.language,
		Description: m.description.Value(),
		Category:    m.category.Value(),
	}
}

// Update handles messages.
func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 100 {
			width = 100
		}
		if width > 20 {
			m.code.SetWidth(width)
		}
		return m, nil

	case clipboardReadMsg:
		return m.applyClipboard(msg), nil

	case snippetCreatedMsg:
		if msg.err != nil {
			logger.Error("Failed to add snippet", msg.err, map[string]interface{}{
				"name": m.name.Value(),
			})
			m.state = addEditing
			m.status = status{text: msg.err.Error(), isErr: true}
			return m, nil
		}
		m.state = addDone
		m.created = &msg.snippet
		m.status = status{text: "Snippet added successfully!"}
		return m, tea.Quit

	case spinner.TickMsg:
		if m.state != addSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.canceled = true
			return m, tea.Quit
		}
		if m.state != addEditing {
			return m, nil
		}
		return m.handleKey(msg)
	}

	// cursor blink and similar messages belong to the focused field
	next, cmd := m.updateFocused(msg)
	return next, cmd
}

func (m AddModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return m.submit()
	case "ctrl+y":
		return m, readClipboard(true)
	case "tab":
		return m.setFocus((m.focus + 1) % fieldCount)
	case "shift+tab":
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case "enter":
		if m.focus != fieldCode {
			return m.setFocus((m.focus + 1) % fieldCount)
		}
	}

	if m.focus == fieldLanguage {
		switch msg.String() {
		case "left", "h":
			m.language = cycleLanguage(m.language, -1)
		case "right", "l", " ":
			m.language = cycleLanguage(m.language, 1)
		}
		return m, nil
	}

	nameBefore, codeBefore := m.name.Value(), m.code.Value()
	next, cmd := m.updateFocused(msg)
	if next.name.Value() != nameBefore {
		next.nameErr = ""
	}
	if next.code.Value() != codeBefore {
		next.codeErr = ""
	}
	return next, cmd
}

func (m AddModel) updateFocused(msg tea.Msg) (AddModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldCode:
		m.code, cmd = m.code.Update(msg)
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	case fieldCategory:
		m.category, cmd = m.category.Update(msg)
	}
	return m, cmd
}

func (m AddModel) setFocus(field int) (tea.Model, tea.Cmd) {
	m.focus = field
	m.name.Blur()
	m.code.Blur()
	m.description.Blur()
	m.category.Blur()

	var cmd tea.Cmd
	switch field {
	case fieldName:
		cmd = m.name.Focus()
	case fieldCode:
		cmd = m.code.Focus()
	case fieldDescription:
		cmd = m.description.Focus()
	case fieldCategory:
		cmd = m.category.Focus()
	}
	return m, cmd
}

// submit validates locally and only then sends the snippet to the store
func (m AddModel) submit() (tea.Model, tea.Cmd) {
	form := m.Form()

	m.nameErr, m.codeErr = "", ""
	if errs := form.Validate(); len(errs) > 0 {
		for _, err := range errs {
			switch apperror.FieldOf(err) {
			case "name":
				m.nameErr = err.Error()
			case "code":
				m.codeErr = err.Error()
			}
		}
		m.status = status{text: "Please fix the errors above", isErr: true}
		return m, nil
	}

	snippet := form.Snippet(m.defaultLanguage)
	m.state = addSubmitting
	m.status = status{}

	ctx, store := m.ctx, m.store
	create := func() tea.Msg {
		created, err := store.Create(ctx, snippet)
		return snippetCreatedMsg{snippet: created, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, create)
}

func (m AddModel) applyClipboard(msg clipboardReadMsg) AddModel {
	if msg.err != nil {
		logger.Debug("Clipboard not readable", map[string]interface{}{"error": msg.err.Error()})
		if msg.explicit {
			m.status = status{text: "Failed to read clipboard", isErr: true}
		}
		return m
	}

	if msg.explicit {
		if strings.TrimSpace(msg.text) == "" {
			return m
		}
		m.code.SetValue(strings.TrimSpace(msg.text))
		m.codeErr = ""
		m.status = status{text: "Code pasted from clipboard!"}
		return m
	}

	// on first display only multi-line text counts, and typed code is kept
	if looksLikeCode(msg.text) && m.code.Value() == "" {
		m.code.SetValue(strings.TrimSpace(msg.text))
		m.status = status{text: "Code populated from clipboard!"}
	}
	return m
}

func cycleLanguage(current string, step int) string {
	n := len(models.Languages)
	i := models.IndexOfLanguage(current)
	if i < 0 {
		if step > 0 {
			return models.Languages[0].Code
		}
		return models.Languages[n-1].Code
	}
	return models.Languages[(i+step+n)%n].Code
}

// View renders the form.
func (m AddModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("✨ Add Snippet"))
	sb.WriteString("\n\n")

	sb.WriteString(m.label(fieldName, "📝 Snippet Name"))
	sb.WriteString(m.name.View() + "\n")
	if m.nameErr != "" {
		sb.WriteString(errorStyle.Render(m.nameErr) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.label(fieldCode, "💻 Code"))
	sb.WriteString(m.code.View() + "\n")
	if m.codeErr != "" {
		sb.WriteString(errorStyle.Render(m.codeErr) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.label(fieldLanguage, "🌐 Language"))
	sb.WriteString(languagePicker(m.language, m.focus == fieldLanguage) + "\n\n")

	sb.WriteString(m.label(fieldDescription, "📋 Description"))
	sb.WriteString(m.description.View() + "\n\n")

	sb.WriteString(m.label(fieldCategory, "🏷️ Category"))
	sb.WriteString(m.category.View() + "\n\n")

	if m.state == addSubmitting {
		sb.WriteString(m.spinner.View() + " Adding snippet...\n")
	}
	if s := m.status.View(); s != "" {
		sb.WriteString(s + "\n")
	}
	sb.WriteString(helpStyle.Render("tab/shift+tab move • ←/→ language • ctrl+y paste clipboard into code • ctrl+s add • esc cancel"))
	return sb.String()
}

func (m AddModel) label(field int, text string) string {
	if m.focus == field {
		return focusedStyle.Render("▸ "+text) + "\n"
	}
	return labelStyle.Render("  "+text) + "\n"
}

func languagePicker(code string, focused bool) string {
	text := fmt.Sprintf("%s %s", models.LanguageIcon(code), code)
	if l, ok := models.LookupLanguage(code); ok {
		text = fmt.Sprintf("%s %s", l.Icon, l.Label)
	}
	if focused {
		return focusedStyle.Render("‹ " + text + " ›")
	}
	return "  " + text
}
