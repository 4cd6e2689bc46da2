package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/takak2166/notion-snippets/internal/logger"
	"github.com/takak2166/notion-snippets/internal/models"
)

type searchState int

const (
	searchLoading searchState = iota
	searchList
	searchDetail
	searchPasting
)

type snippetsLoadedMsg struct {
	snippets []models.Snippet
	err      error
}

type usageUpdatedMsg struct {
	id  string
	err error
}

// snippetItem adapts models.Snippet to list.Item
type snippetItem struct {
	snippet models.Snippet
}

func (i snippetItem) Title() string {
	return i.snippet.Name
}

func (i snippetItem) Description() string {
	desc := i.snippet.Description
	if desc == "" {
		desc = "No description"
	}
	return fmt.Sprintf("%s  ·  🏷 %s  ·  %s %s  ·  👁 %d",
		desc, i.snippet.Category, models.LanguageIcon(i.snippet.Language), i.snippet.Language, i.snippet.UsageCount)
}

func (i snippetItem) FilterValue() string {
	return i.snippet.Name + " " + i.snippet.Description + " " + i.snippet.Language
}

// SearchModel lists the snippets, most used first, with a language filter and
// a detail page. Copy and paste bump the usage count.
type SearchModel struct {
	ctx   context.Context
	store SnippetStore

	snippets []models.Snippet // server order, never re-sorted
	filter   string           // language code, "" for all

	state    searchState
	list     list.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	detailID string
	status   status
	pasted   string
	pasteID  string // snippet whose usage update the paste exit waits for
}

// NewSearchModel creates the search screen. Snippets are fetched by Init.
func NewSearchModel(ctx context.Context, store SnippetStore) SearchModel {
	l := list.New(nil, list.NewDefaultDelegate(), 80, 20)
	l.Title = "Snippets"
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.SetStatusBarItemName("snippet", "snippets")

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return SearchModel{
		ctx:      ctx,
		store:    store,
		state:    searchLoading,
		list:     l,
		viewport: viewport.New(80, 20),
		spinner:  sp,
		renderer: newMarkdownRenderer(),
	}
}

// Init starts the one fetch the screen makes
func (m SearchModel) Init() tea.Cmd {
	ctx, store := m.ctx, m.store
	fetch := func() tea.Msg {
		snippets, err := store.FetchAll(ctx)
		return snippetsLoadedMsg{snippets: snippets, err: err}
	}
	return tea.Batch(m.spinner.Tick, fetch)
}

// Pasted returns the code chosen with the paste action, if any
func (m SearchModel) Pasted() (string, bool) {
	return m.pasted, m.pasted != ""
}

// Snippets returns the snippets as currently known locally
func (m SearchModel) Snippets() []models.Snippet {
	return m.snippets
}

// Visible returns the snippets that pass the language filter, in server order
func (m SearchModel) Visible() []models.Snippet {
	return filterByLanguage(m.snippets, m.filter)
}

func filterByLanguage(snippets []models.Snippet, language string) []models.Snippet {
	if language == "" {
		return snippets
	}
	var out []models.Snippet
	for _, s := range snippets {
		if s.Language == language {
			out = append(out, s)
		}
	}
	return out
}

// SetLanguageFilter shows only snippets of one language; "" shows all.
// Filtering works on the fetched snippets and never fetches again.
func (m SearchModel) SetLanguageFilter(language string) (SearchModel, tea.Cmd) {
	m.filter = language
	return m, m.refreshItems()
}

func (m *SearchModel) refreshItems() tea.Cmd {
	visible := m.Visible()
	items := make([]list.Item, len(visible))
	for i, s := range visible {
		items[i] = snippetItem{snippet: s}
	}
	m.list.Title = "Snippets · " + filterLabel(m.filter)
	return m.list.SetItems(items)
}

func filterLabel(language string) string {
	if language == "" {
		return "🌍 All Languages"
	}
	if l, ok := models.LookupLanguage(language); ok {
		return l.Icon + " " + l.Label
	}
	return models.FallbackIcon + " " + language
}

// nextFilter cycles "" -> each catalogue language -> ""
func nextFilter(current string) string {
	if current == "" {
		return models.Languages[0].Code
	}
	i := models.IndexOfLanguage(current)
	if i < 0 || i == len(models.Languages)-1 {
		return ""
	}
	return models.Languages[i+1].Code
}

// Update handles messages.
func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 3
		return m, nil

	case snippetsLoadedMsg:
		m.state = searchList
		if msg.err != nil {
			logger.Error("Failed to fetch snippets", msg.err)
			m.status = status{text: msg.err.Error(), isErr: true}
			return m, nil
		}
		m.snippets = msg.snippets
		return m, m.refreshItems()

	case usageUpdatedMsg:
		if msg.err != nil {
			// the local count stays incremented until the next fetch
			logger.Warn("Usage count not saved", msg.err, map[string]interface{}{
				"snippet_id": msg.id,
			})
			m.status = status{text: "Failed to update usage count", isErr: true}
		}
		if m.state == searchPasting && msg.id == m.pasteID {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != searchLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.pasted, m.pasteID = "", ""
			return m, tea.Quit
		}
		switch m.state {
		case searchList:
			return m.updateList(msg)
		case searchDetail:
			return m.updateDetail(msg)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m SearchModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	selected, ok := m.selected()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.list.FilterState() == list.FilterApplied {
			m.list.ResetFilter()
			return m, nil
		}
		return m, tea.Quit
	case "ctrl+f", "L":
		next, cmd := m.SetLanguageFilter(nextFilter(m.filter))
		return next, cmd
	case "enter", "c":
		if ok {
			next, cmd := m.Copy(selected.ID)
			return next, cmd
		}
		return m, nil
	case "v":
		if ok {
			next, cmd := m.Paste(selected.ID)
			return next, cmd
		}
		return m, nil
	case "p", "right":
		if ok {
			return m.ShowDetail(selected.ID), nil
		}
		return m, nil
	case "u":
		if ok {
			return m.copyURL(selected), nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m SearchModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "left", "b":
		m.state = searchList
		m.detailID = ""
		return m, nil
	case "q":
		return m, tea.Quit
	case "c", "enter":
		next, cmd := m.Copy(m.detailID)
		return next, cmd
	case "v":
		next, cmd := m.Paste(m.detailID)
		return next, cmd
	case "u":
		if s, ok := m.find(m.detailID); ok {
			return m.copyURL(s), nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m SearchModel) selected() (models.Snippet, bool) {
	item, ok := m.list.SelectedItem().(snippetItem)
	if !ok {
		return models.Snippet{}, false
	}
	// the list holds copies; the slice has the current usage count
	return m.find(item.snippet.ID)
}

func (m SearchModel) find(id string) (models.Snippet, bool) {
	for _, s := range m.snippets {
		if s.ID == id {
			return s, true
		}
	}
	return models.Snippet{}, false
}

// ShowDetail switches to the preview page of one snippet
func (m SearchModel) ShowDetail(id string) SearchModel {
	s, ok := m.find(id)
	if !ok {
		return m
	}
	m.state = searchDetail
	m.detailID = id
	m.viewport.SetContent(renderMarkdown(m.renderer, detailMarkdown(s)))
	m.viewport.GotoTop()
	return m
}

// Copy puts the snippet's code on the clipboard and counts the use
func (m SearchModel) Copy(id string) (SearchModel, tea.Cmd) {
	s, ok := m.find(id)
	if !ok {
		return m, nil
	}
	if err := clipboardWriteAll(s.Code); err != nil {
		logger.Error("Failed to copy snippet", err, map[string]interface{}{"snippet_id": id})
		m.status = status{text: "Failed to copy to clipboard", isErr: true}
		return m, nil
	}
	m.status = status{text: "Copied to clipboard!"}
	cmd := m.recordUse(id)
	return m, cmd
}

// Paste hands the snippet's code to the caller: the screen exits and the
// command writes it to stdout. The exit waits for the usage update to resolve.
func (m SearchModel) Paste(id string) (SearchModel, tea.Cmd) {
	s, ok := m.find(id)
	if !ok {
		return m, nil
	}
	m.pasted = s.Code
	m.pasteID = id
	m.state = searchPasting
	m.status = status{text: "Pasting..."}
	cmd := m.recordUse(id)
	return m, cmd
}

// recordUse bumps the local count right away and sends the new count to the
// store in the background. A failed update is reported but not rolled back.
func (m *SearchModel) recordUse(id string) tea.Cmd {
	count := -1
	for i := range m.snippets {
		if m.snippets[i].ID == id {
			m.snippets[i].UsageCount++
			count = m.snippets[i].UsageCount
			break
		}
	}
	if count < 0 {
		return nil
	}

	refresh := m.refreshItems()
	if m.state == searchDetail {
		if s, ok := m.find(id); ok {
			m.viewport.SetContent(renderMarkdown(m.renderer, detailMarkdown(s)))
		}
	}

	ctx, store := m.ctx, m.store
	update := func() tea.Msg {
		return usageUpdatedMsg{id: id, err: store.UpdateUsageCount(ctx, id, count)}
	}
	return tea.Batch(refresh, update)
}

func (m SearchModel) copyURL(s models.Snippet) SearchModel {
	url := s.NotionURL()
	if url == "" {
		m.status = status{text: "No Notion link for this snippet", isErr: true}
		return m
	}
	if err := clipboardWriteAll(url); err != nil {
		m.status = status{text: "Failed to copy to clipboard", isErr: true}
		return m
	}
	m.status = status{text: "Notion link copied: " + url}
	return m
}

func detailMarkdown(s models.Snippet) string {
	description := s.Description
	if description == "" {
		description = "No description provided"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", s.Name)
	fmt.Fprintf(&sb, "**Language:** %s %s  \n", models.LanguageIcon(s.Language), s.Language)
	fmt.Fprintf(&sb, "**Category:** %s  \n", s.Category)
	fmt.Fprintf(&sb, "**Usage Count:** %d  \n", s.UsageCount)
	if url := s.NotionURL(); url != "" {
		fmt.Fprintf(&sb, "**Notion:** %s  \n", url)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "## Description\n%s\n\n", description)
	fmt.Fprintf(&sb, "## Code\n```%s\n%s\n```\n", s.Language, s.Code)
	return sb.String()
}

// View renders the screen.
func (m SearchModel) View() string {
	var body, help string

	switch m.state {
	case searchLoading:
		body = m.spinner.View() + " Loading snippets..."
	case searchDetail:
		body = m.viewport.View()
		help = "c copy • v paste • u copy Notion link • ↑/↓ scroll • esc back"
	default:
		switch {
		case len(m.snippets) == 0 && m.status.isErr:
			body = titleStyle.Render("Snippets")
		case len(m.snippets) == 0:
			body = boxStyle.Render("🚀 Welcome to Notion Snippets!\n\nAdd your first code snippet with `snippets add` to get started.")
		case len(m.Visible()) == 0:
			body = titleStyle.Render("Snippets · "+filterLabel(m.filter)) + "\n\n" +
				boxStyle.Render("🔍 No snippets match your filter\n\nTry another language with ctrl+f.")
		default:
			body = m.list.View()
		}
		help = "enter/c copy • v paste • p preview • u copy Notion link • / search • ctrl+f language • q quit"
	}

	var sb strings.Builder
	sb.WriteString(body)
	if s := m.status.View(); s != "" {
		sb.WriteString("\n" + s)
	}
	if help != "" {
		sb.WriteString("\n" + helpStyle.Render(help))
	}
	return sb.String()
}
