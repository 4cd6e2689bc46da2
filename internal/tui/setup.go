package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/takak2166/notion-snippets/internal/config"
	"github.com/takak2166/notion-snippets/internal/logger"
	"github.com/takak2166/notion-snippets/internal/notion"
)

// SetupGuide walks through creating and connecting the snippet database
const SetupGuide = `# Notion Snippets Setup

## 1. Create the database
Create a full-page database in Notion with these properties:

| Property | Type |
|----------|------|
| Name | Title |
| Code | Text |
| Language | Select |
| Description | Text |
| Category | Select |
| UsageCount | Number |

Add the options javascript, typescript, python, react, css, html, sql, shell, go and rust to Language.

## 2. Create an integration
1. Open https://www.notion.so/my-integrations
2. Create a new internal integration and copy its secret
3. Open the database, choose **Connections** in the ••• menu and add the integration

## 3. Configure
Put both values in ` + "`.env`" + ` or your environment:

` + "```" + `
NOTION_API_KEY=secret_xxx
SNIPPET_DATABASE_ID=<32 character id>
DEFAULT_LANGUAGE=javascript
` + "```" + `

Paste the database URL on the previous screen to get the ID, then run ` + "`snippets setup verify`" + `.

## Troubleshooting
- **Unauthorized**: the API key is wrong or was regenerated
- **Object not found**: the integration is not connected to the database
- **Validation failed**: a property is missing or has the wrong type; ` + "`snippets setup verify`" + ` lists them
`

type setupState int

const (
	setupInput setupState = iota
	setupGuide
)

// SetupModel extracts a database ID from a pasted database URL and shows the
// setup guide.
type SetupModel struct {
	input    textinput.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer
	state    setupState

	databaseID string
	status     status
}

func NewSetupModel() SetupModel {
	input := textinput.New()
	input.Placeholder = "https://www.notion.so/workspace/abc123...?v=..."
	input.Prompt = "🔗 "
	input.Width = 72
	input.CharLimit = 0
	input.Focus()

	return SetupModel{
		input:    input,
		viewport: viewport.New(markdownWidth, 20),
		renderer: newMarkdownRenderer(),
	}
}

func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// DatabaseID returns the last ID extracted, "" when none
func (m SetupModel) DatabaseID() string {
	return m.databaseID
}

// Extract runs the extractor on url and reports the outcome
func (m SetupModel) Extract(url string) SetupModel {
	id := notion.ExtractDatabaseID(strings.TrimSpace(url))
	m.databaseID = id
	if id == "" {
		logger.Debug("No database ID in URL", map[string]interface{}{"url": url})
		m.status = status{text: "Could not extract database ID from URL", isErr: true}
		return m
	}
	m.status = status{text: "Database ID extracted: " + id}
	return m
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state == setupGuide {
			switch msg.String() {
			case "esc", "q", "backspace":
				m.state = setupInput
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "esc":
			return m, tea.Quit
		case "enter":
			return m.Extract(m.input.Value()), nil
		case "ctrl+y":
			return m.copyID(), nil
		case "ctrl+g":
			m.state = setupGuide
			m.viewport.SetContent(renderMarkdown(m.renderer, SetupGuide))
			m.viewport.GotoTop()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SetupModel) copyID() SetupModel {
	if m.databaseID == "" {
		return m
	}
	if err := clipboardWriteAll(m.databaseID); err != nil {
		m.status = status{text: "Failed to copy to clipboard", isErr: true}
		return m
	}
	m.status = status{text: "Database ID copied to clipboard!"}
	return m
}

func (m SetupModel) View() string {
	if m.state == setupGuide {
		return m.viewport.View() + "\n" + helpStyle.Render("↑/↓ scroll • esc back")
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("⚙️ Notion Snippets Setup"))
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("Paste your Notion database URL"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	if s := m.status.View(); s != "" {
		sb.WriteString(s + "\n\n")
	}
	if m.databaseID != "" {
		sb.WriteString(boxStyle.Render(fmt.Sprintf(
			"Next steps\n\n1. Set %s=%s\n2. Set %s to your integration secret\n3. Run `snippets setup verify`",
			config.EnvDatabaseID, m.databaseID, config.EnvAPIKey)))
		sb.WriteString("\n\n")
	}
	sb.WriteString(helpStyle.Render("enter extract • ctrl+y copy ID • ctrl+g setup guide • esc quit"))
	return sb.String()
}
