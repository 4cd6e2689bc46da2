package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is stored when a snippet is added without a category
const DefaultCategory = "General"

// Snippet represents one row of the snippet database
type Snippet struct {
	ID          string // assigned by Notion
	Name        string
	Code        string
	Language    string
	Description string
	Category    string
	UsageCount  int
	CreatedAt   time.Time // assigned by Notion
}

// NotionURL returns the browser link of the snippet's page, or "" when the ID
// is not a Notion page ID.
func (s Snippet) NotionURL() string {
	parsed, err := uuid.Parse(s.ID)
	if err != nil {
		return ""
	}
	return "https://notion.so/" + strings.ReplaceAll(parsed.String(), "-", "")
}

// Property names of the snippet database. Notion matches them case-sensitively.
const (
	PropName        = "Name"
	PropCode        = "Code"
	PropLanguage    = "Language"
	PropDescription = "Description"
	PropCategory    = "Category"
	PropUsageCount  = "UsageCount"
)
