package tui

import (
	"strings"

	"github.com/takak2166/notion-snippets/internal/apperror"
	"github.com/takak2166/notion-snippets/internal/models"
)

const (
	minNameLength = 3
	minCodeLength = 5
)

// SnippetForm holds the raw values typed into the add form
type SnippetForm struct {
	Name        string
	Code        string
	Language    string
	Description string
	Category    string
}

// Validate checks the required fields and returns one validation error per
// failing field, in form order
func (f SnippetForm) Validate() []error {
	var errs []error

	name := strings.TrimSpace(f.Name)
	switch {
	case name == "":
		errs = append(errs, apperror.Validation("name", "Snippet name is required"))
	case len([]rune(name)) < minNameLength:
		errs = append(errs, apperror.Validation("name", "Snippet name must be at least 3 characters"))
	}

	code := strings.TrimSpace(f.Code)
	switch {
	case code == "":
		errs = append(errs, apperror.Validation("code", "Code is required"))
	case len([]rune(code)) < minCodeLength:
		errs = append(errs, apperror.Validation("code", "Code must be at least 5 characters"))
	}

	return errs
}

// Snippet builds the snippet to store: values trimmed, language falling back
// to defaultLanguage, category to models.DefaultCategory, usage count zero
func (f SnippetForm) Snippet(defaultLanguage string) models.Snippet {
	language := f.Language
	if language == "" {
		language = defaultLanguage
	}
	category := strings.TrimSpace(f.Category)
	if category == "" {
		category = models.DefaultCategory
	}
	return models.Snippet{
		Name:        strings.TrimSpace(f.Name),
		Code:        strings.TrimSpace(f.Code),
		Language:    language,
		Description: strings.TrimSpace(f.Description),
		Category:    category,
		UsageCount:  0,
	}
}

// looksLikeCode is the clipboard heuristic used to pre-fill the code field
func looksLikeCode(s string) bool {
	return strings.TrimSpace(s) != "" && strings.Contains(s, "\n")
}
