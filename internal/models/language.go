package models

import "strings"

// Language is one entry of the language picker
type Language struct {
	Code  string
	Label string
	Icon  string
	// NotionCode is the language name Notion expects on a code block
	NotionCode string
}

// FallbackIcon is shown for stored languages outside the catalogue
const FallbackIcon = "📝"

// Languages lists the selectable languages in picker order
var Languages = []Language{
	{Code: "javascript", Label: "JavaScript", Icon: "🟨", NotionCode: "javascript"},
	{Code: "typescript", Label: "TypeScript", Icon: "🔷", NotionCode: "typescript"},
	{Code: "python", Label: "Python", Icon: "🐍", NotionCode: "python"},
	{Code: "react", Label: "React", Icon: "⚛️", NotionCode: "javascript"},
	{Code: "css", Label: "CSS", Icon: "🎨", NotionCode: "css"},
	{Code: "html", Label: "HTML", Icon: "📄", NotionCode: "html"},
	{Code: "sql", Label: "SQL", Icon: "🗄️", NotionCode: "sql"},
	{Code: "shell", Label: "Shell", Icon: "💻", NotionCode: "shell"},
	{Code: "go", Label: "Go", Icon: "🚀", NotionCode: "go"},
	{Code: "rust", Label: "Rust", Icon: "⚙️", NotionCode: "rust"},
}

// LookupLanguage finds a catalogue entry by code, ignoring case
func LookupLanguage(code string) (Language, bool) {
	for _, l := range Languages {
		if strings.EqualFold(l.Code, code) {
			return l, true
		}
	}
	return Language{}, false
}

// LanguageIcon returns the icon for code, or FallbackIcon when it is unknown
func LanguageIcon(code string) string {
	if l, ok := LookupLanguage(code); ok {
		return l.Icon
	}
	return FallbackIcon
}

// NotionCodeLanguage maps a snippet language to a Notion code block language
func NotionCodeLanguage(code string) string {
	if l, ok := LookupLanguage(code); ok {
		return l.NotionCode
	}
	return "plain text"
}

// IndexOfLanguage returns the picker position of code, or -1
func IndexOfLanguage(code string) int {
	for i, l := range Languages {
		if strings.EqualFold(l.Code, code) {
			return i
		}
	}
	return -1
}
