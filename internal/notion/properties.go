package notion

import (
	"strings"

	"github.com/jomei/notionapi"
)

// Property extraction. Pages coming back from Notion may be partially
// populated, so every extractor returns the zero value of its type when the
// property is missing or of another kind.

// ExtractTitle joins the text runs of a title property
func ExtractTitle(p notionapi.Property) string {
	switch prop := p.(type) {
	case *notionapi.TitleProperty:
		if prop == nil {
			return ""
		}
		return plainText(prop.Title)
	case notionapi.TitleProperty:
		return plainText(prop.Title)
	}
	return ""
}

// ExtractRichText joins the text runs of a rich text property
func ExtractRichText(p notionapi.Property) string {
	switch prop := p.(type) {
	case *notionapi.RichTextProperty:
		if prop == nil {
			return ""
		}
		return plainText(prop.RichText)
	case notionapi.RichTextProperty:
		return plainText(prop.RichText)
	}
	return ""
}

// ExtractSelect returns the selected option's name
func ExtractSelect(p notionapi.Property) string {
	switch prop := p.(type) {
	case *notionapi.SelectProperty:
		if prop == nil {
			return ""
		}
		return prop.Select.Name
	case notionapi.SelectProperty:
		return prop.Select.Name
	}
	return ""
}

// ExtractNumber returns the value of a number property
func ExtractNumber(p notionapi.Property) float64 {
	switch prop := p.(type) {
	case *notionapi.NumberProperty:
		if prop == nil {
			return 0
		}
		return prop.Number
	case notionapi.NumberProperty:
		return prop.Number
	}
	return 0
}

func plainText(runs []notionapi.RichText) string {
	var sb strings.Builder
	for _, rt := range runs {
		switch {
		case rt.PlainText != "":
			sb.WriteString(rt.PlainText)
		case rt.Text != nil:
			// requests built locally only carry Text
			sb.WriteString(rt.Text.Content)
		}
	}
	return sb.String()
}

// maxRichTextLength is Notion's limit on the content of a single text run
const maxRichTextLength = 2000

// richText splits content into runs Notion accepts. Empty content yields an
// empty slice, which clears the property.
func richText(content string) []notionapi.RichText {
	runs := []notionapi.RichText{}
	r := []rune(content)
	for len(r) > 0 {
		n := len(r)
		if n > maxRichTextLength {
			n = maxRichTextLength
		}
		runs = append(runs, notionapi.RichText{
			Text: &notionapi.Text{
				Content: string(r[:n]),
			},
		})
		r = r[n:]
	}
	return runs
}
