package tui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takak2166/notion-snippets/internal/apperror"
	"github.com/takak2166/notion-snippets/internal/models"
)

func TestSnippetForm_Validate(t *testing.T) {
	tests := []struct {
		name       string
		form       SnippetForm
		wantFields []string
		wantMsgs   []string
	}{
		{
			name: "valid",
			form: SnippetForm{Name: "Valid Name", Code: "console.log(1)"},
		},
		{
			name:       "empty name and code",
			form:       SnippetForm{Name: "   ", Code: ""},
			wantFields: []string{"name", "code"},
			wantMsgs:   []string{"Snippet name is required", "Code is required"},
		},
		{
			name:       "short name",
			form:       SnippetForm{Name: "ab", Code: "console.log(1)"},
			wantFields: []string{"name"},
			wantMsgs:   []string{"Snippet name must be at least 3 characters"},
		},
		{
			name:       "short code",
			form:       SnippetForm{Name: "Valid Name", Code: "x"},
			wantFields: []string{"code"},
			wantMsgs:   []string{"Code must be at least 5 characters"},
		},
		{
			name:       "whitespace does not count",
			form:       SnippetForm{Name: "  ab  ", Code: "  abcd \n"},
			wantFields: []string{"name", "code"},
			wantMsgs:   []string{"Snippet name must be at least 3 characters", "Code must be at least 5 characters"},
		},
		{
			name: "minimum lengths",
			form: SnippetForm{Name: "abc", Code: "abcde"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()

			var fields, msgs []string
			for _, err := range errs {
				if !errors.Is(err, apperror.ErrValidation) {
					t.Errorf("error %v is not a validation error", err)
				}
				fields = append(fields, apperror.FieldOf(err))
				msgs = append(msgs, err.Error())
			}
			if diff := cmp.Diff(tt.wantFields, fields); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantMsgs, msgs); diff != "" {
				t.Errorf("messages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSnippetForm_Snippet(t *testing.T) {
	tests := []struct {
		name string
		form SnippetForm
		want models.Snippet
	}{
		{
			name: "defaults",
			form: SnippetForm{Name: " Valid Name ", Code: "console.log(1)\n"},
			want: models.Snippet{
				Name:     "Valid Name",
				Code:     "console.log(1)",
				Language: "javascript",
				Category: "General",
			},
		},
		{
			name: "all fields",
			form: SnippetForm{
				Name:        "Select all",
				Code:        "SELECT * FROM t",
				Language:    "sql",
				Description: " everything ",
				Category:    "DB",
			},
			want: models.Snippet{
				Name:        "Select all",
				Code:        "SELECT * FROM t",
				Language:    "sql",
				Description: "everything",
				Category:    "DB",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.form.Snippet("javascript")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Snippet() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLooksLikeCode(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"single line", false},
		{"const a = 1;\nconst b = 2;", true},
		{"\n\n", false},
	}
	for _, tt := range tests {
		if got := looksLikeCode(tt.in); got != tt.want {
			t.Errorf("looksLikeCode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
