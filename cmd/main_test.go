package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/cobra"
	"github.com/takak2166/notion-snippets/internal/apperror"
	"github.com/takak2166/notion-snippets/internal/config"
	"github.com/takak2166/notion-snippets/internal/models"
	"github.com/takak2166/notion-snippets/internal/tui"
	"github.com/takak2166/notion-snippets/internal/tui/mock_tui"
)

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestAddSnippet(t *testing.T) {
	cfg = &config.Config{DefaultLanguage: "python"}

	t.Run("invalid form makes no call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_tui.NewMockSnippetStore(ctrl)
		cmd, _ := testCommand()

		err := addSnippet(cmd, store, tui.SnippetForm{Name: "ab", Code: "x"})
		if !errors.Is(err, apperror.ErrValidation) {
			t.Fatalf("err = %v, want a validation error", err)
		}
		for _, want := range []string{"at least 3 characters", "at least 5 characters"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error %q does not mention %q", err, want)
			}
		}
	})

	t.Run("valid form is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_tui.NewMockSnippetStore(ctrl)
		cmd, out := testCommand()

		want := models.Snippet{Name: "Valid Name", Code: "print(1)", Language: "python", Category: "General"}
		created := want
		created.ID = "4f0c3e0d9b8a4c2e8f1a2b3c4d5e6f70"
		store.EXPECT().Create(gomock.Any(), want).Return(created, nil)

		if err := addSnippet(cmd, store, tui.SnippetForm{Name: "Valid Name", Code: "print(1)"}); err != nil {
			t.Fatalf("addSnippet() error = %v", err)
		}
		if !strings.Contains(out.String(), "https://notion.so/4f0c3e0d9b8a4c2e8f1a2b3c4d5e6f70") {
			t.Errorf("output = %q", out.String())
		}
	})
}

func TestReadCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippet.sql")
	if err := os.WriteFile(path, []byte("SELECT 1;\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := readCode(path, nil)
	if err != nil || got != "SELECT 1;\n" {
		t.Errorf("readCode(file) = %q, %v", got, err)
	}

	got, err = readCode("-", strings.NewReader("echo hi"))
	if err != nil || got != "echo hi" {
		t.Errorf("readCode(stdin) = %q, %v", got, err)
	}

	if _, err := readCode(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestPrintSnippets(t *testing.T) {
	snippets := []models.Snippet{
		{ID: "a1", Name: "Fetch JSON", Language: "javascript", Category: "API", UsageCount: 7},
		{ID: "2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b", Name: "Comprehension", Language: "python", Category: "General", Description: "Build a list"},
	}

	tests := []struct {
		name     string
		snippets []models.Snippet
		language string
		want     []string
		notWant  []string
	}{
		{
			name:     "all",
			snippets: snippets,
			want:     []string{"🟨 Fetch JSON", "used 7 times", "Build a list", "https://notion.so/2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b"},
			notWant:  []string{"https://notion.so/a1"},
		},
		{
			name:     "filtered",
			snippets: snippets,
			language: "python",
			want:     []string{"Comprehension"},
			notWant:  []string{"Fetch JSON"},
		},
		{
			name:     "no match",
			snippets: snippets,
			language: "rust",
			want:     []string{"No snippets match your filter."},
		},
		{
			name: "empty",
			want: []string{"No snippets yet."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			printSnippets(&out, tt.snippets, tt.language)
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(out.String(), notWant) {
					t.Errorf("output contains %q:\n%s", notWant, out.String())
				}
			}
		})
	}
}

func TestSetupExtractCommand(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "database URL",
			url:  "https://www.notion.so/team/0123456789abcdef0123456789abcdef?v=abc",
			want: "0123456789abcdef0123456789abcdef\n",
		},
		{
			name:    "no ID",
			url:     "https://www.notion.so/team/page",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			setupExtractCmd.SetOut(&out)
			err := setupExtractCmd.RunE(setupExtractCmd, []string{tt.url})

			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}
