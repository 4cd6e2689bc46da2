package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/takak2166/notion-snippets/internal/apperror"
	"github.com/takak2166/notion-snippets/internal/logger"
	"github.com/takak2166/notion-snippets/internal/models"
	"github.com/takak2166/notion-snippets/internal/notion"
	"github.com/takak2166/notion-snippets/internal/tui"
)

var addFlags struct {
	name        string
	code        string
	codeFile    string
	language    string
	description string
	category    string
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a snippet",
	Long: `Opens the add form. If the clipboard holds multi-line text it is used as the code.

Pass --name with --code or --code-file to add without the form:
  snippets add --name "Debounce" --code-file debounce.js --language javascript
  pbpaste | snippets add --name "Query users" --code-file - --language sql`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	f := addCmd.Flags()
	f.StringVar(&addFlags.name, "name", "", "Snippet name")
	f.StringVar(&addFlags.code, "code", "", "Snippet code")
	f.StringVar(&addFlags.codeFile, "code-file", "", "Read the code from a file, - for stdin")
	f.StringVarP(&addFlags.language, "language", "l", "", "Language (default DEFAULT_LANGUAGE)")
	f.StringVarP(&addFlags.description, "description", "d", "", "What the snippet does")
	f.StringVarP(&addFlags.category, "category", "c", "", "Category (default General)")
	addCmd.MarkFlagsMutuallyExclusive("code", "code-file")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if err := cfg.CheckDatabase(); err != nil {
		return err
	}
	store := notion.New(cfg)

	if addFlags.name != "" || addFlags.code != "" || addFlags.codeFile != "" {
		form := tui.SnippetForm{
			Name:        addFlags.name,
			Code:        addFlags.code,
			Language:    addFlags.language,
			Description: addFlags.description,
			Category:    addFlags.category,
		}
		if addFlags.codeFile != "" {
			code, err := readCode(addFlags.codeFile, cmd.InOrStdin())
			if err != nil {
				return err
			}
			form.Code = code
		}
		return addSnippet(cmd, store, form)
	}

	if !interactive() {
		return apperror.Configuration("no terminal available; pass --name and --code or --code-file")
	}

	final, err := runProgram(cmd.Context(), tui.NewAddModel(cmd.Context(), store, cfg.DefaultLanguage))
	if err != nil {
		return err
	}
	if created, ok := final.(tui.AddModel).Created(); ok {
		printAdded(cmd.OutOrStdout(), created)
	}
	return nil
}

func addSnippet(cmd *cobra.Command, store tui.SnippetStore, form tui.SnippetForm) error {
	if errs := form.Validate(); len(errs) > 0 {
		return errors.Join(errs...)
	}

	created, err := store.Create(cmd.Context(), form.Snippet(cfg.DefaultLanguage))
	if err != nil {
		return err
	}

	logger.Info("Snippet added", map[string]interface{}{
		"id":       created.ID,
		"name":     created.Name,
		"language": created.Language,
	})
	printAdded(cmd.OutOrStdout(), created)
	return nil
}

func printAdded(w io.Writer, s models.Snippet) {
	fmt.Fprintf(w, "✓ Snippet added: %s\n", s.Name)
	if url := s.NotionURL(); url != "" {
		fmt.Fprintf(w, "  %s\n", url)
	}
}

func readCode(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read code from stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read code file: %w", err)
	}
	return string(b), nil
}
