package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/takak2166/notion-snippets/internal/models"
	"github.com/takak2166/notion-snippets/internal/notion"
	"github.com/takak2166/notion-snippets/internal/tui"
)

var searchLanguage string

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Browse snippets and copy or paste one",
	Long: `Lists snippets, most used first. Type / to search by name, description or
language, ctrl+f to filter by language.

  enter/c  copy the code to the clipboard
  v        paste: print the code to stdout and exit
  p        preview
  u        copy the Notion link

Copying or pasting a snippet adds one to its usage count. Without a terminal
the snippets are printed as with "snippets list".`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print snippets, most used first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listSnippets(cmd, searchLanguage)
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchLanguage, "language", "l", "", "Only show snippets in this language")
	listCmd.Flags().StringVarP(&searchLanguage, "language", "l", "", "Only show snippets in this language")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := cfg.CheckDatabase(); err != nil {
		return err
	}
	if !interactive() {
		return listSnippets(cmd, searchLanguage)
	}

	model := tui.NewSearchModel(cmd.Context(), notion.New(cfg))
	if searchLanguage != "" {
		model, _ = model.SetLanguageFilter(searchLanguage)
	}

	final, err := runProgram(cmd.Context(), model)
	if err != nil {
		return err
	}
	if code, ok := final.(tui.SearchModel).Pasted(); ok {
		fmt.Fprintln(cmd.OutOrStdout(), code)
	}
	return nil
}

func listSnippets(cmd *cobra.Command, language string) error {
	snippets, err := notion.New(cfg).FetchAll(cmd.Context())
	if err != nil {
		return err
	}
	printSnippets(cmd.OutOrStdout(), snippets, language)
	return nil
}

func printSnippets(w io.Writer, snippets []models.Snippet, language string) {
	if len(snippets) == 0 {
		fmt.Fprintln(w, "No snippets yet. Add one with `snippets add`.")
		return
	}

	shown := 0
	for _, s := range snippets {
		if language != "" && s.Language != language {
			continue
		}
		shown++
		fmt.Fprintf(w, "%s %s\n", models.LanguageIcon(s.Language), s.Name)
		fmt.Fprintf(w, "   %s · %s · used %d times\n", s.Language, s.Category, s.UsageCount)
		if s.Description != "" {
			fmt.Fprintf(w, "   %s\n", s.Description)
		}
		if url := s.NotionURL(); url != "" {
			fmt.Fprintf(w, "   %s\n", url)
		}
	}
	if shown == 0 {
		fmt.Fprintln(w, "No snippets match your filter.")
	}
}
