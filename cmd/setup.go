package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/takak2166/notion-snippets/internal/apperror"
	"github.com/takak2166/notion-snippets/internal/config"
	"github.com/takak2166/notion-snippets/internal/notion"
	"github.com/takak2166/notion-snippets/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Connect a Notion database",
	Long: `Opens the setup helper: paste a database URL to get its ID, or press ctrl+g
for the full setup guide.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !interactive() {
			fmt.Fprint(cmd.OutOrStdout(), tui.SetupGuide)
			return nil
		}
		final, err := runProgram(cmd.Context(), tui.NewSetupModel())
		if err != nil {
			return err
		}
		if id := final.(tui.SetupModel).DatabaseID(); id != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", config.EnvDatabaseID, id)
		}
		return nil
	},
}

var setupExtractCmd = &cobra.Command{
	Use:   "extract <database-url>",
	Short: "Print the database ID contained in a Notion database URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := notion.ExtractDatabaseID(args[0])
		if id == "" {
			return apperror.Validation("url", "Could not extract database ID from URL")
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

var setupVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the API key and the database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := notion.New(cfg)

		user, err := client.CurrentUser(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ API key belongs to %s\n", user)

		if err := client.VerifySchema(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Database schema looks good")
		return nil
	},
}

var setupFindCmd = &cobra.Command{
	Use:   "find [title]",
	Short: "List the databases shared with the integration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var query string
		if len(args) == 1 {
			query = args[0]
		}

		dbs, err := notion.New(cfg).FindDatabases(cmd.Context(), query)
		if err != nil {
			return err
		}
		if len(dbs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No databases found. Is the integration connected to your database?")
			return nil
		}
		for _, db := range dbs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", db.ID, db.Title)
		}
		return nil
	},
}

func init() {
	setupCmd.AddCommand(setupExtractCmd)
	setupCmd.AddCommand(setupVerifyCmd)
	setupCmd.AddCommand(setupFindCmd)
}
