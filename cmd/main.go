package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/takak2166/notion-snippets/internal/config"
	"github.com/takak2166/notion-snippets/internal/logger"
	"golang.org/x/term"
)

var (
	envFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "snippets",
	Short: "Save, find and reuse code snippets kept in a Notion database",
	Long: `snippets keeps your code snippets in a Notion database.

  snippets add      add a snippet from a form or from flags
  snippets search   browse snippets, copy or paste one
  snippets list     print snippets, most used first
  snippets setup    connect a database (run this first)

Configuration is read from the environment and from .env:
  NOTION_API_KEY, SNIPPET_DATABASE_ID, DEFAULT_LANGUAGE, LOG_LEVEL, LOG_FILE`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}
		if err := logger.Init(cfg.LogLevel); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Path to the .env file")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(setupCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	stop()
}

// interactive reports whether a screen can be shown. Screens draw on stderr
// so stdout stays free for pasted code.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// runProgram hands the terminal to model until it quits. While it runs, log
// output goes to LOG_FILE or is dropped.
func runProgram(ctx context.Context, model tea.Model) (tea.Model, error) {
	restore, err := redirectLog()
	if err != nil {
		return nil, err
	}
	defer restore()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)
	return p.Run()
}

func redirectLog() (func(), error) {
	if cfg.LogFile == "" {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }, nil
	}

	f, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
