package cmd

import (
	"fmt"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"

	"github.com/juliankahlert/hilite/internal/highlight/render"
)

var (
	themePath string
	logFile   string
	verbose   bool
)

var level = new(slog.LevelVar)

var rootCmd = &cobra.Command{
	Use:   "hilite",
	Short: "hilite — syntax highlighter for simple-ssh doc snippets",
	Long: `hilite tokenizes the Rust and config-file snippets shown on the
simple-ssh documentation site and renders them as color-classed HTML.

Commands:
  render  Highlight a snippet file to HTML
  tokens  Dump the classified token stream of a snippet
  repl    Highlight lines interactively in the terminal
`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&themePath, "theme", "", "TOML theme file overriding the built-in theme")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append JSON logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(RenderCmd, TokensCmd, ReplCmd)
}

// setupLogging installs the process logger: human-readable on stderr, plus a
// JSON sink when --log-file is given.
func setupLogging(cmd *cobra.Command, args []string) error {
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelWarn)
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}
	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	return nil
}

// loadTheme resolves the active theme for the current invocation.
func loadTheme() (render.Theme, error) {
	if themePath == "" {
		return render.Default(), nil
	}
	return render.Load(themePath)
}
