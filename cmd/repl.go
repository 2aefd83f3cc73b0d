package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/juliankahlert/hilite/internal/highlight/lexer"
	"github.com/juliankahlert/hilite/internal/highlight/render"
)

const historyFile = ".hilite_history"

// repl: highlight typed lines in the terminal
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Highlight lines interactively in the terminal",
	Long: `Reads lines and echoes them back syntax-colored with ANSI escapes.

REPL commands:
  :rust    Switch to the Rust tokenizer (default)
  :conf    Switch to the config-file tokenizer
  :quit    Exit the REPL (Ctrl+D also exits)
`,
	Args: cobra.NoArgs,
	RunE: replRun,
}

func replRun(cmd *cobra.Command, args []string) error {
	theme, err := loadTheme()
	if err != nil {
		return err
	}

	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	histPath := historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			rl.ReadHistory(f)
			f.Close()
		}
	}
	defer saveHistory(rl, histPath)

	mode := "rust"
	r := render.New(lexer.Tokenize, theme)
	out := cmd.OutOrStdout()

	for {
		input, err := rl.Prompt(mode + "> ")
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Fprintln(out)
			return nil
		default:
			return err
		}

		switch strings.TrimSpace(input) {
		case ":quit":
			return nil
		case ":rust":
			mode = "rust"
			r = render.New(lexer.Tokenize, theme)
			continue
		case ":conf":
			mode = "conf"
			r = render.New(lexer.TokenizeConf, theme)
			continue
		case "":
			continue
		}

		rl.AppendHistory(input)
		fmt.Fprintln(out, r.ANSI(input))
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func saveHistory(rl *liner.State, path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	rl.WriteHistory(f)
}
