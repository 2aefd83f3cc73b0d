package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/juliankahlert/hilite/internal/highlight/lexer"
	"github.com/juliankahlert/hilite/internal/highlight/render"
)

// render: snippet file -> highlighted HTML
var RenderCmd = &cobra.Command{
	Use:   "render <snippet>",
	Short: "Highlight a snippet file to HTML",
	Args:  cobra.ExactArgs(1),
	RunE:  renderRun,
}

func init() {
	RenderCmd.Flags().StringP("out", "o", "", "write HTML to this file instead of stdout")
	RenderCmd.Flags().String("lang", "", "tokenizer to use: rust or conf (default: by file extension)")
}

func renderRun(cmd *cobra.Command, args []string) error {
	path := args[0]
	lang, _ := cmd.Flags().GetString("lang")
	out, _ := cmd.Flags().GetString("out")

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snippet: %w", err)
	}
	tokenize, err := tokenizerFor(path, lang)
	if err != nil {
		return err
	}
	theme, err := loadTheme()
	if err != nil {
		return err
	}

	html := render.New(tokenize, theme).HTML(string(src))
	slog.Debug("rendered snippet", "path", path, "in", len(src), "out", len(html))

	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), html)
		return nil
	}
	if err := os.WriteFile(out, []byte(html+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// tokenizerFor picks the line tokenizer, either forced by --lang or guessed
// from the snippet's file extension.
func tokenizerFor(path, lang string) (render.LineTokenizer, error) {
	if lang == "" {
		switch filepath.Ext(path) {
		case ".toml", ".conf", ".ini":
			lang = "conf"
		default:
			lang = "rust"
		}
	}
	switch lang {
	case "rust":
		return lexer.Tokenize, nil
	case "conf":
		return lexer.TokenizeConf, nil
	}
	return nil, fmt.Errorf("unknown language %q (want rust or conf)", lang)
}
