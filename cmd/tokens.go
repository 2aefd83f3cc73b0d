package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// tokens: snippet file -> classified token dump
var TokensCmd = &cobra.Command{
	Use:   "tokens <snippet>",
	Short: "Dump the classified token stream of a snippet",
	Args:  cobra.ExactArgs(1),
	RunE:  tokensRun,
}

func init() {
	TokensCmd.Flags().String("lang", "", "tokenizer to use: rust or conf (default: by file extension)")
	TokensCmd.Flags().Bool("json", false, "emit the token stream as JSON")
}

type lineTokens struct {
	Line   int         `json:"line"`
	Tokens []tokenJSON `json:"tokens"`
}

type tokenJSON struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func tokensRun(cmd *cobra.Command, args []string) error {
	path := args[0]
	lang, _ := cmd.Flags().GetString("lang")
	asJSON, _ := cmd.Flags().GetBool("json")

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snippet: %w", err)
	}
	tokenize, err := tokenizerFor(path, lang)
	if err != nil {
		return err
	}

	lines := strings.Split(string(src), "\n")
	w := cmd.OutOrStdout()

	if asJSON {
		dump := make([]lineTokens, 0, len(lines))
		for i, line := range lines {
			lt := lineTokens{Line: i + 1}
			for _, tok := range tokenize(line) {
				lt.Tokens = append(lt.Tokens, tokenJSON{Kind: tok.Kind.String(), Text: tok.Text})
			}
			dump = append(dump, lt)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dump)
	}

	for i, line := range lines {
		fmt.Fprintf(w, "line %d:\n", i+1)
		for _, tok := range tokenize(line) {
			fmt.Fprintf(w, "  %-17s %q\n", tok.Kind, tok.Text)
		}
	}
	return nil
}
