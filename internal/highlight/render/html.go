// Package render turns token streams back into display text: kind-classed
// HTML spans for the docs pages and SGR-colored text for terminal preview.
package render

import (
	"strings"

	"github.com/juliankahlert/hilite/internal/highlight/token"
)

// A LineTokenizer splits one line (no line feeds) into tokens.
type LineTokenizer func(line string) []token.Token

// Renderer binds a line tokenizer to a theme. Lines are tokenized
// independently; no state crosses lines or calls.
type Renderer struct {
	tokenize LineTokenizer
	theme    Theme
}

func New(tokenize LineTokenizer, theme Theme) *Renderer {
	return &Renderer{tokenize: tokenize, theme: theme}
}

// escaper rewrites markup-unsafe characters. A single pass over the text
// means already-written entities are never escaped twice.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// HTML renders source text into span markup, one span per token, joined with
// the original line feeds. Empty input yields empty output.
func (r *Renderer) HTML(src string) string {
	if src == "" {
		return ""
	}
	var b strings.Builder
	for i, line := range strings.Split(src, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, tok := range r.tokenize(line) {
			b.WriteString(`<span class="`)
			b.WriteString(r.theme[tok.Kind].Class)
			b.WriteString(`">`)
			b.WriteString(escaper.Replace(tok.Text))
			b.WriteString(`</span>`)
		}
	}
	return b.String()
}
