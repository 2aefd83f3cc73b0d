package render

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/juliankahlert/hilite/internal/highlight/token"
)

// Style describes how one token kind is displayed: the CSS class used by the
// HTML renderer and the SGR parameter string used by the ANSI renderer. An
// empty ANSI code leaves the text uncolored.
type Style struct {
	Class string `toml:"class"`
	ANSI  string `toml:"ansi"`
}

// Theme maps every token kind to its display style.
type Theme map[token.Kind]Style

// Default returns the built-in theme shipped with the docs site.
func Default() Theme {
	return Theme{
		token.Keyword:     {Class: "hl-keyword", ANSI: "95"},
		token.Type:        {Class: "hl-type", ANSI: "93"},
		token.FuncCall:    {Class: "hl-call", ANSI: "96"},
		token.MacroCall:   {Class: "hl-macro", ANSI: "96"},
		token.PathSegment: {Class: "hl-path", ANSI: "36"},
		token.String:      {Class: "hl-string", ANSI: "92"},
		token.RawString:   {Class: "hl-raw-string", ANSI: "92"},
		token.Char:        {Class: "hl-char", ANSI: "92"},
		token.Number:      {Class: "hl-number", ANSI: "91"},
		token.Comment:     {Class: "hl-comment", ANSI: "90"},
		token.Punct:       {Class: "hl-punct", ANSI: ""},
		token.Whitespace:  {Class: "hl-space", ANSI: ""},
		token.Text:        {Class: "hl-text", ANSI: ""},
	}
}

// Load reads a TOML theme file and merges it over the default theme. Each
// top-level table is keyed by a token kind name:
//
//	[keyword]
//	class = "code-kw"
//	ansi = "35"
//
// Unknown kind names are an error; omitted kinds and omitted fields keep
// their defaults.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	var raw map[string]Style
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}
	theme := Default()
	for name, style := range raw {
		kind, ok := token.KindByName(name)
		if !ok {
			return nil, fmt.Errorf("theme %s: unknown token kind %q", path, name)
		}
		merged := theme[kind]
		if style.Class != "" {
			merged.Class = style.Class
		}
		if style.ANSI != "" {
			merged.ANSI = style.ANSI
		}
		theme[kind] = merged
	}
	return theme, nil
}
