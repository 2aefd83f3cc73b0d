package render

import "strings"

// ANSI renders source text for a terminal, coloring each token with its
// theme's SGR code and resetting afterwards. Tokens with no code pass
// through unstyled.
func (r *Renderer) ANSI(src string) string {
	if src == "" {
		return ""
	}
	var b strings.Builder
	for i, line := range strings.Split(src, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, tok := range r.tokenize(line) {
			code := r.theme[tok.Kind].ANSI
			if code == "" {
				b.WriteString(tok.Text)
				continue
			}
			b.WriteString("\x1b[")
			b.WriteString(code)
			b.WriteString("m")
			b.WriteString(tok.Text)
			b.WriteString("\x1b[0m")
		}
	}
	return b.String()
}
