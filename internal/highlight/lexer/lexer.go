package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/juliankahlert/hilite/internal/highlight/token"
)

// A matcher inspects the unconsumed suffix of a line and either claims a
// token at its start or declines. Matchers never claim an empty span.
type matcher func(rest string) (token.Token, bool)

// rustMatchers is the rule cascade for sample-language lines. Order is the
// tie-break: the first matcher that claims the position wins.
var rustMatchers = []matcher{
	matchWhitespace,
	matchLineComment,
	matchChar,
	matchRawString,
	matchString,
	matchDigraph,
	matchPunct,
	matchNumber,
	matchWord,
}

// Tokenize splits a single source line into classified tokens. It is total:
// any input produces a token sequence whose concatenated text reproduces the
// line exactly, and every step consumes at least one character.
func Tokenize(line string) []token.Token {
	return run(line, rustMatchers)
}

func run(line string, matchers []matcher) []token.Token {
	var toks []token.Token
	rest := line
	for len(rest) > 0 {
		tok := next(rest, matchers)
		toks = append(toks, tok)
		rest = rest[len(tok.Text):]
	}
	return toks
}

func next(rest string, matchers []matcher) token.Token {
	for _, match := range matchers {
		if tok, ok := match(rest); ok {
			return tok
		}
	}
	// Unrecognized character: emit it alone as plain text so the scan
	// always makes progress.
	_, size := utf8.DecodeRuneInString(rest)
	return token.Token{Kind: token.Text, Text: rest[:size]}
}

func matchWhitespace(rest string) (token.Token, bool) {
	n := 0
	for n < len(rest) && isSpace(rest[n]) {
		n++
	}
	if n == 0 {
		return token.Token{}, false
	}
	return token.Token{Kind: token.Whitespace, Text: rest[:n]}, true
}

// matchLineComment claims the remainder of the line. Input is a single line,
// so there is no continuation to track.
func matchLineComment(rest string) (token.Token, bool) {
	if !strings.HasPrefix(rest, "//") {
		return token.Token{}, false
	}
	return token.Token{Kind: token.Comment, Text: rest}, true
}

// matchChar scans a character literal. A quote directly followed by a letter
// or underscore is taken for a lifetime marker (as in &'a str) and demoted to
// a lone plain-text quote; the same happens when no closing quote exists on
// the line. The lifetime test is a heuristic carried over from the site's
// observed behavior, not a grammar.
func matchChar(rest string) (token.Token, bool) {
	if rest[0] != '\'' {
		return token.Token{}, false
	}
	if len(rest) > 1 && isLetter(rest[1]) {
		return token.Token{Kind: token.Text, Text: "'"}, true
	}
	i := 1
	for i < len(rest) {
		switch rest[i] {
		case '\\':
			i += 2
		case '\'':
			return token.Token{Kind: token.Char, Text: rest[:i+1]}, true
		default:
			i++
		}
	}
	return token.Token{Kind: token.Text, Text: "'"}, true
}

// matchRawString handles r"..." and r#"..."# forms. The closing delimiter
// must carry as many hash marks as the opening one. Unterminated literals
// run to end of line.
func matchRawString(rest string) (token.Token, bool) {
	if rest[0] != 'r' {
		return token.Token{}, false
	}
	i := 1
	for i < len(rest) && rest[i] == '#' {
		i++
	}
	if i >= len(rest) || rest[i] != '"' {
		return token.Token{}, false
	}
	hashes := i - 1
	closing := `"` + strings.Repeat("#", hashes)
	for i++; i < len(rest); i++ {
		if strings.HasPrefix(rest[i:], closing) {
			return token.Token{Kind: token.RawString, Text: rest[:i+len(closing)]}, true
		}
	}
	return token.Token{Kind: token.RawString, Text: rest}, true
}

// matchString scans an ordinary double-quoted string. A backslash always
// escapes the following character. Unterminated strings run to end of line.
func matchString(rest string) (token.Token, bool) {
	if rest[0] != '"' {
		return token.Token{}, false
	}
	i := 1
	for i < len(rest) {
		switch rest[i] {
		case '\\':
			i += 2
		case '"':
			return token.Token{Kind: token.String, Text: rest[:i+1]}, true
		default:
			i++
		}
	}
	return token.Token{Kind: token.String, Text: rest}, true
}

// digraphs are multi-character punctuation sequences lexed as one token.
// The path separator comes first so it wins over a lone colon.
var digraphs = []string{"::", "->", "=>", ">=", "<=", "==", "!="}

func matchDigraph(rest string) (token.Token, bool) {
	for _, d := range digraphs {
		if strings.HasPrefix(rest, d) {
			return token.Token{Kind: token.Punct, Text: d}, true
		}
	}
	return token.Token{}, false
}

const punctChars = "[](){};:,.?!&|#@+-*/%<>="

func matchPunct(rest string) (token.Token, bool) {
	ch := rest[0]
	// A period opening a fractional literal like .5 belongs to the
	// numeric rule.
	if ch == '.' && len(rest) > 1 && isDigit(rest[1]) {
		return token.Token{}, false
	}
	if strings.IndexByte(punctChars, ch) < 0 {
		return token.Token{}, false
	}
	return token.Token{Kind: token.Punct, Text: rest[:1]}, true
}

func matchNumber(rest string) (token.Token, bool) {
	ch := rest[0]
	if !isDigit(ch) && !(ch == '.' && len(rest) > 1 && isDigit(rest[1])) {
		return token.Token{}, false
	}
	return token.Token{Kind: token.Number, Text: rest[:scanNumber(rest)]}, true
}

// scanNumber returns the length of the numeric literal opening rest.
// Underscore separators are allowed inside every digit run.
func scanNumber(rest string) int {
	switch {
	case strings.HasPrefix(rest, "0x"):
		return 2 + digitSpan(rest[2:], isHexDigit)
	case strings.HasPrefix(rest, "0b"):
		return 2 + digitSpan(rest[2:], isBinDigit)
	case strings.HasPrefix(rest, "0o"):
		return 2 + digitSpan(rest[2:], isOctDigit)
	}
	i := digitSpan(rest, isDigit)
	if i < len(rest)-1 && rest[i] == '.' && isDigit(rest[i+1]) {
		i++
		i += digitSpan(rest[i:], isDigit)
	}
	if i < len(rest) && (rest[i] == 'e' || rest[i] == 'E') {
		j := i + 1
		if j < len(rest) && (rest[j] == '+' || rest[j] == '-') {
			j++
		}
		if j < len(rest) && isDigit(rest[j]) {
			i = j + digitSpan(rest[j:], isDigit)
		}
	}
	if strings.HasPrefix(rest[i:], "f32") || strings.HasPrefix(rest[i:], "f64") {
		i += 3
	}
	return i
}

func digitSpan(s string, valid func(byte) bool) int {
	n := 0
	for n < len(s) && (valid(s[n]) || s[n] == '_') {
		n++
	}
	return n
}

// matchWord lexes an identifier-shaped run and classifies it by what
// immediately follows: a macro bang, a call parenthesis, a path separator,
// or nothing special, in which case the keyword/type tables decide.
func matchWord(rest string) (token.Token, bool) {
	if !isLetter(rest[0]) {
		return token.Token{}, false
	}
	n := 1
	for n < len(rest) && isWordChar(rest[n]) {
		n++
	}
	word := rest[:n]
	follow := rest[n:]
	switch {
	case strings.HasPrefix(follow, "!("):
		// The bang belongs to the macro name, the parenthesis does not.
		return token.Token{Kind: token.MacroCall, Text: rest[:n+1]}, true
	case strings.HasPrefix(follow, "("):
		if word == successConstructor {
			return token.Token{Kind: token.Type, Text: word}, true
		}
		return token.Token{Kind: token.FuncCall, Text: word}, true
	case strings.HasPrefix(follow, "::"):
		return token.Token{Kind: token.PathSegment, Text: word}, true
	}
	return token.Token{Kind: lookupWord(word), Text: word}, true
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r'
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isBinDigit(ch byte) bool {
	return ch == '0' || ch == '1'
}

func isOctDigit(ch byte) bool {
	return '0' <= ch && ch <= '7'
}
