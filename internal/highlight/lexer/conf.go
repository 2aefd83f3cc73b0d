package lexer

import (
	"strings"

	"github.com/juliankahlert/hilite/internal/highlight/token"
)

// confMatchers is the rule cascade for configuration-file snippets, a much
// smaller language than the sample one. Order is declared by the site:
// comment, string, integer, boolean, punctuation, bare word, whitespace.
var confMatchers = []matcher{
	matchConfComment,
	matchString,
	matchConfInt,
	matchConfBool,
	matchConfPunct,
	matchConfWord,
	matchWhitespace,
}

// TokenizeConf splits a single configuration line into classified tokens,
// with the same totality and lossless guarantees as Tokenize.
func TokenizeConf(line string) []token.Token {
	return run(line, confMatchers)
}

func matchConfComment(rest string) (token.Token, bool) {
	if rest[0] != '#' {
		return token.Token{}, false
	}
	return token.Token{Kind: token.Comment, Text: rest}, true
}

func matchConfInt(rest string) (token.Token, bool) {
	n := 0
	if rest[0] == '-' {
		n = 1
	}
	n += digitSpan(rest[n:], isDigit)
	if n == 0 || (rest[0] == '-' && n == 1) {
		return token.Token{}, false
	}
	return token.Token{Kind: token.Number, Text: rest[:n]}, true
}

func matchConfBool(rest string) (token.Token, bool) {
	for _, word := range [...]string{"true", "false"} {
		if strings.HasPrefix(rest, word) && confWordSpan(rest) == len(word) {
			return token.Token{Kind: token.Keyword, Text: word}, true
		}
	}
	return token.Token{}, false
}

const confPunctChars = "=[]{},."

func matchConfPunct(rest string) (token.Token, bool) {
	if strings.IndexByte(confPunctChars, rest[0]) < 0 {
		return token.Token{}, false
	}
	return token.Token{Kind: token.Punct, Text: rest[:1]}, true
}

// matchConfWord is the bare-word fallback: any run up to whitespace, a
// comment marker, a quote, or punctuation.
func matchConfWord(rest string) (token.Token, bool) {
	n := confWordSpan(rest)
	if n == 0 {
		return token.Token{}, false
	}
	return token.Token{Kind: token.Text, Text: rest[:n]}, true
}

func confWordSpan(rest string) int {
	n := 0
	for n < len(rest) {
		ch := rest[n]
		if isSpace(ch) || ch == '#' || ch == '"' || strings.IndexByte(confPunctChars, ch) >= 0 {
			break
		}
		n++
	}
	return n
}
