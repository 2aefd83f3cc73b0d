package lexer

import "github.com/juliankahlert/hilite/internal/highlight/token"

// successConstructor always displays as a type, even in call position, so
// that Ok(...) matches the coloring of the Result it builds.
const successConstructor = "Ok"

// keywords is the closed keyword set of the sample language. Membership is
// exact and case-sensitive; the list is hand-maintained for display, not
// derived from a grammar.
var keywords = map[string]struct{}{
	"as":       {},
	"async":    {},
	"await":    {},
	"break":    {},
	"const":    {},
	"continue": {},
	"crate":    {},
	"dyn":      {},
	"else":     {},
	"enum":     {},
	"extern":   {},
	"fn":       {},
	"for":      {},
	"if":       {},
	"impl":     {},
	"in":       {},
	"let":      {},
	"loop":     {},
	"match":    {},
	"mod":      {},
	"move":     {},
	"mut":      {},
	"pub":      {},
	"ref":      {},
	"return":   {},
	"self":     {},
	"static":   {},
	"struct":   {},
	"super":    {},
	"trait":    {},
	"type":     {},
	"unsafe":   {},
	"use":      {},
	"where":    {},
	"while":    {},
}

// builtins holds built-in type and constant names, colored as types.
var builtins = map[string]struct{}{
	"bool":   {},
	"char":   {},
	"str":    {},
	"String": {},
	"i8":     {},
	"i16":    {},
	"i32":    {},
	"i64":    {},
	"i128":   {},
	"isize":  {},
	"u8":     {},
	"u16":    {},
	"u32":    {},
	"u64":    {},
	"u128":   {},
	"usize":  {},
	"f32":    {},
	"f64":    {},
	"Vec":    {},
	"Box":    {},
	"Rc":     {},
	"Arc":    {},
	"Option": {},
	"Some":   {},
	"None":   {},
	"Result": {},
	"Ok":     {},
	"Err":    {},
	"Self":   {},
	"true":   {},
	"false":  {},
}

func lookupWord(word string) token.Kind {
	if _, ok := keywords[word]; ok {
		return token.Keyword
	}
	if _, ok := builtins[word]; ok {
		return token.Type
	}
	return token.Text
}
