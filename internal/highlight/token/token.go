package token

// Kind classifies a lexed span for display purposes.
type Kind uint8

const (
	Keyword Kind = iota
	Type
	FuncCall
	MacroCall
	PathSegment
	String
	RawString
	Char
	Number
	Comment
	Punct
	Whitespace
	Text
)

// kindNames are the stable external names for each Kind. They key theme
// files and appear in token dumps.
var kindNames = [...]string{
	Keyword:     "keyword",
	Type:        "type",
	FuncCall:    "function-call",
	MacroCall:   "macro-call",
	PathSegment: "path-segment",
	String:      "string",
	RawString:   "raw-string",
	Char:        "character-literal",
	Number:      "numeric-literal",
	Comment:     "comment",
	Punct:       "punctuation",
	Whitespace:  "whitespace",
	Text:        "plain-text",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindByName resolves an external kind name back to its Kind.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Kinds returns every defined Kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, len(kindNames))
	for i := range kindNames {
		ks[i] = Kind(i)
	}
	return ks
}

// Token is a classified, contiguous substring of a source line.
// Concatenating Text over a line's tokens reproduces the line exactly.
type Token struct {
	Kind Kind
	Text string
}
