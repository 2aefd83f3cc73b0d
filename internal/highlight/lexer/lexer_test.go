package lexer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/juliankahlert/hilite/internal/highlight/token"
)

// --- Test Helper Functions ---

// checkLossless asserts the concatenated token text reproduces the line and
// that every token is non-empty (the scan always makes progress).
func checkLossless(t *testing.T, toks []token.Token, line string) {
	t.Helper()
	var b strings.Builder
	for i, tok := range toks {
		if tok.Text == "" {
			t.Errorf("token %d of %q is empty", i, line)
		}
		b.WriteString(tok.Text)
	}
	if got := b.String(); got != line {
		t.Errorf("tokens of %q concatenate to %q", line, got)
	}
}

// checkSequence asserts the exact token sequence for a line.
func checkSequence(t *testing.T, line string, want []token.Token) {
	t.Helper()
	got := Tokenize(line)
	checkLossless(t, got, line)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) produced %d tokens, expected %d: %v", line, len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d of %q: got %v %q, expected %v %q",
				i, line, got[i].Kind, got[i].Text, want[i].Kind, want[i].Text)
		}
	}
}

// --- The Test Cases ---

func TestKeywordClassification(t *testing.T) {
	checkSequence(t, "let mut x", []token.Token{
		{Kind: token.Keyword, Text: "let"},
		{Kind: token.Whitespace, Text: " "},
		{Kind: token.Keyword, Text: "mut"},
		{Kind: token.Whitespace, Text: " "},
		{Kind: token.Text, Text: "x"},
	})
}

func TestMacroCallVsFunctionCall(t *testing.T) {
	checkSequence(t, `println!("hi")`, []token.Token{
		{Kind: token.MacroCall, Text: "println!"},
		{Kind: token.Punct, Text: "("},
		{Kind: token.String, Text: `"hi"`},
		{Kind: token.Punct, Text: ")"},
	})

	checkSequence(t, `connect(host)`, []token.Token{
		{Kind: token.FuncCall, Text: "connect"},
		{Kind: token.Punct, Text: "("},
		{Kind: token.Text, Text: "host"},
		{Kind: token.Punct, Text: ")"},
	})
}

func TestSuccessConstructorStaysType(t *testing.T) {
	checkSequence(t, "Ok(())", []token.Token{
		{Kind: token.Type, Text: "Ok"},
		{Kind: token.Punct, Text: "("},
		{Kind: token.Punct, Text: "("},
		{Kind: token.Punct, Text: ")"},
		{Kind: token.Punct, Text: ")"},
	})

	// The override is specific to the success constructor.
	got := Tokenize("Err(e)")
	if got[0].Kind != token.FuncCall {
		t.Errorf("Err in call position classified %v, expected %v", got[0].Kind, token.FuncCall)
	}
}

func TestPathSegments(t *testing.T) {
	checkSequence(t, "use anyhow::Result;", []token.Token{
		{Kind: token.Keyword, Text: "use"},
		{Kind: token.Whitespace, Text: " "},
		{Kind: token.PathSegment, Text: "anyhow"},
		{Kind: token.Punct, Text: "::"},
		{Kind: token.Type, Text: "Result"},
		{Kind: token.Punct, Text: ";"},
	})
}

func TestStringEscapes(t *testing.T) {
	checkSequence(t, `"a\"b"`, []token.Token{
		{Kind: token.String, Text: `"a\"b"`},
	})
	checkSequence(t, `"a\\"`, []token.Token{
		{Kind: token.String, Text: `"a\\"`},
	})
	// Unterminated strings run to end of line.
	checkSequence(t, `"open ended`, []token.Token{
		{Kind: token.String, Text: `"open ended`},
	})
}

func TestRawStrings(t *testing.T) {
	// No escape processing inside raw strings: the backslash does not
	// protect the closing quote.
	checkSequence(t, `r"back\"`, []token.Token{
		{Kind: token.RawString, Text: `r"back\"`},
	})
	checkSequence(t, `r#"say "hi""#;`, []token.Token{
		{Kind: token.RawString, Text: `r#"say "hi""#`},
		{Kind: token.Punct, Text: ";"},
	})
	checkSequence(t, `r##"open`, []token.Token{
		{Kind: token.RawString, Text: `r##"open`},
	})
	// A bare r is just a word.
	checkSequence(t, "rate", []token.Token{
		{Kind: token.Text, Text: "rate"},
	})
}

func TestCharLiteralsAndLifetimes(t *testing.T) {
	checkSequence(t, `'\n'`, []token.Token{
		{Kind: token.Char, Text: `'\n'`},
	})
	checkSequence(t, "'0'", []token.Token{
		{Kind: token.Char, Text: "'0'"},
	})
	// A quote directly followed by a letter reads as a lifetime marker.
	checkSequence(t, "&'a str", []token.Token{
		{Kind: token.Punct, Text: "&"},
		{Kind: token.Text, Text: "'"},
		{Kind: token.Text, Text: "a"},
		{Kind: token.Whitespace, Text: " "},
		{Kind: token.Type, Text: "str"},
	})
	// Unclosed quote demotes to plain text.
	checkSequence(t, "'", []token.Token{
		{Kind: token.Text, Text: "'"},
	})
}

func TestNumericLiterals(t *testing.T) {
	for _, lit := range []string{
		"1.5f64",
		"42f32",
		"0xFF_00",
		"0b1010_1010",
		"0o77",
		"1_000_000",
		"2e10",
		"1.5e-3",
		".5",
	} {
		checkSequence(t, lit, []token.Token{
			{Kind: token.Number, Text: lit},
		})
	}
}

func TestRangeDoesNotSwallowDots(t *testing.T) {
	checkSequence(t, "0..10", []token.Token{
		{Kind: token.Number, Text: "0"},
		{Kind: token.Punct, Text: "."},
		{Kind: token.Number, Text: ".10"},
	})
}

func TestDigraphs(t *testing.T) {
	checkSequence(t, "x==y", []token.Token{
		{Kind: token.Text, Text: "x"},
		{Kind: token.Punct, Text: "=="},
		{Kind: token.Text, Text: "y"},
	})
	for _, d := range []string{"::", "->", "=>", ">=", "<=", "==", "!="} {
		got := Tokenize(d)
		if len(got) != 1 || got[0].Kind != token.Punct || got[0].Text != d {
			t.Errorf("Tokenize(%q) = %v, expected one punctuation token", d, got)
		}
	}
}

func TestLineComments(t *testing.T) {
	checkSequence(t, "let x = 1; // done", []token.Token{
		{Kind: token.Keyword, Text: "let"},
		{Kind: token.Whitespace, Text: " "},
		{Kind: token.Text, Text: "x"},
		{Kind: token.Whitespace, Text: " "},
		{Kind: token.Punct, Text: "="},
		{Kind: token.Whitespace, Text: " "},
		{Kind: token.Number, Text: "1"},
		{Kind: token.Punct, Text: ";"},
		{Kind: token.Whitespace, Text: " "},
		{Kind: token.Comment, Text: "// done"},
	})
}

// sampleLines mirrors the kind of code shown on the docs site.
var sampleLines = []string{
	"use std::net::TcpStream;",
	"let mut session = Session::new()?;",
	`session.userauth_password("admin", "secret")?;`,
	"fn connect(host: &str, port: u16) -> Result<Client> {",
	`    println!("connected to {}:{}", host, port);`,
	"let timeout = Duration::from_secs(30);",
	"match channel.read_exact(&mut buf) {",
	"    Ok(n) => total += n,",
	"    Err(e) => return Err(e.into()),",
	"}",
	"// establish the transport first",
	`let banner = r#"SSH-2.0-simple_ssh"#;`,
	"for i in 0..10 { sum += i; }",
	"let rate = 1.5f64 * 0xFF as f64;",
	"\t\t&'a [u8]",
	"§ unrecognized ¶ bytes",
	"",
}

func TestLosslessOverSampleLines(t *testing.T) {
	for _, line := range sampleLines {
		checkLossless(t, Tokenize(line), line)
	}
}

func TestTokenizeIsIdempotent(t *testing.T) {
	for _, line := range sampleLines {
		first := Tokenize(line)
		second := Tokenize(line)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Tokenize(%q) differs between calls:\n%v\n%v", line, first, second)
		}
	}
}
