package lexer

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/pontaoski/celestial/errors"
	"github.com/pontaoski/celestial/types"
	"github.com/ztrue/tracerr"
)

type testToken struct {
	Kind    types.TokenKind
	Literal string
	Value   int64
}

func lexToEOF(t *testing.T, src string) []testToken {
	t.Helper()

	tokens, err := NewLexer(strings.NewReader(src), "test").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q): unexpected error: %v", src, err)
	}

	var ret []testToken
	for _, tok := range tokens {
		ret = append(ret, testToken{tok.Kind, tok.Literal, tok.Value})
	}
	return ret
}

func TestLexer(t *testing.T) {
	got := lexToEOF(t, "let x = 10;")
	want := []testToken{
		{types.LET, "let", 0},
		{types.IDENT, "x", 0},
		{types.EQUALS, "=", 0},
		{types.INT, "10", 10},
		{types.EOS, ";", 0},
		{types.EOF, "", 0},
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("tokens didn't match: %v", diff)
	}
}

func TestLexerWhitespace(t *testing.T) {
	compact := lexToEOF(t, "let x=10;print x+y;")
	spaced := lexToEOF(t, "  let\n\tx   =\r\n10 ;\n\n print\tx\n+ y ;  \n")
	if diff := pretty.Diff(spaced, compact); len(diff) > 0 {
		t.Errorf("whitespace changed the token stream: %v", diff)
	}
}

var numberTests = []struct {
	input string
	value int64
}{
	{"0", 0},
	{"7", 7},
	{"007", 7},
	{"000", 0},
	{"1234567890", 1234567890},
	{"9223372036854775807", 9223372036854775807},
}

func TestLexerNumbers(t *testing.T) {
	for _, tt := range numberTests {
		got := lexToEOF(t, tt.input)
		if len(got) != 2 || got[0].Kind != types.INT || got[0].Value != tt.value {
			t.Errorf("lex(%q) = %v, want INT(%d) EOF", tt.input, got, tt.value)
		}
	}
}

func TestLexerKeywordPrefixes(t *testing.T) {
	got := lexToEOF(t, "letter printer let print x1 y2z")
	want := []testToken{
		{types.IDENT, "letter", 0},
		{types.IDENT, "printer", 0},
		{types.LET, "let", 0},
		{types.PRINT, "print", 0},
		{types.IDENT, "x1", 0},
		{types.IDENT, "y2z", 0},
		{types.EOF, "", 0},
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("tokens didn't match: %v", diff)
	}
}

func TestLexerNumberThenIdent(t *testing.T) {
	got := lexToEOF(t, "12ab")
	want := []testToken{
		{types.INT, "12", 12},
		{types.IDENT, "ab", 0},
		{types.EOF, "", 0},
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("tokens didn't match: %v", diff)
	}
}

func TestLexerEOFIsSticky(t *testing.T) {
	l := NewLexer(strings.NewReader("x"), "test")
	if tok := l.Lex(); tok.Kind != types.IDENT {
		t.Fatalf("first token = %s, want IDENT", tok)
	}
	for i := 0; i < 3; i++ {
		if tok := l.Lex(); tok.Kind != types.EOF {
			t.Errorf("call %d after end = %s, want EOF", i, tok)
		}
	}
}

func TestLexerPeek(t *testing.T) {
	l := NewLexer(strings.NewReader("print 1;"), "test")
	if !l.PeekIs(types.PRINT) {
		t.Fatalf("PeekIs(PRINT) = false")
	}
	if tok := l.Peek(); tok.Kind != types.PRINT {
		t.Errorf("second Peek = %s, want PRINT", tok)
	}
	if tok := l.Lex(); tok.Kind != types.PRINT {
		t.Errorf("Lex after Peek = %s, want PRINT", tok)
	}
	if tok := l.Lex(); tok.Kind != types.INT {
		t.Errorf("Lex = %s, want INT", tok)
	}
}

func TestLexerPositions(t *testing.T) {
	tokens, err := NewLexer(strings.NewReader("let xy\n  = 1;"), "pos.cel").Tokenize()
	if err != nil {
		t.Fatal(err)
	}

	want := []types.Span{
		{From: types.Position{Line: 1, Column: 1, Filename: "pos.cel"}, To: types.Position{Line: 1, Column: 3, Filename: "pos.cel"}},
		{From: types.Position{Line: 1, Column: 5, Filename: "pos.cel"}, To: types.Position{Line: 1, Column: 6, Filename: "pos.cel"}},
		types.SingleCharSpan(types.Position{Line: 2, Column: 3, Filename: "pos.cel"}),
		types.SingleCharSpan(types.Position{Line: 2, Column: 5, Filename: "pos.cel"}),
		types.SingleCharSpan(types.Position{Line: 2, Column: 6, Filename: "pos.cel"}),
	}
	for i, span := range want {
		if diff := pretty.Diff(tokens[i].Location, span); len(diff) > 0 {
			t.Errorf("token %d (%s) location: %v", i, tokens[i], diff)
		}
	}
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	_, err := NewLexer(strings.NewReader("let x = 1 # comment;"), "test").Tokenize()
	if err == nil {
		t.Fatal("expected an error but found none")
	}

	uc, ok := tracerr.Unwrap(err).(errors.UnexpectedCharacter)
	if !ok {
		t.Fatalf("error = %#v, want UnexpectedCharacter", tracerr.Unwrap(err))
	}
	if uc.Char != '#' {
		t.Errorf("Char = %q, want '#'", uc.Char)
	}
	if uc.Location.From.Column != 11 {
		t.Errorf("column = %d, want 11", uc.Location.From.Column)
	}
}

func TestLexerIntegerTooLarge(t *testing.T) {
	_, err := NewLexer(strings.NewReader("9223372036854775808"), "test").Tokenize()
	if _, ok := tracerr.Unwrap(err).(errors.BadIntegerLiteral); !ok {
		t.Fatalf("error = %#v, want BadIntegerLiteral", err)
	}
}

func TestLexExpecting(t *testing.T) {
	defer func() {
		r := recover()
		e, ok := r.(errors.ExpectedKindGotKind)
		if !ok {
			t.Fatalf("recovered %#v, want ExpectedKindGotKind", r)
		}
		if e.Expected != types.EQUALS || e.Got.Kind != types.INT {
			t.Errorf("got %v", e)
		}
	}()

	l := NewLexer(strings.NewReader("10"), "test")
	l.LexExpecting(types.EQUALS)
}
