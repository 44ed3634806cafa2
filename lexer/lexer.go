package lexer

import (
	"bufio"
	"io"
	"strconv"
	"unicode"

	"github.com/pontaoski/celestial/errors"
	"github.com/pontaoski/celestial/types"
	"github.com/ztrue/tracerr"
)

// Lexer produces tokens one at a time from an io.Reader. Lex, Peek and
// LexExpecting panic with values from the errors package; Tokenize and the
// parser recover those into ordinary errors.
type Lexer struct {
	pos    types.Position
	prev   types.Position
	reader *bufio.Reader
	peeked *types.Token
}

func NewLexer(reader io.Reader, filename string) *Lexer {
	return &Lexer{
		pos:    types.Position{Line: 1, Column: 0, Filename: filename},
		reader: bufio.NewReader(reader),
	}
}

// Pos returns the position of the last rune consumed.
func (l *Lexer) Pos() types.Position {
	return l.pos
}

func (l *Lexer) read() (rune, bool) {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, false
		}
		panic(err)
	}

	l.prev = l.pos
	if r == '\n' {
		l.pos.Line++
		l.pos.Column = 0
	} else {
		l.pos.Column++
	}

	return r, true
}

func (l *Lexer) backup() {
	if err := l.reader.UnreadRune(); err != nil {
		panic(err)
	}

	l.pos = l.prev
}

func (l *Lexer) kinded(t types.TokenKind) types.Token {
	return types.Token{
		Location: types.SingleCharSpan(l.pos),
		Kind:     t,
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func identChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// lexRun consumes the maximal run of runes matching accept, starting with
// first which has already been read.
func (l *Lexer) lexRun(first rune, accept func(rune) bool) (types.Span, string) {
	from := l.pos
	lit := []rune{first}

	for {
		r, ok := l.read()
		if !ok {
			break
		}
		if !accept(r) {
			l.backup()
			break
		}
		lit = append(lit, r)
	}

	return types.Span{From: from, To: l.pos}, string(lit)
}

func (l *Lexer) Peek() types.Token {
	if l.peeked != nil {
		return *l.peeked
	}

	tok := l.Lex()
	l.peeked = &tok

	return tok
}

func (l *Lexer) PeekIs(k ...types.TokenKind) bool {
	return l.Peek().Is(k...)
}

func (l *Lexer) LexExpecting(k ...types.TokenKind) types.Token {
	token := l.Lex()
	if token.Is(k...) {
		return token
	}

	if len(k) == 1 {
		panic(errors.ExpectedKindGotKind{
			Expected: k[0],
			Got:      token,
			Location: token.Location,
		})
	}

	panic(errors.ExpectedOneOfKindGotKind{
		Expected: k,
		Got:      token,
		Location: token.Location,
	})
}

var keywords = map[string]types.TokenKind{
	"let":   types.LET,
	"print": types.PRINT,
}

var punctuation = map[rune]types.TokenKind{
	'=': types.EQUALS,
	'+': types.PLUS,
	';': types.EOS,
}

// Lex consumes and returns the next token. Once the input is exhausted every
// call returns EOF.
func (l *Lexer) Lex() types.Token {
	if l.peeked != nil {
		defer func() { l.peeked = nil }()
		return *l.peeked
	}

	for {
		r, ok := l.read()
		if !ok {
			return l.kinded(types.EOF)
		}

		if kind, ok := punctuation[r]; ok {
			tok := l.kinded(kind)
			tok.Literal = string(r)
			return tok
		}

		switch {
		case unicode.IsSpace(r):
			continue
		case isDigit(r):
			span, lit := l.lexRun(r, isDigit)

			value, err := strconv.ParseInt(lit, 10, 64)
			if err != nil {
				panic(errors.BadIntegerLiteral{
					Literal:  lit,
					Location: span,
				})
			}

			return types.Token{Kind: types.INT, Literal: lit, Value: value, Location: span}
		case unicode.IsLetter(r):
			span, lit := l.lexRun(r, identChar)

			if kind, ok := keywords[lit]; ok {
				return types.Token{Kind: kind, Literal: lit, Location: span}
			}

			return types.Token{Kind: types.IDENT, Literal: lit, Location: span}
		}

		panic(errors.UnexpectedCharacter{
			Char:     r,
			Location: types.SingleCharSpan(l.pos),
		})
	}
}

// Tokenize drains the lexer, returning every token up to and including EOF.
func (l *Lexer) Tokenize() (tokens []types.Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				tokens = nil
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	for {
		tok := l.Lex()
		tokens = append(tokens, tok)
		if tok.Kind == types.EOF {
			return tokens, nil
		}
	}
}
