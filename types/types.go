package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	EOF TokenKind = iota

	EQUALS
	PLUS

	LET
	PRINT

	EOS

	INT
	IDENT
)

func (t TokenKind) String() string {
	data := map[TokenKind]string{
		EOF:    "EOF",
		EQUALS: "EQUALS",
		PLUS:   "PLUS",
		LET:    "LET",
		PRINT:  "PRINT",
		EOS:    "EOS",
		INT:    "INT",
		IDENT:  "IDENT",
	}
	if s, ok := data[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

// Token is a single lexical unit. Literal holds the source text of
// identifiers and integers; Value holds the parsed integer for INT tokens.
type Token struct {
	Kind     TokenKind
	Literal  string
	Value    int64
	Location Span
}

// Is reports whether the token is of one of the given kinds.
func (t Token) Is(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

func (t Token) String() string {
	switch t.Kind {
	case IDENT:
		return fmt.Sprintf("IDENT(%s)", t.Literal)
	case INT:
		return fmt.Sprintf("INT(%d)", t.Value)
	}
	return t.Kind.String()
}
