package errors

import (
	"fmt"

	"github.com/pontaoski/celestial/types"
)

// UnexpectedCharacter is raised by the lexer for any rune that cannot start a
// token.
type UnexpectedCharacter struct {
	Char     rune
	Location types.Span
}

func (e UnexpectedCharacter) Error() string {
	return fmt.Sprintf("unexpected character %q. %s", e.Char, e.Location)
}

type BadIntegerLiteral struct {
	Literal  string
	Location types.Span
}

func (e BadIntegerLiteral) Error() string {
	return fmt.Sprintf("integer literal %s does not fit in 64 bits. %s", e.Literal, e.Location)
}

type ExpectedKindGotKind struct {
	Expected types.TokenKind
	Got      types.Token
	Location types.Span
}

func (e ExpectedKindGotKind) Error() string {
	return fmt.Sprintf("got a %s, expected a %s. %s", e.Got, e.Expected, e.Location)
}

type ExpectedOneOfKindGotKind struct {
	Expected []types.TokenKind
	Got      types.Token
	Location types.Span
}

func (e ExpectedOneOfKindGotKind) Error() string {
	return fmt.Sprintf("got a %s, expected one of %s. %s", e.Got, e.Expected, e.Location)
}

type UndefinedVariable struct {
	Name     string
	Location types.Span
}

func (e UndefinedVariable) Error() string {
	return fmt.Sprintf("undefined variable %s. %s", e.Name, e.Location)
}

type IntegerOverflow struct {
	Left     int64
	Right    int64
	Operator string
	Location types.Span
}

func (e IntegerOverflow) Error() string {
	return fmt.Sprintf("integer overflow evaluating %d %s %d. %s", e.Left, e.Operator, e.Right, e.Location)
}
