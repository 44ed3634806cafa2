package ast

import "github.com/pontaoski/celestial/types"

// BinaryOperator is an infix operator. Each operator knows its own binding
// strength so the parser never switches on individual operators.
type BinaryOperator int

const (
	Plus BinaryOperator = iota
)

var operators = map[BinaryOperator]struct {
	symbol     string
	precedence int
	token      types.TokenKind
}{
	Plus: {"+", 10, types.PLUS},
}

func (o BinaryOperator) Precedence() int {
	return operators[o].precedence
}

func (o BinaryOperator) String() string {
	return operators[o].symbol
}

// OperatorFor returns the binary operator denoted by a token kind.
func OperatorFor(kind types.TokenKind) (BinaryOperator, bool) {
	for op, info := range operators {
		if info.token == kind {
			return op, true
		}
	}
	return 0, false
}

type Expression interface {
	is_Expression()
}

type Number struct {
	Value int64
	Pos   types.Span
}

func (v Number) is_Expression() {}

type Identifier struct {
	Name string
	Pos  types.Span
}

func (v Identifier) is_Expression() {}

// BinaryOp owns both operands; expressions never share sub-trees.
type BinaryOp struct {
	Left     Expression
	Operator BinaryOperator
	Right    Expression
	Pos      types.Span
}

func (v BinaryOp) is_Expression() {}

type Statement interface {
	is_Statement()
}

// Let binds or rebinds Name in the single global environment.
type Let struct {
	Name  Identifier
	Value Expression
}

func (v Let) is_Statement() {}

type Print struct {
	Value Expression
	Pos   types.Span
}

func (v Print) is_Statement() {}

// Program is the ordered statement sequence; order is execution order.
type Program []Statement

// PosOf returns the source span covered by an expression.
func PosOf(e Expression) types.Span {
	switch expr := e.(type) {
	case Number:
		return expr.Pos
	case Identifier:
		return expr.Pos
	case BinaryOp:
		return expr.Pos
	}

	return types.Span{}
}
