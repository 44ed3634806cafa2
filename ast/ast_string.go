package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// ExpressionString renders an expression back to celestial source.
// Nested right operands are parenthesised so the printed text keeps the
// tree's shape even though the grammar has no parentheses yet.
func ExpressionString(e Expression) string {
	switch expr := e.(type) {
	case Number:
		return strconv.FormatInt(expr.Value, 10)
	case Identifier:
		return expr.Name
	case BinaryOp:
		right := ExpressionString(expr.Right)
		if _, ok := expr.Right.(BinaryOp); ok {
			right = "(" + right + ")"
		}
		return fmt.Sprintf("%s %s %s", ExpressionString(expr.Left), expr.Operator, right)
	}

	panic(fmt.Sprintf("unhandled expression: %T", e))
}

func (l Let) String() string {
	return fmt.Sprintf("let %s = %s;", l.Name.Name, ExpressionString(l.Value))
}

func (p Print) String() string {
	return fmt.Sprintf("print %s;", ExpressionString(p.Value))
}

func (p Program) String() string {
	var lines []string
	for _, stmt := range p {
		lines = append(lines, fmt.Sprint(stmt))
	}
	return strings.Join(lines, "\n")
}
