package interpreter

import (
	"fmt"
	"io"
	"math/bits"
	"strconv"

	"github.com/pontaoski/celestial/ast"
	"github.com/pontaoski/celestial/errors"
	"github.com/ztrue/tracerr"
)

// Environment maps variable names to their current values. There is one flat
// namespace per run; rebinding overwrites.
type Environment map[string]int64

func (e Environment) Get(name string) (int64, bool) {
	v, ok := e[name]
	return v, ok
}

func (e Environment) Set(name string, value int64) {
	e[name] = value
}

type Interpreter struct {
	env Environment
	out io.Writer
}

// New returns an interpreter with an empty environment that writes printed
// values to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{
		env: Environment{},
		out: out,
	}
}

func (i *Interpreter) Environment() Environment {
	return i.env
}

// Interpret executes the statements in order and stops at the first error.
// Lines printed before the failing statement have already been written.
func (i *Interpreter) Interpret(prog ast.Program) error {
	for _, stmt := range prog {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (i *Interpreter) execute(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case ast.Let:
		value, err := i.Evaluate(s.Value)
		if err != nil {
			return err
		}
		i.env.Set(s.Name.Name, value)
		return nil
	case ast.Print:
		value, err := i.Evaluate(s.Value)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(i.out, strconv.FormatInt(value, 10)+"\n"); err != nil {
			return tracerr.Wrap(err)
		}
		return nil
	}

	panic(fmt.Sprintf("unhandled statement: %T", stmt))
}

func (i *Interpreter) Evaluate(e ast.Expression) (int64, error) {
	switch expr := e.(type) {
	case ast.Number:
		return expr.Value, nil
	case ast.Identifier:
		value, ok := i.env.Get(expr.Name)
		if !ok {
			return 0, tracerr.Wrap(errors.UndefinedVariable{
				Name:     expr.Name,
				Location: expr.Pos,
			})
		}
		return value, nil
	case ast.BinaryOp:
		left, err := i.Evaluate(expr.Left)
		if err != nil {
			return 0, err
		}
		right, err := i.Evaluate(expr.Right)
		if err != nil {
			return 0, err
		}
		return apply(expr, left, right)
	}

	panic(fmt.Sprintf("unhandled expression: %T", e))
}

func apply(expr ast.BinaryOp, left, right int64) (int64, error) {
	switch expr.Operator {
	case ast.Plus:
		sum, ok := addInt64(left, right)
		if !ok {
			return 0, tracerr.Wrap(errors.IntegerOverflow{
				Left:     left,
				Right:    right,
				Operator: expr.Operator.String(),
				Location: expr.Pos,
			})
		}
		return sum, nil
	}

	panic(fmt.Sprintf("unhandled operator: %s", expr.Operator))
}

// addInt64 is checked two's complement addition.
func addInt64(a, b int64) (int64, bool) {
	sum, _ := bits.Add64(uint64(a), uint64(b), 0)
	s := int64(sum)
	// overflow iff both operands share a sign that the result lacks
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, false
	}
	return s, true
}
