package parser

import (
	"strings"

	"github.com/pontaoski/celestial/ast"
	"github.com/pontaoski/celestial/errors"
	"github.com/pontaoski/celestial/lexer"
	"github.com/pontaoski/celestial/types"
	"github.com/ztrue/tracerr"
)

type Parser struct {
	l *lexer.Lexer

	operatorFor func(types.TokenKind) (ast.BinaryOperator, bool)
	precedence  func(ast.BinaryOperator) int
}

func NewParser(l *lexer.Lexer) *Parser {
	return &Parser{
		l:           l,
		operatorFor: ast.OperatorFor,
		precedence:  ast.BinaryOperator.Precedence,
	}
}

// ParseString parses a whole program held in memory.
func ParseString(src, filename string) (ast.Program, error) {
	return NewParser(lexer.NewLexer(strings.NewReader(src), filename)).Parse()
}

// Parse consumes tokens until EOF. The first lexical or syntax error aborts
// parsing and no partial program is returned.
func (p *Parser) Parse() (prog ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				prog = nil
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	prog = ast.Program{}
	for !p.l.PeekIs(types.EOF) {
		prog = append(prog, p.parseStatement())
	}

	return prog, nil
}

func (p *Parser) parseStatement() ast.Statement {
	tok := p.l.Peek()

	switch tok.Kind {
	case types.LET:
		return p.parseLetStatement()
	case types.PRINT:
		return p.parsePrintStatement()
	}

	panic(errors.ExpectedOneOfKindGotKind{
		Expected: []types.TokenKind{types.LET, types.PRINT},
		Got:      tok,
		Location: tok.Location,
	})
}

// let IDENT = expr ;
func (p *Parser) parseLetStatement() ast.Statement {
	p.l.LexExpecting(types.LET)
	name := p.l.LexExpecting(types.IDENT)
	p.l.LexExpecting(types.EQUALS)
	value := p.parseExpression()
	p.l.LexExpecting(types.EOS)

	return ast.Let{
		Name:  ast.Identifier{Name: name.Literal, Pos: name.Location},
		Value: value,
	}
}

// print expr ;
func (p *Parser) parsePrintStatement() ast.Statement {
	kw := p.l.LexExpecting(types.PRINT)
	value := p.parseExpression()
	end := p.l.LexExpecting(types.EOS)

	return ast.Print{
		Value: value,
		Pos:   types.Span{From: kw.Location.From, To: end.Location.To},
	}
}

func (p *Parser) parseExpression() ast.Expression {
	left := p.parsePrimary()
	return p.parseBinaryOpRHS(0, left)
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.l.LexExpecting(types.INT, types.IDENT)

	switch tok.Kind {
	case types.INT:
		return ast.Number{Value: tok.Value, Pos: tok.Location}
	case types.IDENT:
		return ast.Identifier{Name: tok.Literal, Pos: tok.Location}
	}

	panic("unhandled")
}

func (p *Parser) currentOperator() (ast.BinaryOperator, bool) {
	return p.operatorFor(p.l.Peek().Kind)
}

// parseBinaryOpRHS extends left with every following operator that binds at
// least as tightly as minPrecedence. Operators of equal precedence fold to
// the left; a strictly tighter operator after the right operand is folded
// into the right operand first.
func (p *Parser) parseBinaryOpRHS(minPrecedence int, left ast.Expression) ast.Expression {
	for {
		op, ok := p.currentOperator()
		if !ok {
			return left
		}
		opPrecedence := p.precedence(op)
		if opPrecedence < minPrecedence {
			return left
		}

		p.l.Lex()
		right := p.parsePrimary()

		for {
			next, ok := p.currentOperator()
			if !ok || p.precedence(next) <= opPrecedence {
				break
			}
			right = p.parseBinaryOpRHS(opPrecedence+1, right)
		}

		left = ast.BinaryOp{
			Left:     left,
			Operator: op,
			Right:    right,
			Pos:      types.Span{From: ast.PosOf(left).From, To: ast.PosOf(right).To},
		}
	}
}
