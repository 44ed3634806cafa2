package codegen

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/value"
	"github.com/pontaoski/celestial/ast"
	"github.com/pontaoski/celestial/errors"
	"github.com/ztrue/tracerr"
)

type Settings struct {
	PackageName string
	Source      string
}

type ctx struct {
	builtins builtins
	fn       *ir.Func
	block    *ir.Block
	trap     *ir.Block

	// stack slot per variable, allocated up front in the entry block
	slots map[string]value.Value
	// names bound so far in program order
	bound  map[string]bool
	blocks int
}

func (c *ctx) lookup(id ast.Identifier) value.Value {
	if !c.bound[id.Name] {
		panic(errors.UndefinedVariable{
			Name:     id.Name,
			Location: id.Pos,
		})
	}

	return c.slots[id.Name]
}

// overflowBlock is shared by every checked operation in the function.
func (c *ctx) overflowBlock() *ir.Block {
	if c.trap == nil {
		c.trap = c.fn.NewBlock("overflow")
		c.trap.NewCall(c.builtins.trap)
		c.trap.NewUnreachable()
	}

	return c.trap
}

func (c *ctx) newBlock() *ir.Block {
	c.blocks++
	return c.fn.NewBlock(fmt.Sprintf("cont.%d", c.blocks))
}

func codegenExpression(c *ctx, e ast.Expression) value.Value {
	switch expr := e.(type) {
	case ast.Number:
		return constant.NewInt(Int64, expr.Value)
	case ast.Identifier:
		return c.block.NewLoad(Int64, c.lookup(expr))
	case ast.BinaryOp:
		left := codegenExpression(c, expr.Left)
		right := codegenExpression(c, expr.Right)

		switch expr.Operator {
		case ast.Plus:
			res := c.block.NewCall(c.builtins.saddChecked, left, right)
			sum := c.block.NewExtractValue(res, 0)
			overflowed := c.block.NewExtractValue(res, 1)

			cont := c.newBlock()
			c.block.NewCondBr(overflowed, c.overflowBlock(), cont)
			c.block = cont

			return sum
		}

		panic(fmt.Sprintf("unhandled operator: %s", expr.Operator))
	default:
		panic(fmt.Sprintf("unhandled expression: %T", e))
	}
}

func codegenStatement(c *ctx, s ast.Statement) {
	switch stmt := s.(type) {
	case ast.Let:
		val := codegenExpression(c, stmt.Value)
		c.block.NewStore(val, c.slots[stmt.Name.Name])
		c.bound[stmt.Name.Name] = true
	case ast.Print:
		val := codegenExpression(c, stmt.Value)
		c.block.NewCall(c.builtins.printf, cstring(c.block, c.builtins.intFormat), val)
	default:
		panic(fmt.Sprintf("unhandled statement: %T", s))
	}
}

// Generate compiles prog into a module whose i32 @main() behaves like
// running the program through the interpreter: prints go to stdout through
// printf, and an overflowing addition traps.
func Generate(prog ast.Program, s Settings) (modu *ir.Module, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				modu = nil
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	modu = ir.NewModule()
	if s.Source != "" {
		modu.SourceFilename = s.Source
	}

	c := &ctx{
		builtins: addBuiltins(modu),
		slots:    map[string]value.Value{},
		bound:    map[string]bool{},
	}

	c.fn = modu.NewFunc("main", Int32)
	c.block = c.fn.NewBlock("entry")

	var variables []string
	for _, stmt := range prog {
		let, ok := stmt.(ast.Let)
		if !ok {
			continue
		}
		if _, ok := c.slots[let.Name.Name]; ok {
			continue
		}
		slot := c.block.NewAlloca(Int64)
		slot.SetName("var." + let.Name.Name)
		c.slots[let.Name.Name] = slot
		variables = append(variables, let.Name.Name)
	}

	for _, stmt := range prog {
		codegenStatement(c, stmt)
	}
	c.block.NewRet(constant.NewInt(Int32, 0))

	registerSymbolInfoWithModule(symbolInfo{
		Module:    s.PackageName,
		Source:    s.Source,
		Variables: variables,
	}, modu)

	return modu, nil
}
