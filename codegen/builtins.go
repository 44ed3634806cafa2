package codegen

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

var (
	Int64 = types.I64
	Int32 = types.I32
	Byte  = types.I8
	Bit   = types.I1

	// result of llvm.sadd.with.overflow.i64
	CheckedInt64 = types.NewStruct(Int64, Bit)
)

type builtins struct {
	printf      *ir.Func
	saddChecked *ir.Func
	trap        *ir.Func
	intFormat   *ir.Global
}

func addBuiltins(m *ir.Module) builtins {
	return builtins{
		printf:      addPrintf(m),
		saddChecked: addCheckedAdd(m),
		trap:        m.NewFunc("llvm.trap", types.Void),
		intFormat:   addIntFormat(m),
	}
}

func addPrintf(m *ir.Module) *ir.Func {
	fn := m.NewFunc("printf", Int32, ir.NewParam("format", types.NewPointer(Byte)))
	fn.Sig.Variadic = true

	return fn
}

func addCheckedAdd(m *ir.Module) *ir.Func {
	return m.NewFunc("llvm.sadd.with.overflow.i64", CheckedInt64,
		ir.NewParam("a", Int64),
		ir.NewParam("b", Int64),
	)
}

func addIntFormat(m *ir.Module) *ir.Global {
	g := m.NewGlobalDef("_fmt_int", constant.NewCharArrayFromString("%lld\n\x00"))
	g.Immutable = true

	return g
}

// cstring returns an i8* to the first byte of a global character array.
func cstring(b *ir.Block, g *ir.Global) value.Value {
	zero := constant.NewInt(Int64, 0)
	return b.NewGetElementPtr(g.ContentType, g, zero, zero)
}
