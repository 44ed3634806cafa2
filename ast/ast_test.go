package ast

import (
	"testing"

	"github.com/pontaoski/celestial/types"
)

func TestOperatorFor(t *testing.T) {
	op, ok := OperatorFor(types.PLUS)
	if !ok || op != Plus {
		t.Errorf("OperatorFor(PLUS) = %v, %v, want Plus, true", op, ok)
	}
	if Plus.Precedence() != 10 {
		t.Errorf("Plus.Precedence() = %d, want 10", Plus.Precedence())
	}
	for _, kind := range []types.TokenKind{types.EQUALS, types.EOS, types.IDENT, types.EOF} {
		if _, ok := OperatorFor(kind); ok {
			t.Errorf("OperatorFor(%s) reported an operator", kind)
		}
	}
}

func TestProgramString(t *testing.T) {
	prog := Program{
		Let{Name: Identifier{Name: "x"}, Value: Number{Value: 10}},
		Print{Value: BinaryOp{
			Left:     BinaryOp{Left: Identifier{Name: "x"}, Operator: Plus, Right: Number{Value: 1}},
			Operator: Plus,
			Right:    BinaryOp{Left: Identifier{Name: "y"}, Operator: Plus, Right: Identifier{Name: "z"}},
		}},
	}

	want := "let x = 10;\nprint x + 1 + (y + z);"
	if got := prog.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
