package codegen

import (
	"encoding/json"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
)

const symbolsGlobal = "__celestial_symbols"

type symbolInfo struct {
	Module    string   `json:"module"`
	Source    string   `json:"source,omitempty"`
	Variables []string `json:"variables"`
}

func registerSymbolInfoWithModule(s symbolInfo, m *ir.Module) {
	data, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}

	g := m.NewGlobalDef(symbolsGlobal, constant.NewCharArray(append(data, 0)))
	g.Immutable = true
}

// SymbolInfo reads back the symbol table embedded by Generate.
func SymbolInfo(m *ir.Module) (module string, variables []string, ok bool) {
	for _, g := range m.Globals {
		if g.Name() != symbolsGlobal {
			continue
		}
		arr, isArr := g.Init.(*constant.CharArray)
		if !isArr || len(arr.X) == 0 {
			return "", nil, false
		}

		var s symbolInfo
		if err := json.Unmarshal(arr.X[:len(arr.X)-1], &s); err != nil {
			return "", nil, false
		}
		return s.Module, s.Variables, true
	}

	return "", nil, false
}
