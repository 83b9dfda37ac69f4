package symbols

import (
	"feelscope/internal/source"
	"feelscope/internal/types"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVariable
	SymbolFunction
	SymbolType
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolFunction:
		return "function"
	case SymbolType:
		return "type"
	default:
		return "invalid"
	}
}

// Symbol binds a name to a type inside a scope. A nil Type means the
// variable was declared without a type.
type Symbol struct {
	Name  source.StringID
	Kind  SymbolKind
	Type  types.Type
	Scope ScopeID
}
