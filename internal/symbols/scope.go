package symbols

import (
	"feelscope/internal/source"
	"feelscope/internal/types"
)

// Names of the well-known scopes.
const (
	GlobalScopeName = "<global>"
	LocalScopeName  = "<local>"
)

// Scope models a lexical scope with a parent-child hierarchy.
// Type is nil for untyped scopes.
type Scope struct {
	Name      source.StringID
	Parent    ScopeID
	Type      types.Type
	Children  map[source.StringID]ScopeID // latest child per name
	Symbols   []SymbolID                  // definition order
	NameIndex map[source.StringID]SymbolID
	tokens    *TokenTree
}

// Tokens returns the prefix matcher over the names defined in this scope,
// or nil when nothing was defined yet.
func (s *Scope) Tokens() *TokenTree { return s.tokens }
