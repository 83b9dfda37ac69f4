package symbols

import (
	"fortio.org/safecast"

	"feelscope/internal/source"
	"feelscope/internal/token"
	"feelscope/internal/types"
)

// Hints provide optional capacity hints for arenas.
type Hints struct {
	Scopes  uint
	Symbols uint
}

// Table groups scope and symbol arenas together with the string interner.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Strings *source.Interner
	Global  ScopeID
}

// NewTable creates an empty table with a global scope. A nil interner gets
// replaced by a fresh one.
func NewTable(h Hints, strings *source.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(err)
	}
	symbolCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(err)
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	t := &Table{
		Scopes:  NewScopes(scopeCap),
		Symbols: NewSymbols(symbolCap),
		Strings: strings,
	}
	t.Global = t.Scopes.New(strings.Intern(GlobalScopeName), NoScopeID, nil)
	return t
}

// NewScope allocates a child scope of parent keyed by name.
func (t *Table) NewScope(name string, parent ScopeID, typ types.Type) ScopeID {
	return t.Scopes.New(t.Strings.Intern(name), parent, typ)
}

// Define adds a symbol to scope and feeds its name into the scope's token
// tree. A later definition of the same name shadows the earlier one.
func (t *Table) Define(scope ScopeID, name string, kind SymbolKind, typ types.Type) SymbolID {
	s := t.Scopes.Get(scope)
	if s == nil {
		return NoSymbolID
	}
	nameID := t.Strings.Intern(name)
	id := t.Symbols.New(&Symbol{
		Name:  nameID,
		Kind:  kind,
		Type:  typ,
		Scope: scope,
	})
	s = t.Scopes.Get(scope)
	s.Symbols = append(s.Symbols, id)
	s.NameIndex[nameID] = id
	if s.tokens == nil {
		s.tokens = NewTokenTree()
	}
	s.tokens.AddName(token.Texts(name))
	return id
}

// LookupLocal finds name among the symbols of scope only.
func (t *Table) LookupLocal(scope ScopeID, name string) SymbolID {
	s := t.Scopes.Get(scope)
	if s == nil {
		return NoSymbolID
	}
	nameID, ok := t.Strings.Find(name)
	if !ok {
		return NoSymbolID
	}
	return s.NameIndex[nameID]
}

// Lookup walks from scope towards the global scope and returns the nearest
// symbol named name.
func (t *Table) Lookup(scope ScopeID, name string) SymbolID {
	for id := scope; id.IsValid(); {
		if sym := t.LookupLocal(id, name); sym.IsValid() {
			return sym
		}
		s := t.Scopes.Get(id)
		if s == nil {
			break
		}
		id = s.Parent
	}
	return NoSymbolID
}

// Child returns the latest child of scope registered under name.
func (t *Table) Child(scope ScopeID, name string) (ScopeID, bool) {
	s := t.Scopes.Get(scope)
	if s == nil {
		return NoScopeID, false
	}
	nameID, ok := t.Strings.Find(name)
	if !ok {
		return NoScopeID, false
	}
	child, ok := s.Children[nameID]
	return child, ok
}

// ScopeName returns the interned name of a scope.
func (t *Table) ScopeName(id ScopeID) string {
	s := t.Scopes.Get(id)
	if s == nil {
		return ""
	}
	return t.Strings.MustLookup(s.Name)
}

// SymbolName returns the interned name of a symbol.
func (t *Table) SymbolName(id SymbolID) string {
	sym := t.Symbols.Get(id)
	if sym == nil {
		return ""
	}
	return t.Strings.MustLookup(sym.Name)
}
