package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"feelscope/internal/source"
	"feelscope/internal/types"
)

// arena is slice storage addressed by 1-based IDs; slot 0 is the sentinel.
type arena[T any] struct {
	kind string
	data []T
}

func newArena[T any](kind string, capacity uint32) arena[T] {
	return arena[T]{kind: kind, data: make([]T, 1, capacity+1)}
}

func (a *arena[T]) push(v T) uint32 {
	id, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("%s arena overflow: %w", a.kind, err))
	}
	a.data = append(a.data, v)
	return id
}

func (a *arena[T]) at(id uint32) *T {
	if id == 0 || int(id) >= len(a.data) {
		return nil
	}
	return &a.data[id]
}

func (a *arena[T]) items() []T {
	if len(a.data) <= 1 {
		return nil
	}
	return a.data[1:]
}

// Scopes stores every scope ever opened, including shadowed ones.
type Scopes struct {
	arena[Scope]
}

// NewScopes creates a scope arena; capacity 0 picks a default.
func NewScopes(capacity uint32) *Scopes {
	if capacity == 0 {
		capacity = 32
	}
	return &Scopes{newArena[Scope]("scopes", capacity)}
}

// New allocates a scope. A valid parent gets it registered as its child
// under name, replacing an older child of the same name; the older scope
// stays in the arena.
func (s *Scopes) New(name source.StringID, parent ScopeID, typ types.Type) ScopeID {
	id := ScopeID(s.push(Scope{
		Name:      name,
		Parent:    parent,
		Type:      typ,
		Children:  make(map[source.StringID]ScopeID),
		NameIndex: make(map[source.StringID]SymbolID),
	}))
	if p := s.Get(parent); p != nil {
		p.Children[name] = id
	}
	return id
}

// Get returns the scope or nil. The pointer is invalidated by the next New.
func (s *Scopes) Get(id ScopeID) *Scope { return s.at(uint32(id)) }

// Len reports the number of scopes.
func (s *Scopes) Len() int { return len(s.data) - 1 }

// Data returns the scopes in ID order; Data()[i] has ID i+1.
func (s *Scopes) Data() []Scope { return s.items() }

// Symbols stores declared symbols.
type Symbols struct {
	arena[Symbol]
}

// NewSymbols creates a symbol arena; capacity 0 picks a default.
func NewSymbols(capacity uint32) *Symbols {
	if capacity == 0 {
		capacity = 64
	}
	return &Symbols{newArena[Symbol]("symbols", capacity)}
}

// New copies sym into the arena.
func (s *Symbols) New(sym *Symbol) SymbolID {
	if sym == nil {
		panic("symbols.New: nil symbol")
	}
	return SymbolID(s.push(*sym))
}

// Get returns the symbol or nil.
func (s *Symbols) Get(id SymbolID) *Symbol { return s.at(uint32(id)) }

// Len reports the number of symbols.
func (s *Symbols) Len() int { return len(s.data) - 1 }

// Data returns the symbols in ID order.
func (s *Symbols) Data() []Symbol { return s.items() }
