package symbols

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// Validate checks the structural integrity of the table: a single parentless
// global scope, parents allocated before children, consistent child and
// name indexes.
func (t *Table) Validate() error {
	if t == nil {
		return errors.New("symbols: nil table")
	}
	var errs []error

	scopes := t.Scopes.Data()
	roots := 0
	for i := range scopes {
		id := toScopeID(i + 1)
		scope := &scopes[i]
		if !scope.Parent.IsValid() {
			roots++
			if id != t.Global {
				errs = append(errs, fmt.Errorf("scope %d has no parent but is not the global scope", id))
			}
		} else {
			if t.Scopes.Get(scope.Parent) == nil {
				errs = append(errs, fmt.Errorf("scope %d references missing parent %d", id, scope.Parent))
			} else if scope.Parent >= id {
				errs = append(errs, fmt.Errorf("scope %d has parent %d allocated after it", id, scope.Parent))
			}
		}
		for name, child := range scope.Children {
			cs := t.Scopes.Get(child)
			if cs == nil {
				errs = append(errs, fmt.Errorf("scope %d references missing child %d", id, child))
				continue
			}
			if cs.Parent != id || cs.Name != name {
				errs = append(errs, fmt.Errorf("scope %d child index entry %d does not point back", id, child))
			}
		}
		for _, symID := range scope.Symbols {
			sym := t.Symbols.Get(symID)
			if sym == nil {
				errs = append(errs, fmt.Errorf("scope %d references missing symbol %d", id, symID))
				continue
			}
			if sym.Scope != id {
				errs = append(errs, fmt.Errorf("symbol %d belongs to scope %d but listed in %d", symID, sym.Scope, id))
			}
		}
		for name, symID := range scope.NameIndex {
			sym := t.Symbols.Get(symID)
			if sym == nil || sym.Name != name || sym.Scope != id {
				errs = append(errs, fmt.Errorf("scope %d name index entry %d is inconsistent", id, symID))
			}
		}
	}
	if roots != 1 {
		errs = append(errs, fmt.Errorf("expected exactly one global scope, found %d", roots))
	}

	symbols := t.Symbols.Data()
	for i := range symbols {
		id := toSymbolID(i + 1)
		if t.Scopes.Get(symbols[i].Scope) == nil {
			errs = append(errs, fmt.Errorf("symbol %d references missing scope %d", id, symbols[i].Scope))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

func toScopeID(index int) ScopeID {
	value, err := safecast.Conv[uint32](index)
	if err != nil {
		panic(fmt.Errorf("scope id overflow: %w", err))
	}
	return ScopeID(value)
}

func toSymbolID(index int) SymbolID {
	value, err := safecast.Conv[uint32](index)
	if err != nil {
		panic(fmt.Errorf("symbol id overflow: %w", err))
	}
	return SymbolID(value)
}
