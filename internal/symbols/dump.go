package symbols

import (
	"fmt"
	"io"
	"strings"
)

// DumpOptions control Dump output.
type DumpOptions struct {
	// SkipPrelude hides the builtin functions and type names of the global
	// scope. Variables defined there are still shown.
	SkipPrelude bool
}

// Dump writes an indented rendering of every scope and its symbols,
// including scopes shadowed by a later scope of the same name.
func (t *Table) Dump(w io.Writer, opts DumpOptions) error {
	nested := make(map[ScopeID][]ScopeID)
	scopes := t.Scopes.Data()
	for i := range scopes {
		if p := scopes[i].Parent; p.IsValid() {
			nested[p] = append(nested[p], toScopeID(i+1))
		}
	}
	return t.dumpScope(w, t.Global, 0, nested, opts)
}

func (t *Table) dumpScope(w io.Writer, id ScopeID, depth int, nested map[ScopeID][]ScopeID, opts DumpOptions) error {
	s := t.Scopes.Get(id)
	if s == nil {
		return nil
	}
	indent := strings.Repeat("  ", depth)
	header := fmt.Sprintf("%sscope#%d %q", indent, id, t.Strings.MustLookup(s.Name))
	if s.Type != nil {
		header += " : " + s.Type.Name()
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	hidePrelude := id == t.Global && opts.SkipPrelude
	for _, symID := range s.Symbols {
		sym := t.Symbols.Get(symID)
		if sym == nil || (hidePrelude && sym.Kind != SymbolVariable) {
			continue
		}
		line := fmt.Sprintf("%s  %s %q", indent, sym.Kind, t.Strings.MustLookup(sym.Name))
		if sym.Type != nil {
			line += " : " + sym.Type.Name()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, child := range nested[id] {
		if err := t.dumpScope(w, child, depth+1, nested, opts); err != nil {
			return err
		}
	}
	return nil
}
