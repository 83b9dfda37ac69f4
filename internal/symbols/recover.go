package symbols

import "feelscope/internal/types"

// RecoverScope moves into the scope denoted by name. An existing child scope
// is re-entered. Otherwise name is resolved and a scope exposing the members
// of its type is pushed: composite fields, built-in members, or nothing for
// untyped and unresolved names. Unknown-typed scopes turn on dynamic
// resolution. Every call must be paired with DismissScope.
func (r *Resolver) RecoverScope(name string) {
	if child, ok := r.table.Child(r.current, name); ok {
		r.current = child
		r.tracePoint("reenter-scope", name)
		if types.IsUnknown(r.table.Scopes.Get(child).Type) {
			r.EnableDynamicResolution()
		}
		return
	}

	var t types.Type
	if sym, ok := r.Resolve(name); ok {
		t = types.Elem(sym.Type)
	}
	switch tt := t.(type) {
	case *types.Composite:
		r.enterScope(name, tt)
		for _, f := range tt.Fields {
			r.DefineTypedVariable(f.Name, f.Type)
		}
	case *types.Simple, *types.Alias:
		kind, _ := types.Builtin(tt)
		r.enterScope(name, types.FromKind(kind))
		r.expandBuiltin(tt)
	default:
		r.enterScope(name, nil)
	}
}

// RecoverCurrentScope recovers the scope named by the top of the name stack.
func (r *Resolver) RecoverCurrentScope() {
	r.RecoverScope(r.CurrentName())
}

// DismissScope leaves a scope entered by RecoverScope, turning dynamic
// resolution off again for unknown-typed scopes.
func (r *Resolver) DismissScope() {
	if s := r.CurrentScope(); s != nil && types.IsUnknown(s.Type) {
		r.DisableDynamicResolution()
	}
	r.PopScope()
}
