package symbols

import "feelscope/internal/ast"

// PathScopeEnter recovers one scope per segment when node is a filter or
// path expression over a plain qualified name, so that names inside the
// filter resolve against the members of the base. It returns the number of
// scopes entered; pass it to PathScopeExit.
func (r *Resolver) PathScopeEnter(id ast.ExprID) int {
	parts, ok := r.pathBase(id)
	if !ok {
		return 0
	}
	for _, p := range parts {
		r.RecoverScope(p)
	}
	return len(parts)
}

// PathScopeExit dismisses n scopes entered by PathScopeEnter.
func (r *Resolver) PathScopeExit(n int) {
	for range n {
		r.DismissScope()
	}
}

// WithPathScope runs fn between PathScopeEnter and PathScopeExit. The
// scopes are dismissed even when fn panics.
func (r *Resolver) WithPathScope(id ast.ExprID, fn func()) {
	n := r.PathScopeEnter(id)
	defer r.PathScopeExit(n)
	fn()
}

func (r *Resolver) pathBase(id ast.ExprID) ([]string, bool) {
	if r.tree == nil {
		return nil, false
	}
	e := r.tree.Get(id)
	if e == nil || e.Kind != ast.ExprFilterPath {
		return nil, false
	}
	if !e.Filter.IsValid() || !e.Base.IsValid() {
		return nil, false
	}
	cur := r.tree.Get(e.Base)
	for _, want := range []ast.ExprKind{ast.ExprUnary, ast.ExprPrimary, ast.ExprPrimaryName} {
		if cur == nil || cur.Kind != want {
			return nil, false
		}
		cur = r.tree.Get(cur.Operand)
	}
	if cur == nil || cur.Kind != ast.ExprQualifiedName {
		return nil, false
	}
	return cur.Parts, true
}
