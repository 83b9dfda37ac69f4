package symbols

import (
	"fmt"

	"feelscope/internal/ast"
	"feelscope/internal/config"
	"feelscope/internal/diag"
	"feelscope/internal/source"
	"feelscope/internal/trace"
	"feelscope/internal/types"
)

// Options configure a Resolver.
type Options struct {
	Features config.Features
	Registry TypeRegistry
	Reporter diag.Reporter
	Tracer   trace.Tracer
	// TraceParent is the span the resolver's trace points attach to.
	TraceParent uint64
	// Files and Tree let the resolver read node text and positions.
	Files *source.FileSet
	Tree  *ast.Builder
	// Table is reused when set; otherwise a fresh one is created.
	Table     *Table
	Hints     Hints
	NoPrelude bool
	Prelude   []PreludeEntry
}

// Resolver tracks scopes and names while one expression is parsed. It is
// not safe for concurrent use.
type Resolver struct {
	table    *Table
	current  ScopeID
	names    []string
	dynamic  int
	features config.Features
	registry TypeRegistry
	reporter diag.Reporter
	tracer   trace.Tracer
	parent   uint64
	files    *source.FileSet
	tree     *ast.Builder
}

// NewResolver creates a resolver positioned at the global scope with the
// name stack holding only the local marker.
func NewResolver(opts Options) *Resolver {
	table := opts.Table
	if table == nil {
		table = NewTable(opts.Hints, nil)
	}
	registry := opts.Registry
	if registry == nil {
		registry = BuiltinRegistry{}
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	r := &Resolver{
		table:    table,
		current:  table.Global,
		names:    []string{LocalScopeName},
		features: opts.Features,
		registry: registry,
		reporter: opts.Reporter,
		tracer:   tracer,
		parent:   opts.TraceParent,
		files:    opts.Files,
		tree:     opts.Tree,
	}
	if opts.Table == nil && !opts.NoPrelude {
		prelude := opts.Prelude
		if prelude == nil {
			prelude = DefaultPrelude()
		}
		for _, e := range prelude {
			table.Define(table.Global, e.Name, e.Kind, e.Type)
		}
	}
	return r
}

// Table exposes the underlying symbol table.
func (r *Resolver) Table() *Table { return r.table }

// Current returns the scope the cursor sits on.
func (r *Resolver) Current() ScopeID { return r.current }

// CurrentScope returns the scope the cursor sits on.
func (r *Resolver) CurrentScope() *Scope { return r.table.Scopes.Get(r.current) }

// Features returns the feature toggles the resolver was built with.
func (r *Resolver) Features() config.Features { return r.features }

// Depth reports how many scopes sit above the global scope.
func (r *Resolver) Depth() int {
	depth := 0
	for id := r.current; id.IsValid() && id != r.table.Global; {
		s := r.table.Scopes.Get(id)
		if s == nil {
			break
		}
		depth++
		id = s.Parent
	}
	return depth
}

// PushScope opens an untyped child scope keyed by the current name.
func (r *Resolver) PushScope() {
	r.enterScope(r.CurrentName(), nil)
}

// PushTypedScope opens a child scope keyed by the current name and
// annotated with t.
func (r *Resolver) PushTypedScope(t types.Type) {
	r.enterScope(r.CurrentName(), t)
}

// PushTypeScope moves the cursor to the item-definition scope supplied by
// the type registry.
func (r *Resolver) PushTypeScope() {
	r.current = r.registry.ItemDefScope(r.table, r.current)
	r.tracePoint("push-type-scope", r.table.ScopeName(r.current))
}

func (r *Resolver) enterScope(name string, t types.Type) {
	r.current = r.table.NewScope(name, r.current, t)
	r.tracePoint("push-scope", name)
}

// PopScope moves the cursor to the parent scope. Popping the global scope
// panics with ErrScopeUnderflow.
func (r *Resolver) PopScope() {
	s := r.table.Scopes.Get(r.current)
	if s == nil || !s.Parent.IsValid() {
		panic(fmt.Errorf("%w (depth %d)", ErrScopeUnderflow, r.Depth()))
	}
	r.tracePoint("pop-scope", r.table.ScopeName(r.current))
	r.current = s.Parent
}

// PushName pushes a name onto the name stack.
func (r *Resolver) PushName(name string) {
	r.names = append(r.names, name)
}

// PushNameOf pushes the source text of node; key strings are unescaped.
func (r *Resolver) PushNameOf(id ast.ExprID) {
	r.PushName(r.NodeText(id))
}

// PopName drops the top of the name stack. Popping the local marker at
// the bottom panics with ErrNameUnderflow.
func (r *Resolver) PopName() {
	if len(r.names) <= 1 {
		panic(fmt.Errorf("%w (depth %d)", ErrNameUnderflow, r.Depth()))
	}
	r.names = r.names[:len(r.names)-1]
}

// CurrentName returns the top of the name stack.
func (r *Resolver) CurrentName() string {
	return r.names[len(r.names)-1]
}

// NodeText returns the original text of a parse-tree node; quoted keys are
// unescaped.
func (r *Resolver) NodeText(id ast.ExprID) string {
	if r.tree == nil || r.files == nil {
		return ""
	}
	e := r.tree.Get(id)
	if e == nil {
		return ""
	}
	text := r.files.Text(e.Span)
	if e.Kind == ast.ExprKeyString {
		return source.UnescapeKey(text)
	}
	return text
}

// DefineVariable declares an untyped variable in the current scope.
func (r *Resolver) DefineVariable(name string) {
	r.DefineTypedVariable(name, nil)
}

// DefineTypedVariable declares a variable of type t in the current scope.
func (r *Resolver) DefineTypedVariable(name string, t types.Type) {
	r.table.Define(r.current, name, SymbolVariable, t)
	r.tracePoint("define", name)
}

// DefineVariableOf declares an untyped variable named after the text of node.
func (r *Resolver) DefineVariableOf(id ast.ExprID) {
	r.DefineVariable(r.NodeText(id))
}

// Resolve looks name up from the current scope outwards.
func (r *Resolver) Resolve(name string) (*Symbol, bool) {
	id := r.table.Lookup(r.current, name)
	if !id.IsValid() {
		return nil, false
	}
	return r.table.Symbols.Get(id), true
}

func (r *Resolver) tracePoint(name, detail string) {
	if r.tracer == nil || !r.tracer.Enabled() {
		return
	}
	trace.Point(r.tracer, trace.ScopeResolver, name, detail, r.parent)
}
