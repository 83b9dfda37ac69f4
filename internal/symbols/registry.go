package symbols

// TypeRegistry provides the item-definition scope used while parsing
// type-annotated expressions.
type TypeRegistry interface {
	// ItemDefScope allocates, under parent, a scope holding the item
	// definitions visible to the expression, and returns it.
	ItemDefScope(t *Table, parent ScopeID) ScopeID
}

// BuiltinRegistry knows no item definitions; its scope is empty.
type BuiltinRegistry struct{}

// ItemDefScope returns an empty untyped child of parent.
func (BuiltinRegistry) ItemDefScope(t *Table, parent ScopeID) ScopeID {
	return t.NewScope(ItemDefScopeName, parent, nil)
}

// ItemDefScopeName keys item-definition scopes in their parent.
const ItemDefScopeName = "<itemdef>"
