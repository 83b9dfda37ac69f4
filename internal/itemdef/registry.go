// Package itemdef keeps the user-defined item definitions (composite types
// and aliases) that variables and context entries can be typed with.
package itemdef

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"feelscope/internal/symbols"
	"feelscope/internal/types"
)

// ErrUnknownType is returned when a type reference names neither a built-in
// kind nor a registered definition.
var ErrUnknownType = errors.New("unknown type")

const listPrefix = "list of "

// Registry maps item-definition names to types. It implements
// symbols.TypeRegistry for the currently focused definition.
type Registry struct {
	items   map[string]*types.Composite
	aliases map[string]*types.Alias
	focus   *types.Composite
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		items:   make(map[string]*types.Composite),
		aliases: make(map[string]*types.Alias),
	}
}

// Define registers a composite type under its name.
func (r *Registry) Define(c *types.Composite) error {
	if c == nil || strings.TrimSpace(c.TypeName) == "" {
		return errors.New("item definition without a name")
	}
	if r.has(c.TypeName) {
		return fmt.Errorf("duplicate item definition %q", c.TypeName)
	}
	r.items[c.TypeName] = c
	return nil
}

// DefineAlias registers an alias of a built-in type.
func (r *Registry) DefineAlias(a *types.Alias) error {
	if a == nil || strings.TrimSpace(a.AliasName) == "" {
		return errors.New("alias without a name")
	}
	if r.has(a.AliasName) {
		return fmt.Errorf("duplicate item definition %q", a.AliasName)
	}
	r.aliases[a.AliasName] = a
	return nil
}

func (r *Registry) has(name string) bool {
	_, item := r.items[name]
	_, alias := r.aliases[name]
	return item || alias
}

// Lookup returns the composite registered under name.
func (r *Registry) Lookup(name string) (*types.Composite, bool) {
	c, ok := r.items[name]
	return c, ok
}

// Names lists composite and alias names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.items)+len(r.aliases))
	for name := range r.items {
		out = append(out, name)
	}
	for name := range r.aliases {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// TypeOf resolves a type reference: a built-in kind name, `list of <T>`,
// an alias or a registered composite. Registered names win over built-ins.
func (r *Registry) TypeOf(ref string) (types.Type, error) {
	name := strings.TrimSpace(ref)
	if name == "" {
		return nil, fmt.Errorf("%w: empty type reference", ErrUnknownType)
	}
	if len(name) > len(listPrefix) && strings.EqualFold(name[:len(listPrefix)], listPrefix) {
		elem, err := r.TypeOf(name[len(listPrefix):])
		if err != nil {
			return nil, err
		}
		return types.ListOf(elem), nil
	}
	if c, ok := r.items[name]; ok {
		return c, nil
	}
	if a, ok := r.aliases[name]; ok {
		return a, nil
	}
	if k, ok := types.ParseKind(name); ok {
		return types.FromKind(k), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, name)
}

// Focus selects the definition whose fields populate ItemDefScope. An
// empty name clears the focus.
func (r *Registry) Focus(name string) error {
	if name == "" {
		r.focus = nil
		return nil
	}
	c, ok := r.items[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownType, name)
	}
	r.focus = c
	return nil
}

// Focused returns the focused definition, or nil.
func (r *Registry) Focused() *types.Composite { return r.focus }

// ItemDefScope allocates a child of parent typed with the focused
// definition and defines its fields. Without a focus the scope is empty.
func (r *Registry) ItemDefScope(t *symbols.Table, parent symbols.ScopeID) symbols.ScopeID {
	if r.focus == nil {
		return t.NewScope(symbols.ItemDefScopeName, parent, nil)
	}
	scope := t.NewScope(symbols.ItemDefScopeName, parent, r.focus)
	for _, f := range r.focus.Fields {
		t.Define(scope, f.Name, symbols.SymbolVariable, f.Type)
	}
	return scope
}

var _ symbols.TypeRegistry = (*Registry)(nil)
