package ast

import (
	"feelscope/internal/source"
)

// Builder allocates parse-tree nodes for one expression.
type Builder struct {
	Exprs *Arena[Expr]
}

// NewBuilder returns a builder with an arena sized by capHint (0 = default).
func NewBuilder(capHint uint) *Builder {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Builder{Exprs: NewArena[Expr](capHint)}
}

func (b *Builder) new(e Expr) ExprID {
	return ExprID(b.Exprs.Allocate(e))
}

// Get returns the node or nil for NoExprID.
func (b *Builder) Get(id ExprID) *Expr {
	if b == nil {
		return nil
	}
	return b.Exprs.Get(uint32(id))
}

func (b *Builder) NewQualifiedName(span source.Span, parts ...string) ExprID {
	return b.new(Expr{Kind: ExprQualifiedName, Span: span, Parts: append([]string(nil), parts...)})
}

func (b *Builder) NewNameRef(span source.Span) ExprID {
	return b.new(Expr{Kind: ExprNameRef, Span: span})
}

func (b *Builder) NewKeyString(span source.Span) ExprID {
	return b.new(Expr{Kind: ExprKeyString, Span: span})
}

func (b *Builder) NewLiteral(span source.Span) ExprID {
	return b.new(Expr{Kind: ExprLiteral, Span: span})
}

func (b *Builder) NewOther(span source.Span, children ...ExprID) ExprID {
	return b.new(Expr{Kind: ExprOther, Span: span, Children: append([]ExprID(nil), children...)})
}

func (b *Builder) wrap(kind ExprKind, operand ExprID) ExprID {
	var span source.Span
	if e := b.Get(operand); e != nil {
		span = e.Span
	}
	return b.new(Expr{Kind: kind, Span: span, Operand: operand})
}

func (b *Builder) NewPrimaryName(qn ExprID) ExprID  { return b.wrap(ExprPrimaryName, qn) }
func (b *Builder) NewPrimary(operand ExprID) ExprID { return b.wrap(ExprPrimary, operand) }
func (b *Builder) NewUnary(operand ExprID) ExprID   { return b.wrap(ExprUnary, operand) }

// NewFilterPath builds `base[filter]`; filter may be NoExprID for `base.name`.
func (b *Builder) NewFilterPath(span source.Span, base, filter ExprID, name string) ExprID {
	return b.new(Expr{Kind: ExprFilterPath, Span: span, Base: base, Filter: filter, Name: name})
}

// NewNamePrimary is shorthand for Unary(Primary(PrimaryName(QualifiedName))),
// the chain a parser produces for a bare dotted name in operand position.
func (b *Builder) NewNamePrimary(span source.Span, parts ...string) ExprID {
	return b.NewUnary(b.NewPrimary(b.NewPrimaryName(b.NewQualifiedName(span, parts...))))
}

// Leaves collects the leaf nodes under id in source order.
func (b *Builder) Leaves(id ExprID, out []ExprID) []ExprID {
	e := b.Get(id)
	if e == nil {
		return out
	}
	var kids []ExprID
	switch e.Kind {
	case ExprPrimaryName, ExprPrimary, ExprUnary:
		kids = []ExprID{e.Operand}
	case ExprFilterPath:
		kids = []ExprID{e.Base, e.Filter}
	case ExprOther:
		kids = e.Children
	}
	if len(kids) == 0 {
		return append(out, id)
	}
	for _, k := range kids {
		if k.IsValid() {
			out = b.Leaves(k, out)
		}
	}
	return out
}
