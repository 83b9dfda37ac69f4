package ast

import (
	"feelscope/internal/source"
)

// ExprKind mirrors the grammar productions the resolver inspects.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	// ExprQualifiedName is `a.b.c`; Parts holds the unescaped segments.
	ExprQualifiedName
	// ExprPrimaryName wraps a qualified name used as a primary.
	ExprPrimaryName
	// ExprPrimary wraps any primary expression.
	ExprPrimary
	// ExprUnary is a non-signed unary expression around a primary.
	ExprUnary
	// ExprFilterPath is `Base[Filter]` or `Base.Name`.
	ExprFilterPath
	// ExprNameRef is a single name token.
	ExprNameRef
	// ExprKeyString is a quoted context key; its text needs un-escaping.
	ExprKeyString
	ExprLiteral
	// ExprOther stands for any computed expression the resolver does not look into.
	ExprOther
)

func (k ExprKind) String() string {
	switch k {
	case ExprQualifiedName:
		return "qualified-name"
	case ExprPrimaryName:
		return "primary-name"
	case ExprPrimary:
		return "primary"
	case ExprUnary:
		return "unary"
	case ExprFilterPath:
		return "filter-path"
	case ExprNameRef:
		return "name"
	case ExprKeyString:
		return "key-string"
	case ExprLiteral:
		return "literal"
	case ExprOther:
		return "other"
	default:
		return "invalid"
	}
}

// Expr is a parse-tree node. Which fields are used depends on Kind.
type Expr struct {
	Kind ExprKind
	Span source.Span
	// Operand is the wrapped node of PrimaryName, Primary and Unary.
	Operand ExprID
	// Base and Filter belong to FilterPath; Name is the member after a dot.
	Base   ExprID
	Filter ExprID
	Name   string
	// Parts are the segments of a qualified name.
	Parts []string
	// Children of ExprOther nodes, in source order.
	Children []ExprID
}
