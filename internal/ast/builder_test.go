package ast

import (
	"testing"

	"feelscope/internal/source"
)

func TestNewNamePrimaryChain(t *testing.T) {
	b := NewBuilder(0)
	span := source.Span{Start: 0, End: 5}
	id := b.NewNamePrimary(span, "a", "b")

	kinds := []ExprKind{ExprUnary, ExprPrimary, ExprPrimaryName, ExprQualifiedName}
	cur := id
	for i, want := range kinds {
		e := b.Get(cur)
		if e == nil {
			t.Fatalf("step %d: nil node", i)
		}
		if e.Kind != want {
			t.Fatalf("step %d: kind %v, want %v", i, e.Kind, want)
		}
		if e.Span != span {
			t.Fatalf("step %d: span %v, want %v", i, e.Span, span)
		}
		cur = e.Operand
	}
	qn := b.Get(b.Get(b.Get(b.Get(id).Operand).Operand).Operand)
	if len(qn.Parts) != 2 || qn.Parts[1] != "b" {
		t.Fatalf("parts = %v", qn.Parts)
	}
}

func TestLeavesInSourceOrder(t *testing.T) {
	b := NewBuilder(0)
	x := b.NewNameRef(source.Span{Start: 0, End: 1})
	lit := b.NewLiteral(source.Span{Start: 4, End: 5})
	sum := b.NewOther(source.Span{Start: 0, End: 5}, x, lit)
	fp := b.NewFilterPath(source.Span{Start: 0, End: 8}, sum, b.NewLiteral(source.Span{Start: 6, End: 7}), "")

	leaves := b.Leaves(fp, nil)
	if len(leaves) != 3 || leaves[0] != x || leaves[1] != lit {
		t.Fatalf("leaves = %v", leaves)
	}
}

func TestGetInvalid(t *testing.T) {
	b := NewBuilder(0)
	if b.Get(NoExprID) != nil {
		t.Fatalf("NoExprID must resolve to nil")
	}
	if b.Get(ExprID(99)) != nil {
		t.Fatalf("out of range id must resolve to nil")
	}
}
