package diag

import (
	"testing"

	"feelscope/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 3; i++ {
		bag.Add(NewError(FeelUnknownVariable, source.Span{Start: uint32(i)}, "x"))
	}
	if bag.Len() != 2 {
		t.Fatalf("expected bag to stop at 2, got %d", bag.Len())
	}
	if !bag.HasErrors() {
		t.Fatalf("expected HasErrors")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(8)
	bag.Add(New(SevWarning, FeelInfo, source.Span{Start: 4, End: 5}, "w"))
	bag.Add(NewError(FeelUnknownVariable, source.Span{Start: 0, End: 1}, "b"))
	bag.Add(New(SevWarning, FeelInfo, source.Span{Start: 0, End: 1}, "a"))
	bag.Sort()

	items := bag.Items()
	if items[0].Severity != SevError || items[1].Message != "a" || items[2].Primary.Start != 4 {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestBagCountsDropped(t *testing.T) {
	bag := NewBag(1)
	bag.Add(NewError(FeelUnknownVariable, source.Span{}, "a"))
	if bag.Add(NewError(FeelUnknownVariable, source.Span{}, "b")) {
		t.Fatalf("second add should be rejected")
	}
	if bag.Dropped() != 1 {
		t.Fatalf("dropped = %d", bag.Dropped())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(8)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 0, End: 1}
	r.Report(NewError(FeelUnknownType, sp, "Unknown type 'tX'"))
	r.Report(NewError(FeelUnknownType, sp, "Unknown type 'tX'"))
	r.Report(NewError(FeelUnknownType, source.Span{Start: 2, End: 3}, "Unknown type 'tX'"))
	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", bag.Len())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	var got []Diagnostic
	r := ReporterFunc(func(d Diagnostic) { got = append(got, d) })

	b := ReportError(r, FeelUnknownVariable, source.Span{}, "Unknown variable 'a.b'").
		At(source.Position{Line: 3, Column: 0}).
		WithName("a.b")
	b.Emit()
	b.Emit()

	if len(got) != 1 {
		t.Fatalf("expected exactly one emission, got %d", len(got))
	}
	d := got[0]
	if d.Line != 3 || d.Column != 0 || d.Name != "a.b" || d.Severity != SevError {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}

func TestReportBuilderNilReporter(t *testing.T) {
	b := ReportError(nil, FeelUnknownVariable, source.Span{}, "x")
	if b != nil {
		t.Fatalf("expected nil builder for nil reporter")
	}
	// цепочка на nil не паникует
	b.At(source.Position{}).WithName("x").WithNote(source.Span{}, "n").Emit()
}

func TestDedupReporterDropsIdentical(t *testing.T) {
	bag := NewBag(8)
	r := NewDedupReporter(BagReporter{Bag: bag})
	d := NewError(FeelUnknownVariable, source.Span{Start: 1, End: 2}, "Unknown variable 'x'")
	r.Report(d)
	r.Report(d)
	if bag.Len() != 1 {
		t.Fatalf("expected duplicates to be dropped, got %d", bag.Len())
	}
}

func TestCodeID(t *testing.T) {
	if got := FeelUnknownVariable.ID(); got != "FEEL3001" {
		t.Fatalf("ID = %q", got)
	}
	if got := IOScenarioSyntax.ID(); got != "IO4002" {
		t.Fatalf("ID = %q", got)
	}
	if got := Code(9999).Title(); got != "Unknown error" {
		t.Fatalf("Title = %q", got)
	}
}

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("expr.feel", []byte("x +\n  y.z"))
	diags := []Diagnostic{
		{Severity: SevError, Code: FeelUnknownVariable, Message: "Unknown variable 'y.z'", Primary: source.Span{File: id, Start: 6, End: 9}},
		{Severity: SevError, Code: FeelUnknownVariable, Message: "Unknown variable\n'x'", Primary: source.Span{File: id, Start: 0, End: 1}, Line: 1, Column: 0},
	}
	want := "error FEEL3001 expr.feel:1:0 Unknown variable 'x'\n" +
		"error FEEL3001 expr.feel:2:2 Unknown variable 'y.z'"
	if got := FormatShort(diags, fs); got != want {
		t.Fatalf("unexpected output:\nwant:\n%s\ngot:\n%s", want, got)
	}
}
