package symbols

import (
	"bytes"
	"strings"
	"testing"

	"feelscope/internal/config"
	"feelscope/internal/types"
)

func TestTableGlobalScope(t *testing.T) {
	table := NewTable(Hints{}, nil)
	if !table.Global.IsValid() {
		t.Fatalf("expected valid global scope")
	}
	if got := table.ScopeName(table.Global); got != GlobalScopeName {
		t.Fatalf("global scope name = %q", got)
	}
	if err := table.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestTableChildReplacedKeepsOldScope(t *testing.T) {
	table := NewTable(Hints{}, nil)
	first := table.NewScope("ctx", table.Global, nil)
	second := table.NewScope("ctx", table.Global, types.Number)

	child, ok := table.Child(table.Global, "ctx")
	if !ok || child != second {
		t.Fatalf("expected latest child %d, got %d (%v)", second, child, ok)
	}
	if table.Scopes.Get(first) == nil {
		t.Fatalf("expected replaced scope to stay in the arena")
	}
	if err := table.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestTableLookupShadowing(t *testing.T) {
	table := NewTable(Hints{}, nil)
	outer := table.Define(table.Global, "x", SymbolVariable, types.Number)
	inner := table.NewScope("inner", table.Global, nil)
	shadow := table.Define(inner, "x", SymbolVariable, types.String)

	if got := table.Lookup(inner, "x"); got != shadow {
		t.Fatalf("inner lookup = %d, want %d", got, shadow)
	}
	if got := table.Lookup(table.Global, "x"); got != outer {
		t.Fatalf("outer lookup = %d, want %d", got, outer)
	}
	if got := table.Lookup(inner, "missing"); got.IsValid() {
		t.Fatalf("expected missing name to stay unresolved, got %d", got)
	}
}

func TestTableValidateDetectsBrokenIndex(t *testing.T) {
	table := NewTable(Hints{}, nil)
	scope := table.NewScope("ctx", table.Global, nil)
	table.Define(scope, "x", SymbolVariable, nil)

	sym := table.Symbols.Get(table.LookupLocal(scope, "x"))
	sym.Scope = table.Global

	if err := table.Validate(); err == nil {
		t.Fatalf("expected validation error for misplaced symbol")
	}
}

func TestTokenTreeMatchesMultiWordNames(t *testing.T) {
	tree := NewTokenTree()
	tree.AddName([]string{"first", "name"})
	tree.AddName([]string{"first", "order"})

	tree.Start("first")
	if !tree.FollowUp("name", true) || !tree.FollowUp("order", true) {
		t.Fatalf("expected both continuations to be predicted")
	}
	if !tree.FollowUp("name", false) {
		t.Fatalf("expected commit to match")
	}
	if !tree.AtName() {
		t.Fatalf("expected cursor at a complete name")
	}
	if tree.FollowUp("order", true) {
		t.Fatalf("cursor should have moved past the shared prefix")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	r := NewResolver(Options{})
	r.DefineTypedVariable("customer", customerType())
	r.RecoverScope("customer")
	customerScope := r.Current()
	r.DismissScope()

	var buf bytes.Buffer
	if err := r.Table().EncodeSnapshot(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	snap, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(snap.Scopes) != r.Table().Scopes.Len() {
		t.Fatalf("scopes = %d, want %d", len(snap.Scopes), r.Table().Scopes.Len())
	}
	rec := snap.Scope(uint32(customerScope))
	if rec == nil {
		t.Fatalf("missing customer scope record")
	}
	if rec.Type != "tCustomer" {
		t.Fatalf("scope type = %q", rec.Type)
	}
	if len(rec.Symbols) != 2 || rec.Symbols[0].Name != "name" || rec.Symbols[1].Name != "age" {
		t.Fatalf("unexpected symbols %+v", rec.Symbols)
	}
	path := strings.Join(snap.Path(uint32(customerScope)), "/")
	if path != GlobalScopeName+"/customer" {
		t.Fatalf("path = %q", path)
	}
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	if _, err := DecodeSnapshot(bytes.NewReader([]byte{0xc1})); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDumpListsShadowedScopes(t *testing.T) {
	r := NewResolver(Options{NoPrelude: true})
	r.PushName("ctx")
	r.PushScope()
	r.DefineVariable("a")
	r.PopScope()
	r.PushScope()
	r.DefineVariable("b")
	r.PopScope()

	var buf bytes.Buffer
	if err := r.Table().Dump(&buf, DumpOptions{}); err != nil {
		t.Fatalf("dump: %v", err)
	}
	out := buf.String()
	if strings.Count(out, `"ctx"`) != 2 {
		t.Fatalf("expected both ctx scopes in dump:\n%s", out)
	}
	if !strings.Contains(out, `variable "a"`) || !strings.Contains(out, `variable "b"`) {
		t.Fatalf("expected both variables in dump:\n%s", out)
	}
}

func TestDumpSkipPreludeKeepsVariables(t *testing.T) {
	r := NewResolver(Options{Features: config.Default()})
	r.DefineTypedVariable("order", types.Number)

	var buf bytes.Buffer
	if err := r.Table().Dump(&buf, DumpOptions{SkipPrelude: true}); err != nil {
		t.Fatalf("dump: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `variable "order" : number`) {
		t.Fatalf("global variable hidden:\n%s", out)
	}
	if strings.Contains(out, `function "date and time"`) || strings.Contains(out, `type "`) {
		t.Fatalf("prelude shown:\n%s", out)
	}

	buf.Reset()
	if err := r.Table().Dump(&buf, DumpOptions{}); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(buf.String(), `function "date and time"`) {
		t.Fatalf("prelude missing from full dump:\n%s", buf.String())
	}
}
