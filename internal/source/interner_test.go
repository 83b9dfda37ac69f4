package source

import "testing"

func TestInternerBasic(t *testing.T) {
	interner := NewInterner()

	// NoStringID зарезервирован для пустой строки
	if s, ok := interner.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("NoStringID must map to empty string, got %q, ok=%v", s, ok)
	}
	id1 := interner.Intern("time offset")
	if id1 == NoStringID {
		t.Fatalf("Intern returned NoStringID")
	}
	if id2 := interner.Intern("time offset"); id2 != id1 {
		t.Fatalf("Intern not stable: %d != %d", id1, id2)
	}
	if got := interner.MustLookup(id1); got != "time offset" {
		t.Fatalf("MustLookup = %q", got)
	}
	if _, ok := interner.Find("missing"); ok {
		t.Fatalf("Find must not intern")
	}
	if interner.Len() != 2 {
		t.Fatalf("Len = %d, want 2", interner.Len())
	}
}

func TestInternerCopiesInput(t *testing.T) {
	interner := NewInterner()
	buf := []byte("year")
	id := interner.Intern(string(buf))
	buf[0] = 'Y'
	if got := interner.MustLookup(id); got != "year" {
		t.Fatalf("interned string changed: %q", got)
	}
}
