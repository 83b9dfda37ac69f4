package token

import (
	"reflect"
	"testing"
)

func TestSplitName(t *testing.T) {
	cases := []struct {
		name string
		want []string
	}{
		{"year", []string{"year"}},
		{"time offset", []string{"time", "offset"}},
		{"  start   included ", []string{"start", "included"}},
		{"net-income", []string{"net", "-", "income"}},
		{"Mr. Smith's age", []string{"Mr", ".", "Smith", "'", "s", "age"}},
		{"level 2", []string{"level", "2"}},
		{"x2", []string{"x2"}},
		{"date and time", []string{"date", "and", "time"}},
	}
	for _, tc := range cases {
		if got := Texts(tc.name); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Texts(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestSplitNameClassifiesKeywords(t *testing.T) {
	frags := SplitName("date and time")
	if frags[1].Kind != KwAnd {
		t.Fatalf("expected 'and' to be classified as keyword, got %v", frags[1].Kind)
	}
	if frags[0].Kind != Ident {
		t.Fatalf("expected 'date' to be ident, got %v", frags[0].Kind)
	}
}

func TestSplitNameNormalisesNFC(t *testing.T) {
	decomposed := "cafe\u0301"
	got := Texts(decomposed)
	if len(got) != 1 || got[0] != "caf\u00e9" {
		t.Fatalf("Texts(%q) = %q, want NFC form", decomposed, got)
	}
}

func TestIsNamePartValid(t *testing.T) {
	valid := []string{"year", "_tmp", "?", "42", "-", "'", "x1"}
	for _, f := range valid {
		if !IsNamePartValid(f) {
			t.Fatalf("IsNamePartValid(%q) = false", f)
		}
	}
	invalid := []string{"", "and", "for", "in", "1abc", "(", "[", ","}
	for _, f := range invalid {
		if IsNamePartValid(f) {
			t.Fatalf("IsNamePartValid(%q) = true", f)
		}
	}
}

func TestReusableKeywords(t *testing.T) {
	if !IsReusableKeyword("and") {
		t.Fatalf("'and' should be reusable inside names")
	}
	if IsReusableKeyword("in") || IsReusableKeyword("between") {
		t.Fatalf("'in' and 'between' must not be reusable")
	}
	if IsReusableKeyword("year") {
		t.Fatalf("non-keywords are not reusable keywords")
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := LookupKeyword("satisfies"); !ok || k != KwSatisfies {
		t.Fatalf("LookupKeyword(satisfies) = %v, %v", k, ok)
	}
	// регистр важен
	if _, ok := LookupKeyword("For"); ok {
		t.Fatalf("keywords are case-sensitive")
	}
}
