package types

import "testing"

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"number":                    KindNumber,
		"date and time":             KindDateTime,
		"Date  And   Time":          KindDateTime,
		"dateTime":                  KindDateTime,
		"days and time duration":    KindDaysTimeDuration,
		"dayTimeDuration":           KindDaysTimeDuration,
		"years and months duration": KindYearsMonthsDuration,
		"range":                     KindRange,
		"Any":                       KindAny,
	}
	for name, want := range cases {
		got, ok := ParseKind(name)
		if !ok {
			t.Fatalf("ParseKind(%q) = !ok, want %v", name, want)
		}
		if got != want {
			t.Fatalf("ParseKind(%q) = %v, want %v", name, got, want)
		}
	}
	if _, ok := ParseKind("tPerson"); ok {
		t.Fatalf("ParseKind(tPerson) should fail")
	}
}

func TestBuiltinUnwrapsAlias(t *testing.T) {
	alias := &Alias{AliasName: "birthday", Base: Date}
	kind, ok := Builtin(alias)
	if !ok || kind != KindDate {
		t.Fatalf("Builtin(alias) = %v, %v; want date, true", kind, ok)
	}
	if _, ok := Builtin(&Composite{TypeName: "tPerson"}); ok {
		t.Fatalf("composite must not unwrap to a builtin kind")
	}
}

func TestElemUnwrapsGenList(t *testing.T) {
	person := &Composite{TypeName: "tPerson"}
	if got := Elem(ListOf(person)); got != person {
		t.Fatalf("Elem(list<tPerson>) = %v", got)
	}
	if got := Elem(Number); got != Number {
		t.Fatalf("Elem(number) = %v", got)
	}
}

func TestIsUnknown(t *testing.T) {
	if !IsUnknown(Unknown) {
		t.Fatalf("Unknown must be unknown")
	}
	if IsUnknown(nil) {
		t.Fatalf("nil type is untyped, not unknown")
	}
	if IsUnknown(&Alias{AliasName: "x", Base: Unknown}) {
		t.Fatalf("alias over unknown is a distinct type")
	}
}

func TestEqual(t *testing.T) {
	if !Equal(ListOf(Number), ListOf(FromKind(KindNumber))) {
		t.Fatalf("list<number> should equal itself")
	}
	if Equal(Number, String) {
		t.Fatalf("number != string")
	}
	if !Equal(&Composite{TypeName: "a"}, &Composite{TypeName: "a"}) {
		t.Fatalf("composites compare by name")
	}
}

func TestCompositeFieldLookup(t *testing.T) {
	c := &Composite{TypeName: "tPerson", Fields: []Field{{Name: "age", Type: Number}}}
	if ft, ok := c.Field("age"); !ok || ft != Number {
		t.Fatalf("Field(age) = %v, %v", ft, ok)
	}
	if _, ok := c.Field("name"); ok {
		t.Fatalf("unexpected field name")
	}
}
