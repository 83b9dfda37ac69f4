package types

import (
	"fmt"
	"strings"
)

// Kind enumerates the built-in FEEL kinds.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNumber
	KindBoolean
	KindString
	KindDate
	KindTime
	KindDateTime
	KindDuration
	KindYearsMonthsDuration
	KindDaysTimeDuration
	KindRange
	KindList
	KindContext
	KindFunction
	KindAny
)

var kindNames = [...]string{
	KindUnknown:             "unknown",
	KindNumber:              "number",
	KindBoolean:             "boolean",
	KindString:              "string",
	KindDate:                "date",
	KindTime:                "time",
	KindDateTime:            "date and time",
	KindDuration:            "duration",
	KindYearsMonthsDuration: "years and months duration",
	KindDaysTimeDuration:    "days and time duration",
	KindRange:               "range",
	KindList:                "list",
	KindContext:             "context",
	KindFunction:            "function",
	KindAny:                 "Any",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind maps a FEEL type name to its Kind. Matching ignores case and
// collapses runs of whitespace, so "date  and Time" is accepted.
func ParseKind(name string) (Kind, bool) {
	norm := strings.ToLower(strings.Join(strings.Fields(name), " "))
	switch norm {
	case "daytimeduration":
		return KindDaysTimeDuration, true
	case "yearmonthduration":
		return KindYearsMonthsDuration, true
	case "datetime":
		return KindDateTime, true
	}
	for k, n := range kindNames {
		if strings.ToLower(n) == norm {
			return Kind(k), true
		}
	}
	return KindUnknown, false
}

// Type is the closed set of FEEL types the resolver understands:
// *Simple, *Composite, *GenList and *Alias.
type Type interface {
	Name() string
	sealed()
}

// Simple is a built-in scalar type.
type Simple struct {
	Kind Kind
}

func (s *Simple) Name() string { return s.Kind.String() }
func (*Simple) sealed()        {}

// Field is a single named member of a composite type.
type Field struct {
	Name string
	Type Type
}

// Composite is a named structural type with ordered fields.
type Composite struct {
	TypeName string
	Fields   []Field
}

func (c *Composite) Name() string { return c.TypeName }
func (*Composite) sealed()        {}

// Field returns the type of the named field.
func (c *Composite) Field(name string) (Type, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// GenList is a list whose elements share one type.
type GenList struct {
	Elem Type
}

func (l *GenList) Name() string {
	if l.Elem == nil {
		return "list"
	}
	return "list<" + l.Elem.Name() + ">"
}
func (*GenList) sealed() {}

// Alias gives a built-in type an alternate name.
type Alias struct {
	AliasName string
	Base      *Simple
}

func (a *Alias) Name() string { return a.AliasName }
func (*Alias) sealed()        {}

// Predeclared built-in types.
var (
	Unknown  = &Simple{Kind: KindUnknown}
	Number   = &Simple{Kind: KindNumber}
	Boolean  = &Simple{Kind: KindBoolean}
	String   = &Simple{Kind: KindString}
	Date     = &Simple{Kind: KindDate}
	Time     = &Simple{Kind: KindTime}
	DateTime = &Simple{Kind: KindDateTime}
	Duration = &Simple{Kind: KindDuration}
	Range    = &Simple{Kind: KindRange}
	Context  = &Simple{Kind: KindContext}
	Function = &Simple{Kind: KindFunction}
	Any      = &Simple{Kind: KindAny}
)

// FromKind returns the predeclared Simple for k, allocating one for kinds
// without a predeclared value.
func FromKind(k Kind) *Simple {
	switch k {
	case KindUnknown:
		return Unknown
	case KindNumber:
		return Number
	case KindBoolean:
		return Boolean
	case KindString:
		return String
	case KindDate:
		return Date
	case KindTime:
		return Time
	case KindDateTime:
		return DateTime
	case KindDuration:
		return Duration
	case KindRange:
		return Range
	case KindContext:
		return Context
	case KindFunction:
		return Function
	case KindAny:
		return Any
	default:
		return &Simple{Kind: k}
	}
}

// ListOf wraps elem into a GenList.
func ListOf(elem Type) *GenList {
	return &GenList{Elem: elem}
}

// Builtin unwraps Simple and Alias types to their built-in kind.
func Builtin(t Type) (Kind, bool) {
	switch v := t.(type) {
	case *Simple:
		return v.Kind, true
	case *Alias:
		if v.Base == nil {
			return KindUnknown, true
		}
		return v.Base.Kind, true
	default:
		return KindUnknown, false
	}
}

// Elem unwraps a GenList to its element type; other types are returned as is.
func Elem(t Type) Type {
	if l, ok := t.(*GenList); ok {
		return l.Elem
	}
	return t
}

// IsUnknown reports whether t is the UNKNOWN built-in. A nil type is not
// considered unknown: it marks an untyped scope.
func IsUnknown(t Type) bool {
	s, ok := t.(*Simple)
	return ok && s.Kind == KindUnknown
}

// Equal compares two types structurally. Composites compare by name.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *Simple:
		bv, ok := b.(*Simple)
		return ok && av.Kind == bv.Kind
	case *Alias:
		bv, ok := b.(*Alias)
		if !ok || av.AliasName != bv.AliasName {
			return false
		}
		ak, _ := Builtin(av)
		bk, _ := Builtin(bv)
		return ak == bk
	case *GenList:
		bv, ok := b.(*GenList)
		return ok && Equal(av.Elem, bv.Elem)
	case *Composite:
		bv, ok := b.(*Composite)
		return ok && av.TypeName == bv.TypeName
	}
	return false
}
