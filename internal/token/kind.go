package token

// Kind represents the category of a FEEL token relevant to name resolution.
type Kind uint8

const (
	// Invalid indicates an unclassified fragment.
	Invalid Kind = iota
	// Ident is a plain name fragment.
	Ident
	// Digits is a run of decimal digits inside a name.
	Digits
	// NameSymbol is one of the additional name symbols . / - ' + *
	NameSymbol

	KwFor
	KwReturn
	KwIn
	KwIf
	KwThen
	KwElse
	KwSome
	KwEvery
	KwSatisfies
	KwInstance
	KwOf
	KwFunction
	KwExternal
	KwOr
	KwAnd
	KwBetween
	KwNot
	KwNull
	KwTrue
	KwFalse
)

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwFor && k <= KwFalse
}

func (k Kind) String() string {
	switch k {
	case Ident:
		return "ident"
	case Digits:
		return "digits"
	case NameSymbol:
		return "name-symbol"
	case Invalid:
		return "invalid"
	}
	for lexeme, kw := range keywords {
		if kw == k {
			return lexeme
		}
	}
	return "invalid"
}
