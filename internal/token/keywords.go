package token

var keywords = map[string]Kind{
	"for":       KwFor,
	"return":    KwReturn,
	"in":        KwIn,
	"if":        KwIf,
	"then":      KwThen,
	"else":      KwElse,
	"some":      KwSome,
	"every":     KwEvery,
	"satisfies": KwSatisfies,
	"instance":  KwInstance,
	"of":        KwOf,
	"function":  KwFunction,
	"external":  KwExternal,
	"or":        KwOr,
	"and":       KwAnd,
	"between":   KwBetween,
	"not":       KwNot,
	"null":      KwNull,
	"true":      KwTrue,
	"false":     KwFalse,
}

// reusable keywords may appear inside names such as "date and time" as long
// as the scope defines such a name. "in" and "between" never do.
var reusable = map[Kind]struct{}{
	KwFor:       {},
	KwReturn:    {},
	KwIf:        {},
	KwThen:      {},
	KwElse:      {},
	KwSome:      {},
	KwEvery:     {},
	KwSatisfies: {},
	KwInstance:  {},
	KwOf:        {},
	KwFunction:  {},
	KwExternal:  {},
	KwOr:        {},
	KwAnd:       {},
	KwNot:       {},
	KwNull:      {},
	KwTrue:      {},
	KwFalse:     {},
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsReusableKeyword reports whether the fragment is a keyword that may also
// be part of a multi-word variable name.
func IsReusableKeyword(fragment string) bool {
	k, ok := keywords[fragment]
	if !ok {
		return false
	}
	_, ok = reusable[k]
	return ok
}
