package token

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// additional name symbols allowed inside FEEL variable names.
const nameSymbols = "./-'+*"

// Fragment is one piece of a variable name as a tokenizer would see it.
type Fragment struct {
	Kind Kind
	Text string
}

// SplitName normalises name to NFC and splits it into fragments.
// "time offset" -> [time offset]; "net-income 2" -> [net - income 2].
func SplitName(name string) []Fragment {
	name = norm.NFC.String(name)
	var out []Fragment
	var cur strings.Builder
	curKind := Invalid

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		text := cur.String()
		kind := curKind
		if kind == Ident {
			if kw, ok := LookupKeyword(text); ok {
				kind = kw
			}
		}
		out = append(out, Fragment{Kind: kind, Text: text})
		cur.Reset()
		curKind = Invalid
	}

	for _, r := range name {
		switch {
		case unicode.IsSpace(r):
			flush()
		case strings.ContainsRune(nameSymbols, r):
			flush()
			out = append(out, Fragment{Kind: NameSymbol, Text: string(r)})
		case unicode.IsDigit(r):
			if curKind != Digits && curKind != Ident {
				flush()
				curKind = Digits
			}
			cur.WriteRune(r)
		default:
			if curKind == Digits {
				flush()
			}
			curKind = Ident
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

// Texts returns the fragment texts of name.
func Texts(name string) []string {
	frags := SplitName(name)
	out := make([]string, len(frags))
	for i, f := range frags {
		out[i] = f.Text
	}
	return out
}

// Classify returns the kind of a single fragment.
func Classify(fragment string) Kind {
	if fragment == "" {
		return Invalid
	}
	if kw, ok := LookupKeyword(fragment); ok {
		return kw
	}
	if len([]rune(fragment)) == 1 && strings.ContainsAny(fragment, nameSymbols) {
		return NameSymbol
	}
	allDigits := true
	for _, r := range fragment {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return Digits
	}
	for i, r := range fragment {
		if i == 0 && !isNameStart(r) {
			return Invalid
		}
		if !isNamePart(r) {
			return Invalid
		}
	}
	return Ident
}

// IsNamePartValid reports whether fragment may syntactically continue a
// variable name. Keywords are rejected; reusable keywords need the scope's
// opinion and are checked by the resolver.
func IsNamePartValid(fragment string) bool {
	switch Classify(fragment) {
	case Ident, Digits, NameSymbol:
		return true
	default:
		return false
	}
}

func isNameStart(r rune) bool {
	return r == '?' || r == '_' || unicode.IsLetter(r)
}

func isNamePart(r rune) bool {
	return isNameStart(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}
