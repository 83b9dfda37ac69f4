package symbols

import "feelscope/internal/types"

// PreludeEntry describes a built-in symbol installed into the global scope.
type PreludeEntry struct {
	Name string
	Kind SymbolKind
	Type types.Type
}

var builtinFunctions = []string{
	"date", "time", "date and time", "duration", "years and months duration",
	"number", "string", "substring", "string length", "upper case", "lower case",
	"substring before", "substring after", "replace", "contains", "starts with",
	"ends with", "matches", "split", "string join",
	"list contains", "count", "min", "max", "sum", "mean", "all", "any",
	"sublist", "append", "concatenate", "insert before", "remove", "reverse",
	"index of", "union", "distinct values", "flatten", "product", "median",
	"stddev", "mode", "sort",
	"decimal", "floor", "ceiling", "round up", "round down", "round half up",
	"round half down", "abs", "modulo", "sqrt", "log", "exp", "odd", "even",
	"not", "is",
	"before", "after", "meets", "met by", "overlaps", "overlaps before",
	"overlaps after", "finishes", "finished by", "includes", "during",
	"starts", "started by", "coincides",
	"day of year", "day of week", "month of year", "week of year",
	"get value", "get entries", "context", "context put", "context merge",
	"now", "today", "range",
}

var builtinTypeNames = []types.Kind{
	types.KindNumber, types.KindBoolean, types.KindString, types.KindDate,
	types.KindTime, types.KindDateTime, types.KindDuration,
	types.KindYearsMonthsDuration, types.KindDaysTimeDuration,
	types.KindRange, types.KindList, types.KindContext, types.KindFunction,
	types.KindAny,
}

// DefaultPrelude lists the built-in functions and type names every
// expression can refer to.
func DefaultPrelude() []PreludeEntry {
	out := make([]PreludeEntry, 0, len(builtinFunctions)+len(builtinTypeNames))
	for _, k := range builtinTypeNames {
		out = append(out, PreludeEntry{Name: k.String(), Kind: SymbolType, Type: types.FromKind(k)})
	}
	for _, name := range builtinFunctions {
		out = append(out, PreludeEntry{Name: name, Kind: SymbolFunction, Type: types.Function})
	}
	return out
}
