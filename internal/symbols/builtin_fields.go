package symbols

import (
	"fmt"

	"feelscope/internal/types"
)

var (
	dateFields = []PreludeEntry{
		{Name: "year", Type: types.Number},
		{Name: "month", Type: types.Number},
		{Name: "day", Type: types.Number},
	}
	weekdayField = PreludeEntry{Name: "weekday", Type: types.Number}
	timeFields   = []PreludeEntry{
		{Name: "hour", Type: types.Number},
		{Name: "minute", Type: types.Number},
		{Name: "second", Type: types.Number},
		{Name: "time offset", Type: types.Duration},
		{Name: "timezone", Type: types.Number},
	}
	durationFields = []PreludeEntry{
		{Name: "years", Type: types.Number},
		{Name: "months", Type: types.Number},
		{Name: "days", Type: types.Number},
		{Name: "hours", Type: types.Number},
		{Name: "minutes", Type: types.Number},
		{Name: "seconds", Type: types.Number},
	}
	// start and end are unknown so members of an endpoint resolve dynamically
	rangeFields = []PreludeEntry{
		{Name: "start included", Type: types.Boolean},
		{Name: "start", Type: types.Unknown},
		{Name: "end", Type: types.Unknown},
		{Name: "end included", Type: types.Boolean},
	}
)

// BuiltinFields lists the member names a value of built-in kind k exposes.
// weekday controls whether dates expose the weekday member.
func BuiltinFields(k types.Kind, weekday bool) []PreludeEntry {
	var out []PreludeEntry
	switch k {
	case types.KindDate:
		out = append(out, dateFields...)
		if weekday {
			out = append(out, weekdayField)
		}
	case types.KindTime:
		out = append(out, timeFields...)
	case types.KindDateTime:
		out = append(out, dateFields...)
		if weekday {
			out = append(out, weekdayField)
		}
		out = append(out, timeFields...)
	case types.KindDuration, types.KindYearsMonthsDuration, types.KindDaysTimeDuration:
		out = append(out, durationFields...)
	case types.KindRange:
		out = append(out, rangeFields...)
	}
	return out
}

// expandBuiltin defines the members of a built-in type in the current scope.
// UNKNOWN turns on dynamic resolution instead.
func (r *Resolver) expandBuiltin(t types.Type) {
	kind, ok := types.Builtin(t)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnsupportedType, typeName(t)))
	}
	if kind == types.KindUnknown {
		r.EnableDynamicResolution()
		return
	}
	for _, f := range BuiltinFields(kind, r.features.WeekdayField) {
		r.DefineTypedVariable(f.Name, f.Type)
	}
}

func typeName(t types.Type) string {
	if t == nil {
		return ""
	}
	return t.Name()
}
