package symbols

import (
	"fmt"
	"strings"

	"feelscope/internal/diag"
	"feelscope/internal/source"
)

// ValidateVariable reports an unknown-variable error when name neither
// matches a child scope of the current scope nor resolves to a symbol.
// Nothing is reported while dynamic resolution is on or without a reporter.
// qualified holds the segments used to render the diagnostic.
func (r *Resolver) ValidateVariable(span source.Span, qualified []string, name string) {
	if r.reporter == nil || r.IsDynamicResolution() {
		return
	}
	if _, ok := r.table.Child(r.current, name); ok {
		return
	}
	if _, ok := r.Resolve(name); ok {
		return
	}
	full := strings.Join(qualified, ".")
	r.tracePoint("unknown-variable", full)
	b := diag.ReportError(r.reporter, diag.FeelUnknownVariable, span, fmt.Sprintf("Unknown variable '%s'", full)).
		WithName(full)
	if r.files != nil {
		b = b.At(r.files.Position(span))
	}
	b.Emit()
}
