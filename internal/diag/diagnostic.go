package diag

import (
	"feelscope/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single finding. Line is 1-based and Column 0-based, the
// coordinates FEEL events carry; Name is the offending dotted name, if any.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Line     int
	Column   int
	Name     string
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
