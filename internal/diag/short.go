package diag

import (
	"fmt"
	"sort"
	"strings"

	"feelscope/internal/source"
)

type shortDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     int
	Column   int
	Message  string
}

// FormatShort renders diagnostics one per line, sorted deterministically:
//
//	error FEEL3001 expr.feel:1:4 Unknown variable 'a.b'
//
// Line is 1-based and column 0-based, as stored on the diagnostic. When a
// diagnostic has no position yet, fs (if non-nil) resolves its primary span.
func FormatShort(diags []Diagnostic, fs *source.FileSet) string {
	if len(diags) == 0 {
		return ""
	}
	rendered := make([]shortDiagnostic, 0, len(diags))
	for _, d := range diags {
		line, col := d.Line, d.Column
		path := ""
		if fs != nil {
			if f := fs.Get(d.Primary.File); f != nil {
				path = f.Path
				if line == 0 {
					pos := fs.Position(d.Primary)
					line, col = pos.Line, pos.Column
				}
			}
		}
		rendered = append(rendered, shortDiagnostic{
			Severity: strings.ToLower(d.Severity.String()),
			Code:     d.Code.ID(),
			Path:     path,
			Line:     line,
			Column:   col,
			Message:  sanitizeMessage(d.Message),
		})
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func sanitizeMessage(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
