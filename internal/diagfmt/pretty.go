package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"feelscope/internal/diag"
	"feelscope/internal/source"
)

const tabWidth = 4

type palette struct {
	severity map[diag.Severity]func(a ...any) string
	location func(a ...any) string
	caret    func(a ...any) string
	gutter   func(a ...any) string
	note     func(a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		severity: map[diag.Severity]func(a ...any) string{
			diag.SevError:   mk(color.FgRed, color.Bold),
			diag.SevWarning: mk(color.FgYellow, color.Bold),
			diag.SevInfo:    mk(color.FgCyan, color.Bold),
		},
		location: mk(color.Bold),
		caret:    mk(color.FgGreen, color.Bold),
		gutter:   mk(color.FgBlue),
		note:     mk(color.FgCyan),
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	sev := pal.severity[d.Severity]
	if sev == nil {
		sev = fmt.Sprint
	}
	header := fmt.Sprintf("%s %s: %s", sev(d.Severity.String()), d.Code.ID(), d.Message)
	file := lookupFile(fs, d.Primary.File)
	if file == nil {
		fmt.Fprintln(w, header)
		return
	}
	start, _ := fs.Resolve(d.Primary)
	loc := fmt.Sprintf("%s:%d:%d:", formatPath(file.Path, opts.PathMode, opts.BaseDir), start.Line, start.Col)
	fmt.Fprintf(w, "%s %s\n", pal.location(loc), header)
	writeSnippet(w, fs, file, d.Primary, opts, pal)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := lookupFile(fs, n.Span.File)
		if nf == nil {
			fmt.Fprintf(w, "  %s %s\n", pal.note("= note:"), n.Msg)
			continue
		}
		ns, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note("= note:"),
			formatPath(nf.Path, opts.PathMode, opts.BaseDir), ns.Line, ns.Col, n.Msg)
	}
}

func lookupFile(fs *source.FileSet, id source.FileID) *source.File {
	if fs == nil {
		return nil
	}
	return fs.Get(id)
}

func writeSnippet(w io.Writer, fs *source.FileSet, file *source.File, sp source.Span, opts PrettyOpts, pal palette) {
	start, end := fs.Resolve(sp)
	first := start.Line
	if ctx := uint32(max(opts.Context, 0)); first > ctx {
		first -= ctx
	} else {
		first = 1
	}
	gutterWidth := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		text := expandTabs(file.GetLine(ln))
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "…")
		}
		fmt.Fprintf(w, "%s %s\n", pal.gutter(fmt.Sprintf("%*d |", gutterWidth, ln)), text)
	}

	raw := file.GetLine(start.Line)
	prefix := expandTabs(sliceLine(raw, 0, int(start.Col)-1))
	underline := 1
	if end.Line == start.Line && end.Col > start.Col {
		underline = max(runewidth.StringWidth(expandTabs(sliceLine(raw, int(start.Col)-1, int(end.Col)-1))), 1)
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))
	marks := "^" + strings.Repeat("~", underline-1)
	fmt.Fprintf(w, "%s %s%s\n", pal.gutter(strings.Repeat(" ", gutterWidth)+" |"), pad, pal.caret(marks))
}

// sliceLine cuts line by byte offsets, clamped to its length.
func sliceLine(line string, from, to int) string {
	from = min(max(from, 0), len(line))
	to = min(max(to, from), len(line))
	return line[from:to]
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
