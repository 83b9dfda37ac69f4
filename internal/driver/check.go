package driver

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"feelscope/internal/ast"
	"feelscope/internal/config"
	"feelscope/internal/diag"
	"feelscope/internal/itemdef"
	"feelscope/internal/observ"
	"feelscope/internal/source"
	"feelscope/internal/symbols"
	"feelscope/internal/trace"
	"feelscope/internal/types"
)

// Options configure scenario checks.
type Options struct {
	// Features are the base toggles; a scenario's [features] table
	// overrides single keys. Nil means config.Default().
	Features       *config.Features
	MaxDiagnostics int
	Jobs           int
}

func (o Options) features() config.Features {
	if o.Features == nil {
		return config.Default()
	}
	return *o.Features
}

// Result is the outcome of checking one scenario.
type Result struct {
	Path     string
	Files    *source.FileSet
	Bag      *diag.Bag
	Table    *symbols.Table
	Features config.Features
	Timing   observ.Report
}

// Snapshot returns the scope tree produced by the check, or nil when the
// scenario never reached the resolver.
func (r *Result) Snapshot() *symbols.Snapshot {
	if r == nil || r.Table == nil {
		return nil
	}
	return r.Table.Snapshot()
}

// CheckFile loads and checks a single scenario file.
func CheckFile(ctx context.Context, path string, opts Options) (*Result, error) {
	sc, err := LoadScenario(path)
	if err != nil {
		return failedResult(path, err, opts), nil
	}
	return Check(ctx, sc, opts)
}

// Check replays the scenario against a fresh resolver. Findings land in the
// result's bag; the error is reserved for cancellation and broken resolver
// invariants.
func Check(ctx context.Context, sc *Scenario, opts Options) (res *Result, err error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeScenario, "check", 0).With("scenario", sc.Path)
	defer func() { span.End(sc.Name) }()

	defer func() {
		if rec := recover(); rec != nil {
			res = nil
			if e, ok := rec.(error); ok {
				err = fmt.Errorf("%s: resolver invariant violated: %w", sc.Path, e)
				return
			}
			err = fmt.Errorf("%s: resolver invariant violated: %v", sc.Path, rec)
		}
	}()

	timer := observ.NewTimer()
	bag := diag.NewBag(opts.MaxDiagnostics)
	feats := sc.Features.apply(opts.features())
	res = &Result{Path: sc.Path, Files: sc.Files, Bag: bag, Features: feats}

	idx := timer.Begin("types")
	reg, regErr := sc.registry()
	timer.End(idx, fmt.Sprintf("%d definitions", len(reg.Names())))
	if regErr != nil {
		code := diag.IOScenarioSyntax
		if errors.Is(regErr, itemdef.ErrUnknownType) {
			code = diag.FeelUnknownType
		}
		bag.Add(diag.NewError(code, source.Span{File: sc.FileID}, regErr.Error()))
		res.Timing = timer.Report()
		return res, nil
	}

	ck := &checker{
		sc:   sc,
		reg:  reg,
		rep:  diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
		tree: ast.NewBuilder(uint(len(sc.Checks) * 4)),
		loc:  newLocator(sc),
	}
	ck.res = symbols.NewResolver(symbols.Options{
		Features:    feats,
		Registry:    reg,
		Reporter:    ck.rep,
		Tracer:      tracer,
		TraceParent: span.ID(),
		Files:       sc.Files,
		Tree:        ck.tree,
	})
	res.Table = ck.res.Table()

	idx = timer.Begin("resolve")
	for _, v := range sc.Variables {
		ck.res.DefineTypedVariable(strings.TrimSpace(v.Name), ck.typeOf(v.Type))
	}
	for _, c := range sc.Checks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ck.run(c)
	}
	timer.End(idx, fmt.Sprintf("%d checks", len(sc.Checks)))

	idx = timer.Begin("validate")
	if ck.res.Current() != res.Table.Global || ck.res.IsDynamicResolution() {
		return nil, fmt.Errorf("%s: %w (depth %d, dynamic %d)", sc.Path, errUnbalanced, ck.res.Depth(), ck.res.DynamicDepth())
	}
	if err := res.Table.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", sc.Path, err)
	}
	timer.End(idx, "")

	res.Timing = timer.Report()
	return res, nil
}

var errUnbalanced = errors.New("scope cursor not back at the global scope")

func (sc *Scenario) registry() (*itemdef.Registry, error) {
	doc := sc.Document
	if sc.Items != "" {
		path := sc.Items
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(sc.Path), path)
		}
		external, err := itemdef.LoadDocument(path)
		if err != nil {
			return itemdef.New(), err
		}
		doc = external.Merge(doc)
	}
	reg, err := itemdef.FromDocument(doc)
	if err != nil {
		return itemdef.New(), err
	}
	return reg, nil
}

func failedResult(path string, err error, opts Options) *Result {
	bag := diag.NewBag(opts.MaxDiagnostics)
	code := diag.IOScenarioSyntax
	if errors.Is(err, ErrLoad) {
		code = diag.IOLoadFileError
	}
	bag.Add(diag.NewError(code, source.Span{}, err.Error()))
	return &Result{Path: path, Files: source.NewFileSet(), Bag: bag, Features: opts.features()}
}

type checker struct {
	sc   *Scenario
	reg  *itemdef.Registry
	res  *symbols.Resolver
	rep  diag.Reporter
	tree *ast.Builder
	loc  *locator
}

func (ck *checker) typeOf(ref string) types.Type {
	if strings.TrimSpace(ref) == "" {
		return nil
	}
	t, err := ck.reg.TypeOf(ref)
	if err != nil {
		ck.report(diag.FeelUnknownType, ck.loc.find(ref), fmt.Sprintf("Unknown type '%s'", strings.TrimSpace(ref)))
		return nil
	}
	return t
}

func (ck *checker) report(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(ck.rep, code, sp, msg).
		At(ck.sc.Files.Position(sp)).
		Emit()
}

// run replays one expression: an optional item-definition scope, an
// optional iteration scope, the qualified name itself and the names used in
// its filter.
func (ck *checker) run(c CheckDecl) {
	exprSpan := ck.loc.find(c.Expr)
	parts, first, ok := splitQualified(c.Expr, exprSpan)
	if !ok {
		ck.report(diag.IOScenarioSyntax, exprSpan, fmt.Sprintf("malformed qualified name '%s'", c.Expr))
		return
	}

	if c.TypeScope != "" {
		if err := ck.reg.Focus(strings.TrimSpace(c.TypeScope)); err != nil {
			ck.report(diag.FeelUnknownType, ck.loc.find(c.TypeScope), fmt.Sprintf("Unknown type '%s'", c.TypeScope))
			return
		}
		ck.res.PushTypeScope()
		defer func() {
			ck.res.PopScope()
			_ = ck.reg.Focus("")
		}()
	}
	if len(c.Bind) > 0 {
		ck.res.PushScope()
		defer ck.res.PopScope()
		for _, b := range c.Bind {
			ck.res.DefineTypedVariable(strings.TrimSpace(b.Name), ck.typeOf(b.Type))
		}
	}

	ck.qualifiedName(parts, first)
	if len(c.Filter) == 0 {
		return
	}
	base := ck.tree.NewNamePrimary(exprSpan, parts...)
	path := ck.tree.NewFilterPath(exprSpan, base, ck.tree.NewOther(exprSpan), "")
	ck.res.WithPathScope(path, func() {
		for _, f := range c.Filter {
			fspan := ck.loc.find(f)
			fparts, ffirst, ok := splitQualified(f, fspan)
			if !ok {
				ck.report(diag.IOScenarioSyntax, fspan, fmt.Sprintf("malformed qualified name '%s'", f))
				continue
			}
			ck.qualifiedName(fparts, ffirst)
		}
	})
}

// qualifiedName validates every segment of a dotted name, entering the
// scope of each prefix before the next segment is looked up.
func (ck *checker) qualifiedName(parts []string, sp source.Span) {
	name := parts[0]
	qn := []string{name}
	ck.res.ValidateVariable(sp, qn, name)
	count := 0
	for _, p := range parts[1:] {
		ck.res.RecoverScope(name)
		count++
		name = p
		qn = append(qn, name)
		ck.res.ValidateVariable(sp, qn, name)
	}
	for range count {
		ck.res.DismissScope()
	}
}

// splitQualified splits a dotted name and returns the span of its first
// segment inside sp.
func splitQualified(expr string, sp source.Span) ([]string, source.Span, bool) {
	raw := strings.Split(expr, ".")
	parts := make([]string, len(raw))
	for i, p := range raw {
		parts[i] = strings.TrimSpace(p)
		if parts[i] == "" {
			return nil, sp, false
		}
	}
	lead := len(raw[0]) - len(strings.TrimLeft(raw[0], " \t"))
	first := source.Span{
		File:  sp.File,
		Start: sp.Start + toOffset(lead),
		End:   sp.Start + toOffset(lead+len(parts[0])),
	}
	if first.End > sp.End {
		first.End = sp.End
	}
	return parts, first, true
}
