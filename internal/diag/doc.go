// Package diag defines the diagnostic model shared by the resolver, the
// scenario driver and the CLI.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the source.Span pointing to the issue.
//   - Line/Column – FEEL event coordinates: 1-based line, 0-based column.
//   - Name – the dotted name the diagnostic is about, when there is one.
//
// # Emitting diagnostics
//
// Producers hold a diag.Reporter, the diagnostic sink. Reporting is
// fire-and-forget: a Reporter never returns an error and never aborts the
// producer. ReportBuilder (ReportError/ReportWarning/ReportInfo) collects the
// position, name and notes before Emit. BagReporter aggregates into a bounded
// Bag, which supports sorting and deduplication; DedupReporter filters repeats
// before forwarding.
//
// Package diag does no rendering; see internal/diagfmt.
package diag
