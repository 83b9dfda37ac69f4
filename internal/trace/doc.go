// Package trace provides the tracing subsystem used as feelscope's log.
//
// The resolver, the scenario driver and the CLI emit events through a Tracer
// taken from the context (or passed in options). Tracing is off by default and
// costs nothing then.
//
// # Usage
//
//	feelscope check --trace=- --trace-level=debug scenarios/
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only errors
//   - LevelPhase: Driver boundaries (one span per command)
//   - LevelDetail: Per-scenario spans
//   - LevelDebug: Everything, including every scope push/pop of the resolver
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeScenario, "check", 0)
//	defer span.End("")
package trace
