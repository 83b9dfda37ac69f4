package trace

import (
	"sync/atomic"
	"time"
)

var seq, spanIDs atomic.Uint64

// Span tracks one begin/end pair.
type Span struct {
	tracer  Tracer
	begin   Event
	started time.Time
	fields  []Field
}

// Begin starts a span under parent (0 for a root) and emits its begin
// event. The returned span is inert when scope is filtered out.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !active(t, scope) {
		return &Span{}
	}
	s := &Span{
		tracer: t,
		begin: Event{
			Kind:     KindSpanBegin,
			Scope:    scope,
			SpanID:   spanIDs.Add(1),
			ParentID: parent,
			Name:     name,
		},
		started: time.Now(),
	}
	emit(t, s.begin)
	return s
}

// With attaches a field to the end event.
func (s *Span) With(key, value string) *Span {
	if s != nil && s.tracer != nil {
		s.fields = append(s.fields, Field{Key: key, Value: value})
	}
	return s
}

// End emits the end event and returns the span's duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil {
		return 0
	}
	ev := s.begin
	ev.Kind = KindSpanEnd
	ev.Detail = detail
	ev.Elapsed = time.Since(s.started)
	ev.Fields = s.fields
	emit(s.tracer, ev)
	s.tracer = nil
	return ev.Elapsed
}

// ID returns the span ID, 0 for an inert span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.begin.SpanID
}

// Point emits an instant event.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if !active(t, scope) {
		return
	}
	emit(t, Event{Kind: KindPoint, Scope: scope, ParentID: parent, Name: name, Detail: detail})
}

func active(t Tracer, scope Scope) bool {
	return t != nil && t.Enabled() && t.Level().ShouldEmit(scope)
}

func emit(t Tracer, ev Event) {
	ev.Time = time.Now()
	ev.Seq = seq.Add(1)
	t.Emit(&ev)
}
