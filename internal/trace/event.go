package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd
	// KindPoint represents an instant event.
	KindPoint
)

var kindNames = [...]string{KindSpanBegin: "begin", KindSpanEnd: "end", KindPoint: "point"}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope indicates the granularity of an event. Lower values are coarser.
type Scope uint8

const (
	// ScopeDriver covers whole CLI commands.
	ScopeDriver Scope = iota + 1
	// ScopeScenario covers one scenario (one parse unit).
	ScopeScenario
	// ScopeResolver covers individual resolver operations.
	ScopeResolver
)

var scopeNames = [...]string{ScopeDriver: "driver", ScopeScenario: "scenario", ScopeResolver: "resolver"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Field is a key/value pair attached to an event. Fields keep the order
// they were added in.
type Field struct {
	Key   string
	Value string
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time
	Seq      uint64 // global, monotonic
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for roots
	Name     string // e.g. "push-scope", "check"
	Detail   string
	Elapsed  time.Duration // span ends only
	Fields   []Field
}
